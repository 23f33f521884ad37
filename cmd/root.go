/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/josephgoksu/sitelog/internal/activity"
	"github.com/josephgoksu/sitelog/internal/logger"
	"github.com/josephgoksu/sitelog/internal/photo"
	"github.com/josephgoksu/sitelog/internal/report"
	"github.com/josephgoksu/sitelog/internal/schedule"
	"github.com/josephgoksu/sitelog/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// dataDir overrides the data directory.
	dataDir string
	// version is the application version.
	version = "0.1.0"

	// appFs is the filesystem every command works on.
	appFs afero.Fs = afero.NewOsFs()
	// log is the logger configured for the running command.
	log = slog.Default()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitelog",
	Short: "sitelog records construction-site activities and builds daily reports.",
	Long: `sitelog keeps a log of construction-site activities (date, description,
responsible party, status, notes, cost and an optional photo) in a JSON
document, imports and exports project schedules as CSV, and produces daily
reports as a spreadsheet or a PDF with a cost chart and photos.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}
	if isNotice(err) {
		printNotice(cmd.OutOrStdout(), err)
		return
	}
	PrintError(cmd.ErrOrStderr(), err)
	os.Exit(1)
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	// Assigned here rather than in the literal: InitConfig reads rootCmd,
	// which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := InitConfig(); err != nil {
			return err
		}
		cfg := GetConfig()
		log = logger.Setup(cfg.Log, cfg.Verbose, cmd.ErrOrStderr())

		logger.SetBasePath(cfg.Data.Dir)
		logger.SetVersion(version)
		logger.SetCommand(strings.TrimSpace(cmd.CommandPath() + " " + strings.Join(args, " ")))
		logger.SetDataFile(dataFilePath())
		return nil
	}
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.sitelog.yaml or $HOME/.sitelog.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the activity document")
}

// openStore loads the activity document.
func openStore() (*store.FileActivityStore, error) {
	return store.Open(appFs, dataFilePath())
}

// newService wires the activity service over s.
func newService(s store.ActivityStore) *activity.Service {
	return activity.NewService(s, newOptimizer(), log)
}

func newOptimizer() *photo.Optimizer {
	return photo.NewOptimizer(appFs, photoConfig(), photo.WithLogger(log))
}

func newGenerator() *report.Generator {
	return report.NewGenerator(appFs, report.WithLogger(log))
}

func newInterchange() *schedule.Interchange {
	return schedule.New(appFs)
}
