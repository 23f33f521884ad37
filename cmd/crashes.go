package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/sitelog/internal/logger"
	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/spf13/cobra"
)

var crashesLatest bool

var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List crash logs",
	Long: `List the crash logs sitelog saved after stopping unexpectedly, oldest first.
With --latest the newest log is printed in full.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(paths) == 0 {
			_, _ = fmt.Fprintln(out, "No crash logs.")
			return nil
		}
		if !crashesLatest {
			for _, p := range paths {
				_, _ = fmt.Fprintln(out, p)
			}
			return nil
		}

		latest := paths[len(paths)-1]
		cl, err := logger.ReadCrashLog(latest)
		if err != nil {
			return fmt.Errorf("read crash log %s: %w", latest, err)
		}
		lines := []string{
			ui.StyleLabel.Render("Time") + cl.Timestamp.Format("2006-01-02 15:04:05"),
			ui.StyleLabel.Render("Version") + cl.Version,
			ui.StyleLabel.Render("Command") + cl.Command,
			ui.StyleLabel.Render("Data file") + cl.DataFile,
			ui.StyleLabel.Render("Last input") + cl.LastInput,
			ui.StyleLabel.Render("Panic") + cl.PanicValue,
		}
		_, _ = fmt.Fprintln(out, ui.RenderErrorPanel(filepath.Base(latest), strings.Join(lines, "\n")))
		_, _ = fmt.Fprintln(out, cl.StackTrace)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crashesCmd)
	crashesCmd.Flags().BoolVar(&crashesLatest, "latest", false, "print the newest crash log")
}
