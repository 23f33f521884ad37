package cmd

import (
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/models"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the daily report",
}

var reportExcelCmd = &cobra.Command{
	Use:     "excel [file.xlsx]",
	Aliases: []string{"xlsx"},
	Short:   "Write the report as a spreadsheet",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := reportPath(args, GetConfig().Reports.Spreadsheet)
		return generateReport(cmd, "spreadsheet", path, newGenerator().Spreadsheet)
	},
}

var reportPDFCmd = &cobra.Command{
	Use:   "pdf [file.pdf]",
	Short: "Write the report as a PDF with a cost chart and photos",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := reportPath(args, GetConfig().Reports.Document)
		return generateReport(cmd, "document", path, newGenerator().Document)
	},
}

func generateReport(cmd *cobra.Command, kind, path string, generate func([]models.Activity, string) error) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	activities := s.List()

	sp := ui.NewSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Generating %s report...", kind))
	if err := sp.Run(func() error { return generate(activities, path) }); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", ui.Icon("✔", ui.StyleSuccess), path)
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportExcelCmd, reportPDFCmd)
}
