package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/spf13/cobra"
)

var scheduleJSON bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Import or export project schedules as CSV",
}

var scheduleImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Read a schedule exported by a project-planning tool",
	Long: `Read a CSV schedule and print its tasks. The file must have the columns
Task Name, Start, Finish and Duration. Rows are shown only; they are not
added to the activity log.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := newInterchange().Import(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if scheduleJSON {
			return printJSON(out, toScheduleRowViews(rows))
		}

		ui.RenderPageHeader(out, "Schedule", fmt.Sprintf("%s: %d task(s)", args[0], len(rows)))
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Task Name", "Start", "Finish", "Duration"})
		for i, r := range rows {
			t.AppendRow(table.Row{i + 1, ui.Truncate(r.TaskName, 40), r.Start, r.Finish, r.Duration})
		}
		t.Render()
		return nil
	},
}

var scheduleExportCmd = &cobra.Command{
	Use:   "export [file.csv]",
	Short: "Write activities as a schedule CSV",
	Long: `Write one CSV row per activity with the columns Task Name, Start,
Resource Names, Notes and Cost. An existing file is overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		path := reportPath(args, GetConfig().Reports.Export)
		if err := newInterchange().Export(s.List(), path); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d activities to %s\n", ui.Icon("✔", ui.StyleSuccess), s.Len(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleImportCmd, scheduleExportCmd)
	scheduleImportCmd.Flags().BoolVar(&scheduleJSON, "json", false, "print rows as JSON")
}
