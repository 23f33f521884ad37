package cmd

import (
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded activities",
	Long:    `List activities in the order they were recorded, with their position, short ID and the cost total.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		activities := s.List()
		out := cmd.OutOrStdout()

		if listJSON {
			return printJSON(out, toActivityViews(activities))
		}
		if len(activities) == 0 {
			_, _ = fmt.Fprintln(out, "No activities recorded yet.")
			_, _ = fmt.Fprintln(out, ui.StyleSubtle.Render("Add one with: sitelog add"))
			return nil
		}

		_, _ = fmt.Fprint(out, ui.ActivityTable(activities, columnLimit()).Render())
		return nil
	},
}

// columnLimit caps table columns on narrow terminals.
func columnLimit() int {
	if w := ui.TerminalWidth(0); w > 0 && w < 140 {
		return 28
	}
	return 0
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print activities as JSON")
}
