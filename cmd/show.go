package cmd

import (
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <ref>",
	Short: "Show one activity",
	Long:  `Show every field of an activity. <ref> is its position in 'sitelog list' or a prefix of its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		a, idx, err := newService(s).Resolve(args[0])
		if err != nil {
			return err
		}

		if showJSON {
			return printJSON(cmd.OutOrStdout(), toActivityView(idx, a))
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.ActivityPanel(idx+1, a))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the activity as JSON")
}
