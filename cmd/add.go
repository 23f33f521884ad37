/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/models"
	"github.com/josephgoksu/sitelog/store"
	"github.com/spf13/cobra"
)

var addFlags formFlags

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new activity",
	Long: `Record a new activity. Fields not given as flags are prompted for when
running in a terminal. The date defaults to today and the status to In Progress.
A photo given with --photo is resized and stored in the photo directory.`,
	Example: `  sitelog add -d "Poured foundation" -r "Ana Silva" --cost 1500 -s completed
  sitelog add --photo ~/Pictures/slab.jpg`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := models.ActivityForm{Date: today()}
		_, photoSource := addFlags.apply(cmd, &form)

		if interactive() {
			if err := promptForm(cmd, &form, &photoSource); err != nil {
				return err
			}
		}

		return withStoreLock(func(s *store.FileActivityStore) error {
			added, err := newService(s).Add(form, photoSource)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Added #%d %s (%s)\n",
				ui.Icon("✔", ui.StyleSuccess), s.Len(), added.Description, util.ShortID(added.ID, 0))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addFlags.register(addCmd)
}
