/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/store"
	"github.com/spf13/cobra"
)

var deleteYes bool

// errNeedsConfirmation is returned when deleting without a terminal and without --yes.
var errNeedsConfirmation = errors.New("refusing to delete without confirmation: pass --yes")

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <ref>",
	Aliases: []string{"rm"},
	Short:   "Delete an activity",
	Long:    `Delete an activity by position or ID prefix. A confirmation prompt is shown unless --yes is given.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStoreLock(func(s *store.FileActivityStore) error {
			svc := newService(s)
			target, idx, err := svc.Resolve(args[0])
			if err != nil {
				return err
			}

			if !deleteYes {
				if !interactive() {
					return errNeedsConfirmation
				}
				label := fmt.Sprintf("Delete #%d '%s' (%s)", idx+1, target.Description, util.ShortID(target.ID, 0))
				if err := confirm(label); err != nil {
					return err
				}
			}

			removed, err := svc.Delete(target.ID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted %s (%s)\n",
				ui.Icon("✔", ui.StyleSuccess), removed.Description, util.ShortID(removed.ID, 0))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
