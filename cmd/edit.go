package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/store"
	"github.com/spf13/cobra"
)

var editFlags formFlags

// errNoChanges is returned by a non-interactive edit without field flags.
var errNoChanges = errors.New("nothing to change: pass at least one field flag")

var editCmd = &cobra.Command{
	Use:   "edit <ref>",
	Short: "Edit an activity in place",
	Long: `Edit an activity. In a terminal every field not given as a flag is prompted
for, prefilled with its current value, and the change is saved only after
confirmation. Cancelling leaves the activity untouched. The activity keeps its
position in the list.`,
	Example: `  sitelog edit 2 --status completed
  sitelog edit 1b4e --cost 1750.50 --notes "extra rebar"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStoreLock(func(s *store.FileActivityStore) error {
			svc := newService(s)
			current, form, err := svc.Draft(args[0])
			if err != nil {
				return err
			}

			changed, photoSource := editFlags.apply(cmd, &form)
			if interactive() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render(
					fmt.Sprintf("Editing %s (%s)", current.Description, util.ShortID(current.ID, 0))))
				if err := promptForm(cmd, &form, &photoSource); err != nil {
					return err
				}
				if err := confirm("Save changes"); err != nil {
					return err
				}
			} else if !changed {
				return errNoChanges
			}

			updated, err := svc.Update(current.ID, form, photoSource)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s (%s)\n",
				ui.Icon("✔", ui.StyleSuccess), updated.Description, util.ShortID(updated.ID, 0))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editFlags.register(editCmd)
}
