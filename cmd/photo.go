package cmd

import (
	"fmt"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/spf13/cobra"
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Work with activity photos",
}

var photoOptimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Store a resized copy of a photo",
	Long: `Resize a photo so neither side exceeds the configured maximum, re-encode it
as JPEG under the size ceiling and store it in the photo directory. The source
file is not modified. Prints the stored path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newOptimizer().Optimize(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintln(out, res.Path)
		_, _ = fmt.Fprintln(out, ui.StyleSubtle.Render(
			fmt.Sprintf("%dx%d px, %d KiB, quality %d", res.Width, res.Height, (res.Size+1023)/1024, res.Quality)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(photoCmd)
	photoCmd.AddCommand(photoOptimizeCmd)
}
