package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/josephgoksu/sitelog/internal/photo"
	"github.com/josephgoksu/sitelog/internal/report"
	"github.com/josephgoksu/sitelog/internal/schedule"
	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/models"
	"github.com/josephgoksu/sitelog/store"
	"github.com/spf13/viper"
)

// errCancelled marks an operation the user backed out of. Nothing was changed.
var errCancelled = errors.New("cancelled")

// isNotice reports whether err is informational: nothing to do, nothing failed.
func isNotice(err error) bool {
	return errors.Is(err, report.ErrNoActivities) ||
		errors.Is(err, schedule.ErrNothingToExport) ||
		errors.Is(err, errCancelled)
}

func printNotice(w io.Writer, err error) {
	switch {
	case errors.Is(err, errCancelled):
		_, _ = fmt.Fprintln(w, ui.StyleSubtle.Render(err.Error()+"; nothing was changed."))
	default:
		_, _ = fmt.Fprintln(w, ui.StyleWarning.Render(capitalize(err.Error())+"."))
	}
}

// userMessage returns the short message shown for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrMalformed):
		return "The activity document is not valid JSON. Fix or move it: " + dataFilePath()
	case errors.Is(err, store.ErrSave):
		return "Could not save activities to " + dataFilePath()
	case errors.Is(err, store.ErrOutOfRange), errors.Is(err, store.ErrNotFound):
		return "No such activity. Run 'sitelog list' to see positions and IDs."
	case errors.Is(err, util.ErrAmbiguousID):
		return "That ID prefix matches several activities; type more characters."
	case errors.Is(err, photo.ErrOpen):
		return "Could not open the photo file."
	case errors.Is(err, photo.ErrDecode):
		return "The photo is not a readable image."
	case errors.Is(err, photo.ErrWrite):
		return "Could not store the optimized photo."
	case errors.Is(err, schedule.ErrFileNotFound):
		return "Schedule file not found."
	case errors.Is(err, schedule.ErrMissingColumns):
		return capitalize(err.Error()) + "."
	case errors.Is(err, ErrLocked):
		return "Another sitelog process is writing the activity document; try again."
	default:
		return "Error: " + err.Error()
	}
}

// PrintError prints the user message for err, or the full error chain when
// verbose output is on. Validation problems are listed in a panel.
func PrintError(w io.Writer, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		_, _ = fmt.Fprintln(w, ui.RenderErrorPanel("Please fix the following", "- "+strings.Join(ve.Problems, "\n- ")))
		return
	}

	msg := userMessage(err)
	if viper.GetBool("verbose") && !strings.Contains(msg, err.Error()) {
		msg += "\n" + ui.StyleSubtle.Render("cause: "+err.Error())
	}
	_, _ = fmt.Fprintln(w, ui.StyleError.Render(msg))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
