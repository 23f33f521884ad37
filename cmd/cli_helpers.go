package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/josephgoksu/sitelog/internal/ui"
	"github.com/manifoldco/promptui"
)

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// confirm asks a yes/no question. A "no" or Ctrl-C returns errCancelled.
func confirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return errCancelled
		}
		return fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return nil
}

// askField prompts for one form field, prefilled with current. validate runs
// on every keystroke; nil accepts anything.
func askField(label, current string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
		Validate:  validate,
	}
	value, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errCancelled
		}
		return "", fmt.Errorf("prompt %s: %w", label, err)
	}
	return value, nil
}

// selectStatus asks for one of the statuses, starting at current.
func selectStatus(current string) (string, error) {
	labels := make([]string, 0, 3)
	cursor := 0
	for i, s := range statusChoices() {
		labels = append(labels, s.Label())
		if string(s) == current || s.Label() == current {
			cursor = i
		}
	}
	sel := promptui.Select{
		Label:     "Status",
		Items:     labels,
		CursorPos: cursor,
	}
	i, _, err := sel.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", errCancelled
		}
		return "", fmt.Errorf("select status: %w", err)
	}
	return string(statusChoices()[i]), nil
}

// interactive reports whether prompts may be shown.
var interactive = ui.IsInteractive
