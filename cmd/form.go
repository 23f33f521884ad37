package cmd

import (
	"strings"
	"time"

	"github.com/josephgoksu/sitelog/internal/logger"
	"github.com/josephgoksu/sitelog/models"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// now is the clock used for the default activity date.
var now = time.Now

// formFlags are the activity fields accepted by add and edit.
type formFlags struct {
	description string
	responsible string
	cost        string
	date        string
	status      string
	notes       string
	photo       string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "what was done (at least 5 characters)")
	cmd.Flags().StringVarP(&f.responsible, "responsible", "r", "", "responsible party (at least 3 characters)")
	cmd.Flags().StringVar(&f.cost, "cost", "", "cost in R$, e.g. 1500.00")
	cmd.Flags().StringVar(&f.date, "date", "", "date as dd/mm/yyyy (default today)")
	cmd.Flags().StringVarP(&f.status, "status", "s", "", "status: "+models.StatusLabels())
	cmd.Flags().StringVarP(&f.notes, "notes", "n", "", "free-form notes")
	cmd.Flags().StringVarP(&f.photo, "photo", "p", "", "photo to optimize and attach")
}

// apply copies the flags the user set onto form and reports whether any
// field flag was given. The photo flag is returned separately.
func (f *formFlags) apply(cmd *cobra.Command, form *models.ActivityForm) (changed bool, photoSource string) {
	set := func(name string, dst *string, v string) {
		if cmd.Flags().Changed(name) {
			*dst = v
			changed = true
		}
	}
	set("description", &form.Description, f.description)
	set("responsible", &form.Responsible, f.responsible)
	set("cost", &form.Cost, f.cost)
	set("date", &form.Date, f.date)
	set("status", &form.Status, f.status)
	set("notes", &form.Notes, f.notes)
	if cmd.Flags().Changed("photo") {
		photoSource = strings.TrimSpace(f.photo)
		changed = true
	}
	return changed, photoSource
}

// promptForm asks for every field not given as a flag, showing the current
// value as the default.
func promptForm(cmd *cobra.Command, form *models.ActivityForm, photoSource *string) error {
	fields := []struct {
		flag     string
		label    string
		dst      *string
		validate promptui.ValidateFunc
	}{
		{"description", "Description", &form.Description, fieldCheck("description")},
		{"responsible", "Responsible", &form.Responsible, fieldCheck("responsible")},
		{"cost", "Cost (R$)", &form.Cost, fieldCheck("cost")},
		{"date", "Date (dd/mm/yyyy)", &form.Date, fieldCheck("date")},
	}
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			continue
		}
		v, err := askField(f.label, *f.dst, f.validate)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	if !cmd.Flags().Changed("status") {
		v, err := selectStatus(form.Status)
		if err != nil {
			return err
		}
		form.Status = v
	}
	if !cmd.Flags().Changed("notes") {
		v, err := askField("Notes", form.Notes, nil)
		if err != nil {
			return err
		}
		form.Notes = v
	}
	if !cmd.Flags().Changed("photo") {
		v, err := askField("Photo file (empty to keep)", "", nil)
		if err != nil {
			return err
		}
		*photoSource = strings.TrimSpace(v)
	}

	logger.SetLastInput(form.Description + " | " + form.Responsible + " | " + form.Cost + " | " + form.Date)
	return nil
}

// fieldCheck validates one field the way the full form does. The other
// inputs get values that always pass.
func fieldCheck(field string) promptui.ValidateFunc {
	return func(input string) error {
		in := map[string]string{"description": "valid", "responsible": "abc", "cost": "0", "date": "01/01/2000"}
		in[field] = input
		if problems := models.ValidateInputs(in["description"], in["responsible"], in["cost"], in["date"]); len(problems) > 0 {
			return &models.ValidationError{Problems: problems}
		}
		return nil
	}
}

func statusChoices() []models.Status {
	return models.Statuses
}

func today() string {
	return now().Format(models.DateLayout)
}
