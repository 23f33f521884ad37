package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Validation messages shown to the operator.
const (
	MsgDescriptionTooShort = "description must be at least 5 characters"
	MsgResponsibleTooShort = "responsible must be at least 3 characters"
	MsgCostInvalid         = "cost must be a valid number"
	MsgCostNegative        = "cost cannot be negative"
	MsgDateInvalid         = "date must be in dd/mm/yyyy format"
	MsgStatusInvalid       = "status must be one of: In Progress, Completed, Delayed"
)

// ActivityForm carries the raw field values typed by the operator.
type ActivityForm struct {
	Description string `validate:"mintrim=5"`
	Responsible string `validate:"mintrim=3"`
	Cost        string `validate:"decimal,nonnegative"`
	Date        string `validate:"datetime=02/01/2006"`
	Status      string
	Notes       string
	PhotoPath   string
}

// ValidationError aggregates every problem found in a form.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// IsValidationError reports whether err carries form problems.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = newValidator()
}

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "mintrim", minTrimmed)
	mustRegister(v, "decimal", isDecimal)
	mustRegister(v, "nonnegative", isNonNegative)
	mustRegister(v, "activitystatus", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

func minTrimmed(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func parseDecimal(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isDecimal(fl validator.FieldLevel) bool {
	_, ok := parseDecimal(fl.Field().String())
	return ok
}

// isNonNegative passes unparseable values so they are only reported once.
func isNonNegative(fl validator.FieldLevel) bool {
	f, ok := parseDecimal(fl.Field().String())
	return !ok || f >= 0
}

// ValidateInputs checks the four validated form fields and returns every
// problem found. An empty result means the values are acceptable.
func ValidateInputs(description, responsible, cost, date string) []string {
	form := ActivityForm{
		Description: description,
		Responsible: responsible,
		Cost:        cost,
		Date:        date,
	}
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, messageFor(fe))
	}
	return problems
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "Description":
		return MsgDescriptionTooShort
	case "Responsible":
		return MsgResponsibleTooShort
	case "Cost":
		if fe.Tag() == "nonnegative" {
			return MsgCostNegative
		}
		return MsgCostInvalid
	case "Date":
		return MsgDateInvalid
	default:
		return fmt.Sprintf("%s failed rule %q", fe.Field(), fe.Tag())
	}
}

// NewActivity turns a submitted form into an Activity. Every problem is
// reported together in a *ValidationError.
func NewActivity(form ActivityForm) (Activity, error) {
	problems := ValidateInputs(form.Description, form.Responsible, form.Cost, form.Date)

	status := StatusInProgress
	if strings.TrimSpace(form.Status) != "" {
		parsed, err := ParseStatus(form.Status)
		if err != nil {
			problems = append(problems, MsgStatusInvalid)
		} else {
			status = parsed
		}
	}
	if len(problems) > 0 {
		return Activity{}, &ValidationError{Problems: problems}
	}

	cost, _ := parseDecimal(form.Cost)
	notes := form.Notes
	if notes == "" {
		notes = NoNotesPlaceholder
	}
	return Activity{
		Date:        form.Date,
		Description: strings.TrimSpace(form.Description),
		Responsible: strings.TrimSpace(form.Responsible),
		Status:      status,
		Notes:       notes,
		Cost:        cost,
		PhotoPath:   form.PhotoPath,
	}, nil
}

// FormFromActivity prefills a form with the values of an existing record.
func FormFromActivity(a Activity) ActivityForm {
	return ActivityForm{
		Description: a.Description,
		Responsible: a.Responsible,
		Cost:        a.CostText(),
		Date:        a.Date,
		Status:      string(a.Status),
		Notes:       a.Notes,
		PhotoPath:   a.PhotoPath,
	}
}

// ValidateStruct checks the invariants of a fully built record.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var msgs []string
	for _, e := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
