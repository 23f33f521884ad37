package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DateLayout is the day/month/year layout every Activity date is stored in.
const DateLayout = "02/01/2006"

// NoNotesPlaceholder is stored in Notes when the operator leaves it empty.
const NoNotesPlaceholder = "Sem observações"

// Status represents the progress state of an activity. The values are the
// strings written to the activity document.
type Status string

const (
	StatusInProgress Status = "Em Andamento"
	StatusCompleted  Status = "Concluído"
	StatusDelayed    Status = "Atrasado"
)

// Statuses lists the recognised statuses in display order.
var Statuses = []Status{StatusInProgress, StatusCompleted, StatusDelayed}

var statusLabels = map[Status]string{
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusDelayed:    "Delayed",
}

// Label returns the English name of the status.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the recognised statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatus resolves user input to a Status. Both the stored value and the
// English label are accepted, ignoring case, accents and '-'/'_' separators.
func ParseStatus(v string) (Status, error) {
	want := foldStatus(v)
	for _, s := range Statuses {
		if want == foldStatus(string(s)) || want == foldStatus(s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (use one of: %s)", v, StatusLabels())
}

// StatusLabels returns the English status names joined for help text.
func StatusLabels() string {
	labels := make([]string, 0, len(Statuses))
	for _, s := range Statuses {
		labels = append(labels, s.Label())
	}
	return strings.Join(labels, ", ")
}

func foldStatus(v string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, v)
	if err != nil {
		folded = v
	}
	folded = strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(folded))
	return strings.Join(strings.Fields(folded), " ")
}

// Activity is one recorded construction event. The JSON keys are the on-disk
// contract of the activity document and must not change.
type Activity struct {
	// ID is a session identifier derived from the record content; it is never
	// written to disk.
	ID          string  `json:"-"`
	Date        string  `json:"Data" validate:"datetime=02/01/2006"`
	Description string  `json:"Descrição" validate:"mintrim=5"`
	Responsible string  `json:"Responsável" validate:"mintrim=3"`
	Status      Status  `json:"Status" validate:"activitystatus"`
	Notes       string  `json:"Observações"`
	Cost        float64 `json:"Custo" validate:"min=0"`
	PhotoPath   string  `json:"Foto"`
}

// CostText formats the cost the way the form shows it.
func (a Activity) CostText() string {
	return strconv.FormatFloat(a.Cost, 'f', -1, 64)
}

// HasPhoto reports whether a photo is attached.
func (a Activity) HasPhoto() bool {
	return strings.TrimSpace(a.PhotoPath) != ""
}

// activityNamespace scopes the content-derived activity IDs.
var activityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/josephgoksu/sitelog/activity"))

func (a Activity) fingerprint() string {
	a.ID = ""
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Sprintf("%#v", a)
	}
	return string(data)
}

// NewActivityID derives the identifier of a record from its content and its
// ordinal among records with identical content.
func NewActivityID(a Activity, ordinal int) string {
	name := a.fingerprint() + "#" + strconv.Itoa(ordinal)
	return uuid.NewSHA1(activityNamespace, []byte(name)).String()
}

// AssignIDs sets the ID of every activity in place. Identical records get
// distinct IDs through their ordinal.
func AssignIDs(activities []Activity) {
	seen := make(map[string]int, len(activities))
	for i := range activities {
		fp := activities[i].fingerprint()
		activities[i].ID = NewActivityID(activities[i], seen[fp])
		seen[fp]++
	}
}

// NextID returns the ID a new activity gets when added next to existing: the
// lowest ordinal whose ID no existing record holds. Edited records keep
// their old ID, so matching content is not counted.
func NextID(existing []Activity, a Activity) string {
	taken := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		taken[e.ID] = struct{}{}
	}
	for ordinal := 0; ; ordinal++ {
		id := NewActivityID(a, ordinal)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}

// TotalCost sums the cost of all activities in order.
func TotalCost(activities []Activity) float64 {
	var total float64
	for _, a := range activities {
		total += a.Cost
	}
	return total
}
