package cmd

import (
	"github.com/josephgoksu/sitelog/internal/schedule"
	"github.com/josephgoksu/sitelog/models"
)

// activityView is the --json shape of an activity.
type activityView struct {
	Position    int     `json:"position"`
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Responsible string  `json:"responsible"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
	Cost        float64 `json:"cost"`
	Photo       string  `json:"photo,omitempty"`
}

func toActivityView(index int, a models.Activity) activityView {
	return activityView{
		Position:    index + 1,
		ID:          a.ID,
		Date:        a.Date,
		Description: a.Description,
		Responsible: a.Responsible,
		Status:      a.Status.Label(),
		Notes:       a.Notes,
		Cost:        a.Cost,
		Photo:       a.PhotoPath,
	}
}

func toActivityViews(activities []models.Activity) []activityView {
	views := make([]activityView, len(activities))
	for i, a := range activities {
		views[i] = toActivityView(i, a)
	}
	return views
}

// scheduleRowView is the --json shape of an imported schedule row.
type scheduleRowView struct {
	TaskName string            `json:"task_name"`
	Start    string            `json:"start"`
	Finish   string            `json:"finish"`
	Duration string            `json:"duration"`
	Fields   map[string]string `json:"fields"`
}

func toScheduleRowViews(rows []schedule.Row) []scheduleRowView {
	views := make([]scheduleRowView, len(rows))
	for i, r := range rows {
		views[i] = scheduleRowView{TaskName: r.TaskName, Start: r.Start, Finish: r.Finish, Duration: r.Duration, Fields: r.Fields}
	}
	return views
}
