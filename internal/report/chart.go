package report

import (
	"bytes"
	"fmt"

	"github.com/josephgoksu/sitelog/models"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartTitle  = "Cost Distribution"
	chartWidth  = 600
	chartHeight = 400
)

// costSlices returns one pie slice per activity with a positive cost,
// labelled with its description and share of the total.
func costSlices(activities []models.Activity) []chart.Value {
	var total float64
	for _, a := range activities {
		if a.Cost > 0 {
			total += a.Cost
		}
	}
	if total <= 0 {
		return nil
	}

	values := make([]chart.Value, 0, len(activities))
	for _, a := range activities {
		if a.Cost <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: a.Cost,
			Label: fmt.Sprintf("%s (%.1f%%)", a.Description, a.Cost/total*100),
		})
	}
	return values
}

// renderCostChart draws the cost pie as PNG. It returns nil bytes when no
// activity carries a positive cost.
func renderCostChart(activities []models.Activity) ([]byte, error) {
	values := costSlices(activities)
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  chartTitle,
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render cost chart: %w", err)
	}
	return buf.Bytes(), nil
}
