package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"Em Andamento", StatusInProgress},
		{"in progress", StatusInProgress},
		{"In-Progress", StatusInProgress},
		{"Concluído", StatusCompleted},
		{"concluido", StatusCompleted},
		{"COMPLETED", StatusCompleted},
		{"atrasado", StatusDelayed},
		{" delayed ", StatusDelayed},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStatus("cancelled")
	assert.Error(t, err)
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Completed", StatusCompleted.Label())
	assert.Equal(t, "Delayed", StatusDelayed.Label())
	assert.Equal(t, "Unknown", Status("Unknown").Label())
	assert.False(t, Status("Unknown").Valid())
}

func TestActivity_JSONKeys(t *testing.T) {
	a := Activity{
		ID:          "ignored",
		Date:        "01/06/2024",
		Description: "Poured foundation",
		Responsible: "Ana Silva",
		Status:      StatusCompleted,
		Notes:       "none",
		Cost:        1500,
	}
	data, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 7)
	for _, key := range []string{"Data", "Descrição", "Responsável", "Status", "Observações", "Custo", "Foto"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, 1500.0, raw["Custo"])
	assert.NotContains(t, string(data), "ignored")
}

func TestAssignIDs(t *testing.T) {
	a := Activity{Date: "01/06/2024", Description: "Poured foundation", Responsible: "Ana", Status: StatusCompleted, Cost: 10}
	b := Activity{Date: "02/06/2024", Description: "Masonry walls", Responsible: "Bob", Status: StatusDelayed, Cost: 20}
	list := []Activity{a, b, a}

	AssignIDs(list)

	for _, item := range list {
		_, err := uuid.Parse(item.ID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, list[0].ID, list[2].ID, "duplicates get distinct ids")
	assert.NotEqual(t, list[0].ID, list[1].ID)

	again := []Activity{a, b, a}
	AssignIDs(again)
	assert.Equal(t, list[0].ID, again[0].ID, "ids are stable for unchanged content")
	assert.Equal(t, list[2].ID, again[2].ID)

	assert.Equal(t, list[2].ID, NextID(list[:2], a))
}

func TestNextIDSkipsTakenIDs(t *testing.T) {
	a := Activity{Date: "01/06/2024", Description: "Poured foundation", Responsible: "Ana", Status: StatusCompleted, Cost: 10}
	b := Activity{Date: "02/06/2024", Description: "Masonry walls", Responsible: "Bob", Status: StatusDelayed, Cost: 20}

	// Only the second copy of a is left; it still holds ordinal 1.
	remaining := []Activity{{ID: NewActivityID(a, 1)}}
	assert.Equal(t, NewActivityID(a, 0), NextID(remaining, a))

	// b was edited from a and kept ordinal 0.
	edited := b
	edited.ID = NewActivityID(a, 0)
	assert.Equal(t, NewActivityID(a, 1), NextID([]Activity{edited}, a))

	taken := []Activity{{ID: NewActivityID(a, 0)}, {ID: NewActivityID(a, 1)}}
	assert.Equal(t, NewActivityID(a, 2), NextID(taken, a))
}

func TestTotalCost(t *testing.T) {
	list := []Activity{{Cost: 1500}, {Cost: 0.25}, {Cost: 99.75}}
	assert.Equal(t, 1600.0, TotalCost(list))
	assert.Zero(t, TotalCost(nil))
}
