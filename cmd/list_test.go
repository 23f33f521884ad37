package cmd

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	setupTestEnv(t)

	out := mustRun(t, "list")
	assert.Contains(t, out, "No activities recorded yet.")
	assert.Contains(t, out, "sitelog add")

	assert.JSONEq(t, "[]", mustRun(t, "list", "--json"))
}

func TestListShowsTableWithTotal(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")
	addActivity(t, "Installed windows", "Bruno", "820.25", "-s", "delayed")

	out := mustRun(t, "list")
	for _, want := range []string{"Poured foundation", "Installed windows", "Delayed", "In Progress", "TOTAL", "2320.25"} {
		assert.Contains(t, out, want)
	}
}

func TestListJSONKeepsOrder(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "First activity", "Ana", "1")
	addActivity(t, "Second activity", "Bruno", "2")
	addActivity(t, "Third activity", "Carla", "3")

	got := listActivities(t)
	require.Len(t, got, 3)
	for i, want := range []string{"First activity", "Second activity", "Third activity"} {
		assert.Equal(t, i+1, got[i].Position)
		assert.Equal(t, want, got[i].Description)
		assert.NotEmpty(t, got[i].ID)
	}
}

func TestShowByPositionAndPrefix(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")
	addActivity(t, "Installed windows", "Bruno", "820")

	out := mustRun(t, "show", "2")
	assert.Contains(t, out, "#2 Installed windows")
	assert.Contains(t, out, "Bruno")

	second := listActivities(t)[1]
	var view activityView
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "show", util.ShortID(second.ID, 0), "--json")), &view))
	assert.Equal(t, second, view)
}

func TestShowUnknownRef(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")

	_, err := runCmd(t, "show", "5")
	assert.True(t, errors.Is(err, store.ErrOutOfRange), "got %v", err)

	_, err = runCmd(t, "show", "zzzz")
	assert.True(t, errors.Is(err, store.ErrNotFound), "got %v", err)
}

func TestMalformedDocumentIsReported(t *testing.T) {
	dataDir := setupTestEnv(t)
	writeDataFile(t, dataDir, "{not json")

	_, err := runCmd(t, "list")
	assert.True(t, errors.Is(err, store.ErrMalformed), "got %v", err)
}
