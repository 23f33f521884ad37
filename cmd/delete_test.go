package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/sitelog/internal/util"
	"github.com/josephgoksu/sitelog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteNeedsConfirmationWithoutTerminal(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")

	_, err := runCmd(t, "delete", "1")
	assert.ErrorIs(t, err, errNeedsConfirmation)
	assert.Len(t, listActivities(t), 1)
}

func TestDeleteWithYes(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")
	addActivity(t, "Installed windows", "Bruno", "820")
	addActivity(t, "Painted walls", "Carla", "300")

	target := listActivities(t)[1]
	out := mustRun(t, "delete", util.ShortID(target.ID, 0), "--yes")
	assert.Contains(t, out, "Deleted Installed windows")

	got := listActivities(t)
	require.Len(t, got, 2)
	assert.Equal(t, "Poured foundation", got[0].Description)
	assert.Equal(t, "Painted walls", got[1].Description)
}

func TestDeleteLastLeavesEmptyArray(t *testing.T) {
	dataDir := setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")

	mustRun(t, "rm", "1", "-y")

	raw, err := os.ReadFile(filepath.Join(dataDir, store.DefaultDataFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func writeDataFile(t *testing.T, dataDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, store.DefaultDataFile), []byte(content), 0o644))
}
