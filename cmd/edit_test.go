package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/sitelog/models"
	"github.com/josephgoksu/sitelog/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditUpdatesInPlace(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")
	addActivity(t, "Installed windows", "Bruno", "820")
	addActivity(t, "Painted walls", "Carla", "300")

	out := mustRun(t, "edit", "2", "-s", "completed", "--cost", "900")
	assert.Contains(t, out, "Updated Installed windows")

	got := listActivities(t)
	require.Len(t, got, 3)
	assert.Equal(t, "Installed windows", got[1].Description)
	assert.Equal(t, "Completed", got[1].Status)
	assert.Equal(t, 900.0, got[1].Cost)
	assert.Equal(t, "Bruno", got[1].Responsible, "fields without flags keep their value")
	assert.Equal(t, "Poured foundation", got[0].Description)
	assert.Equal(t, "Painted walls", got[2].Description)
}

func TestEditWithoutFlagsIsRejected(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")

	_, err := runCmd(t, "edit", "1")
	assert.ErrorIs(t, err, errNoChanges)
}

func TestEditInvalidLeavesDocumentUntouched(t *testing.T) {
	dataDir := setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")
	path := filepath.Join(dataDir, store.DefaultDataFile)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = runCmd(t, "edit", "1", "--cost", "lots")
	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve), "got %v", err)
	assert.Equal(t, []string{models.MsgCostInvalid}, ve.Problems)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
