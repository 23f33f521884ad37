package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/sitelog/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleImport(t *testing.T) {
	setupTestEnv(t)
	path := filepath.Join(t.TempDir(), "plan.csv")
	csv := "Task Name,Start,Finish,Duration,Resource Names\n" +
		"Excavation,01/06/2024,05/06/2024,5 days,Crew A\n" +
		"Foundation,06/06/2024,12/06/2024,7 days,Crew B\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	out := mustRun(t, "schedule", "import", path)
	assert.Contains(t, out, "2 task(s)")
	assert.Contains(t, out, "Excavation")
	assert.Contains(t, out, "7 days")

	var rows []scheduleRowView
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "schedule", "import", path, "--json")), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Foundation", rows[1].TaskName)
	assert.Equal(t, "Crew B", rows[1].Fields["Resource Names"])

	assert.Empty(t, listActivities(t), "import must not add activities")
}

func TestScheduleImportMissingColumns(t *testing.T) {
	setupTestEnv(t)
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte("Task Name,Start\nExcavation,01/06/2024\n"), 0o644))

	_, err := runCmd(t, "schedule", "import", path)
	assert.ErrorIs(t, err, schedule.ErrMissingColumns)

	_, err = runCmd(t, "schedule", "import", filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, schedule.ErrFileNotFound)
}

func TestScheduleExport(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500.5", "-s", "completed")

	path := filepath.Join(t.TempDir(), "out", "export.csv")
	out := mustRun(t, "schedule", "export", path)
	assert.Contains(t, out, "Exported 1 activities")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Task Name,Start,Resource Names,Notes,Cost", lines[0])
	assert.Equal(t, "Poured foundation,01/06/2024,Ana Silva,Concluído,1500.5", lines[1])
}

func TestScheduleExportDefaultPath(t *testing.T) {
	setupTestEnv(t)
	addActivity(t, "Poured foundation", "Ana Silva", "1500")

	mustRun(t, "schedule", "export")
	assert.FileExists(t, schedule.DefaultExportFile)
}

func TestScheduleExportEmptyIsNotice(t *testing.T) {
	setupTestEnv(t)

	_, err := runCmd(t, "schedule", "export")
	require.ErrorIs(t, err, schedule.ErrNothingToExport)
	assert.True(t, isNotice(err))
	assert.NoFileExists(t, schedule.DefaultExportFile)
}
