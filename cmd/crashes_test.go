package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/josephgoksu/sitelog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrashesEmpty(t *testing.T) {
	setupTestEnv(t)

	assert.Contains(t, mustRun(t, "crashes"), "No crash logs.")
}

func TestCrashesListsAndShowsLatest(t *testing.T) {
	dataDir := setupTestEnv(t)
	dir := filepath.Join(dataDir, logger.CrashLogDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	for i, name := range []string{"crash_20240601_100000.json", "crash_20240602_100000.json"} {
		data, err := json.Marshal(logger.CrashLog{
			Timestamp:  time.Date(2024, 6, 1+i, 10, 0, 0, 0, time.UTC),
			Version:    "0.1.0",
			Command:    "sitelog report pdf",
			PanicValue: "boom " + name,
			StackTrace: "goroutine 1 [running]:",
		})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	out := mustRun(t, "crashes")
	assert.Contains(t, out, filepath.Join(dir, "crash_20240601_100000.json"))
	assert.Contains(t, out, filepath.Join(dir, "crash_20240602_100000.json"))

	out = mustRun(t, "crashes", "--latest")
	assert.Contains(t, out, "boom crash_20240602_100000.json")
	assert.Contains(t, out, "sitelog report pdf")
	assert.Contains(t, out, "goroutine 1 [running]:")
	assert.NotContains(t, out, "boom crash_20240601_100000.json")
}
