package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// fixedNow is the clock every command test runs with.
var fixedNow = time.Date(2024, 6, 1, 18, 45, 0, 0, time.UTC)

// setupTestEnv isolates a command test: a fresh data directory, no config
// file, no prompts and a fixed clock. It returns the data directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	t.Setenv("HOME", root)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("SITELOG_DATA_DIR", dataDir)
	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	viper.Reset()
	t.Cleanup(viper.Reset)

	prevFs, prevInteractive, prevNow := appFs, interactive, now
	appFs = afero.NewOsFs()
	interactive = func() bool { return false }
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		appFs, interactive, now = prevFs, prevInteractive, prevNow
	})

	return dataDir
}

// resetFlags puts every flag of every command back to its default so
// values do not leak between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command with args and returns everything written
// to stdout and stderr.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// mustRun is runCmd for commands expected to succeed.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCmd(t, args...)
	require.NoError(t, err, "sitelog %v\n%s", args, out)
	return out
}

// listActivities returns the stored activities through list --json.
func listActivities(t *testing.T) []activityView {
	t.Helper()
	var views []activityView
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, "list", "--json")), &views))
	return views
}

func addActivity(t *testing.T, description, responsible, cost string, extra ...string) {
	t.Helper()
	args := append([]string{"add", "-d", description, "-r", responsible, "--cost", cost}, extra...)
	mustRun(t, args...)
}
