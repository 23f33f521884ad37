package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestGetDataDir_Precedence(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	tmp := t.TempDir()
	chdir(t, tmp)

	home := filepath.Join(tmp, "home")
	orig := GetGlobalDataDir
	GetGlobalDataDir = func() (string, error) { return filepath.Join(home, LocalDataDir), nil }
	t.Cleanup(func() { GetGlobalDataDir = orig })

	t.Setenv("XDG_DATA_HOME", "")
	assert.Equal(t, filepath.Join(home, LocalDataDir), GetDataDir(), "global fallback")

	t.Setenv("XDG_DATA_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "sitelog"), GetDataDir())

	require.NoError(t, os.Mkdir(LocalDataDir, 0o755))
	assert.Equal(t, LocalDataDir, GetDataDir(), "local directory wins over XDG")

	viper.Set("data.dir", "/srv/site")
	assert.Equal(t, "/srv/site", GetDataDir(), "explicit config wins")
}

func TestUnder(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "activities.json"), Under("data", "activities.json"))
	assert.Equal(t, "/abs/activities.json", Under("data", "/abs/activities.json"))
	assert.Equal(t, "activities.json", Under("", "activities.json"))
	assert.Equal(t, "", Under("data", ""))
}
