package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/cinefeed/config.toml", DefaultPath())
}

func TestDefaultPath_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.True(t, filepath.IsAbs(DefaultPath()) || DefaultPath() == "config.toml")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "cinefeed", "config.toml"))
}

func TestDiscover_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
	t.Setenv("CINEFEED_CONFIG", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("CINEFEED_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CINEFEED_CONFIG=")
}

func TestDiscover_XDG(t *testing.T) {
	t.Setenv("CINEFEED_CONFIG", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	path := filepath.Join(xdg, "cinefeed", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_NotFound(t *testing.T) {
	if _, err := os.Stat("/etc/cinefeed/config.toml"); err == nil {
		t.Skip("system config present")
	}
	t.Setenv("CINEFEED_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := Discover()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSearchPaths_Order(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, []string{
		"config.toml",
		"/tmp/xdg/cinefeed/config.toml",
		"/etc/cinefeed/config.toml",
	}, searchPaths())
}

func TestDiscover_WorkingDirFirst(t *testing.T) {
	t.Setenv("CINEFEED_CONFIG", "")
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	xdgPath := filepath.Join(xdg, "cinefeed", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(xdgPath), 0755))
	require.NoError(t, os.WriteFile(xdgPath, []byte(""), 0644))
	require.NoError(t, os.WriteFile("config.toml", []byte(""), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", got)
}
