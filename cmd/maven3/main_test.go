package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Version(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, 0, run([]string{"version"}, graft.DisableCache()))
}

func TestRun_NoInstallationAborts(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.Equal(t, 1, run([]string{"run", "--goals", "install"}, graft.DisableCache()))

	// Nothing was launched, so nothing was recorded.
	_, err := os.Stat(filepath.Join(dir, ".maven3", "history.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_StoreInitError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	// A file where the history directory belongs makes the store fail to load.
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".maven3"), []byte("not a directory"), 0o600))

	assert.Equal(t, 1, run([]string{"history"}, graft.DisableCache()))
}

func TestRun_InitThenCmdlineWithoutMaven(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.Equal(t, 0, run([]string{"init", "--goals", "package"}, graft.DisableCache()))
	data, err := os.ReadFile(filepath.Join(dir, "maven3.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "package")

	// No installation is registered, so the command line cannot be assembled.
	assert.Equal(t, 1, run([]string{"cmdline"}, graft.DisableCache()))
}
