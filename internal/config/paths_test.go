package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("UNITSMITH_CONFIG_DIR", "/tmp/custom")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom", dir)
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv("UNITSMITH_CONFIG_DIR", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".unitsmith"), dir)
}

func TestFindManifest_AbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: []"), 0644))

	found, err := FindManifest(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindManifest_AbsolutePathMissing(t *testing.T) {
	_, err := FindManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest not found")
}

func TestFindManifest_InConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UNITSMITH_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy.yaml"), []byte("units: []"), 0644))

	found, err := FindManifest("deploy")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deploy.yaml"), found)
}

func TestFindManifest_DefaultName(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UNITSMITH_CONFIG_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultManifestName), []byte("units: []"), 0644))

	found, err := FindManifest("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultManifestName), found)
}
