package manifest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd := &cli.Command{
		Name:     "unitsmith",
		Commands: []*cli.Command{Command},
	}
	runErr := cmd.Run(context.Background(), append([]string{"unitsmith", "manifest"}, args...))

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), runErr
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCommand_Valid(t *testing.T) {
	path := writeManifest(t, `units:
  - name: web
    exec_start: /bin/true
  - name: backup
    exec_start: /bin/true
    timer: true
    on_calendar: daily
`)

	output, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Manifest is valid")
	assert.Contains(t, output, "Units: 2")
	assert.Contains(t, output, "Timers: 1")
}

func TestValidateCommand_Invalid(t *testing.T) {
	path := writeManifest(t, `units:
  - name: web
`)

	_, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exec_start is required")
}

func TestGenerateCommand_WritesAllUnits(t *testing.T) {
	outDir := t.TempDir()
	path := writeManifest(t, `units:
  - name: web
    exec_start: /bin/true
    wanted_by: multi-user.target
    skip_exec_check: true
    output_dir: `+outDir+`
  - name: backup
    exec_start: /bin/true
    timer: true
    on_calendar: daily
    skip_exec_check: true
    output_dir: `+outDir+`
`)

	output, err := runCommand(t, "generate", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote service file "+filepath.Join(outDir, "web.service"))
	assert.Contains(t, output, "Wrote service file "+filepath.Join(outDir, "backup.service"))
	assert.Contains(t, output, "Wrote timer file "+filepath.Join(outDir, "backup.timer"))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestGenerateCommand_ContinuesPastFailures(t *testing.T) {
	outDir := t.TempDir()
	path := writeManifest(t, `units:
  - name: broken
    exec_start: /no/such/binary
    output_dir: `+outDir+`
  - name: ok
    exec_start: /bin/true
    skip_exec_check: true
    output_dir: `+outDir+`
`)

	output, err := runCommand(t, "generate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 units failed")
	assert.Contains(t, output, "✗ unit broken:")
	assert.Contains(t, output, "Wrote service file "+filepath.Join(outDir, "ok.service"))
}

func TestGenerateCommand_ManifestNotFound(t *testing.T) {
	_, err := runCommand(t, "generate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest not found")
}
