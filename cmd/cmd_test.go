package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsando/patterns/catalog"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)

	// flags are package variables; start every invocation from the defaults
	runAll = false
	station = ""
	dir := t.TempDir()
	base := []string{"--config", filepath.Join(dir, "none.yaml"), "--env-file", filepath.Join(dir, "none.env"), "--quiet"}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(append(args, base...))
	_, err := RootCmd.ExecuteC()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "patterns version dev")
	assert.Contains(t, out, "commit: none")
}

func TestListCommand(t *testing.T) {
	_, err := execute(t, "list")
	assert.NoError(t, err)
}

func TestRunCommand(t *testing.T) {
	t.Run("single demo", func(t *testing.T) {
		_, err := execute(t, "run", "builder")
		assert.NoError(t, err)
	})

	t.Run("unknown demo", func(t *testing.T) {
		_, err := execute(t, "run", "visitor")
		assert.ErrorIs(t, err, catalog.ErrUnknownDemo)
	})

	t.Run("nothing to run", func(t *testing.T) {
		_, err := execute(t, "run")
		assert.ErrorContains(t, err, "no demo given")
	})

	t.Run("all with names", func(t *testing.T) {
		_, err := execute(t, "run", "--all", "builder")
		assert.Error(t, err)
	})

	t.Run("all", func(t *testing.T) {
		_, err := execute(t, "run", "--all")
		assert.NoError(t, err)
	})
}

func TestSingletonCommand(t *testing.T) {
	_, err := execute(t, "singleton", "--callers", "10", "--value", "BAR")
	assert.NoError(t, err)

	_, err = execute(t, "singleton", "--callers", "0")
	assert.ErrorContains(t, err, "--callers")
}

func TestRecordsCommand(t *testing.T) {
	_, err := execute(t, "records", "--station", "Central")
	assert.NoError(t, err)
}
