package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRun_JSONOutput(t *testing.T) {
	out, err := execute(t, "run",
		"--residents", "5", "--businesses", "2", "--landlords", "1",
		"--steps", "2", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var payload struct {
		RunID  string `json:"run_id"`
		Params struct {
			Residents int `json:"residents"`
			Steps     int `json:"steps"`
		} `json:"params"`
		Residents []map[string]any `json:"residents"`
		Series    []map[string]any `json:"series"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))

	assert.NotEmpty(t, payload.RunID)
	assert.Equal(t, 5, payload.Params.Residents)
	assert.Equal(t, 2, payload.Params.Steps)
	assert.Len(t, payload.Residents, 5)
	assert.Len(t, payload.Series, 2)
}

func TestRun_TextOutput(t *testing.T) {
	out, err := execute(t, "run",
		"--residents", "3", "--businesses", "1", "--landlords", "1",
		"--steps", "1", "--seed", "7")
	require.NoError(t, err)

	assert.Contains(t, out, "Universal Capital Simulation")
	assert.Contains(t, out, "Total universals issued:")
	assert.Contains(t, out, "Gini wealth:")
}

func TestRun_NegativeCountRejected(t *testing.T) {
	_, err := execute(t, "run", "--residents", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter residents")
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestValidate_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("residents: 250\nsteps: 6\n"), 0o644))

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: residents=250")
	assert.Contains(t, out, "steps=6")
}

func TestValidate_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("landlords: -3\n"), 0o644))

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter landlords")
}
