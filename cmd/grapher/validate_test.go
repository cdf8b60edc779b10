package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandAcceptsValidConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dataFile := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(dataFile, []byte("x,y\n1,2\n"), 0o644))

	configPath := filepath.Join(dir, "config.yaml")
	doc := fmt.Sprintf(`graph:
  title: Valid
data:
  sources:
    - file: %s
output:
  save_path: %s
`, dataFile, filepath.Join(dir, "out", "graph.png"))
	require.NoError(t, os.WriteFile(configPath, []byte(doc), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", configPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "valid")
}

func TestValidateCommandListsProblems(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	doc := fmt.Sprintf("output:\n  save_path: %s\n", filepath.Join(dir, "graph.png"))
	require.NoError(t, os.WriteFile(configPath, []byte(doc), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"validate", configPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "title")
	assert.Contains(t, out.String(), "data source")
}
