package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	t.Run("Arguments", func(t *testing.T) {
		out, err := runCLI(t, "", "parse", "true", " -1.5e+2 ", "null")
		require.NoError(t, err)
		assert.Equal(t, "boolean true\nnumber -150\nnull null\n", out)
	})

	t.Run("Stdin", func(t *testing.T) {
		out, err := runCLI(t, "0.25\n", "parse")
		require.NoError(t, err)
		assert.Equal(t, "number 0.25\n", out)
	})

	t.Run("Failure", func(t *testing.T) {
		out, err := runCLI(t, "", "parse", "1", "01")
		assert.ErrorIs(t, err, errInputsFailed)
		assert.Contains(t, out, "number 1\n")
		assert.Contains(t, out, "error: JSON parse failed at offset 0: root not singular")
	})
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.json": "42\n",
		"b.json": "true",
		"c.json": "1e400",
	}
	var args []string
	for _, name := range []string{"a.json", "b.json", "c.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(files[name]), 0o644))
		args = append(args, path)
	}

	out, err := runCLI(t, "", append([]string{"check"}, args...)...)
	assert.ErrorIs(t, err, errInputsFailed)
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "a.json")
	assert.Contains(t, out, "number_too_big")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "42")
	assert.Contains(t, lines[2], "true")

	t.Run("MissingFile", func(t *testing.T) {
		_, err := runCLI(t, "", "check", filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, err := runCLI(t, "", "check")
		assert.Error(t, err)
	})
}
