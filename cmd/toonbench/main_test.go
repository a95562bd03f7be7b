package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "toonbench")
}

func TestFormatsCommand(t *testing.T) {
	out, err := runCommand(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "toon")
	assert.Contains(t, out, "stringified")
}

func TestEncodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Jenil","experience":4}]`), 0o644))

	out, err := runCommand(t, "encode", path)
	require.NoError(t, err)
	assert.Equal(t, "name: Jenil\nexperience: 4\n", out)
}

func TestEncodeCommand_FromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,role\nJenil,Developer\n"), 0o644))

	out, err := runCommand(t, "encode", "--from", "csv", path)
	require.NoError(t, err)
	assert.Equal(t, "name: Jenil\nrole: Developer\n", out)
}

func TestDecodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.toon")
	require.NoError(t, os.WriteFile(path, []byte("name: Jenil\nactive: true"), 0o644))

	out, err := runCommand(t, "decode", "--strategy", "compact", path)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Jenil","active":true}]`+"\n", out)
}

func TestDecodeCommand_Strict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.toon")
	require.NoError(t, os.WriteFile(path, []byte("name: Jenil\ngarbage line"), 0o644))

	_, err := runCommand(t, "decode", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "garbage line")

	// Lenient mode swallows the bad line.
	out, err := runCommand(t, "decode", "--strategy", "compact", path)
	require.NoError(t, err)
	assert.Equal(t, `[{"name":"Jenil"}]`+"\n", out)
}

func TestDecodeCommand_InvalidStrategy(t *testing.T) {
	_, err := runCommand(t, "decode", "--strategy", "fancy", os.DevNull)
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "strategy")
}
