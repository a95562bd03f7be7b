package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	require.NoError(t, err)

	log.Debug("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Info("hello", "key", "value")
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"), "json output expected: %q", out)
	assert.Contains(t, out, `"msg":"hello"`)
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Info("quiet")
	assert.Empty(t, buf.String())
	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	assert.Error(t, err)

	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}
