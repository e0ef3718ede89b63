package logger

import (
	"bytes"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDefault(t *testing.T, l *charm.Logger) {
	t.Helper()
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestNew_WarnLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Info("hidden")
	l.Warn("required parameter is empty", "parameter", "ServerId")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "required parameter is empty")
	assert.Contains(t, buf.String(), "parameter=ServerId")
	assert.Contains(t, buf.String(), "crs")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	withDefault(t, New(&buf))

	require.NoError(t, SetLevel(""))
	assert.Equal(t, charm.WarnLevel, Default().GetLevel())

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, charm.DebugLevel, Default().GetLevel())

	Default().Debug("adapter state", "state", "Requesting")
	assert.Contains(t, buf.String(), "adapter state")

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, charm.DebugLevel, Default().GetLevel())
}

func TestSetDefault_IgnoresNil(t *testing.T) {
	l := Discard()
	withDefault(t, l)

	SetDefault(nil)
	assert.Same(t, l, Default())
}
