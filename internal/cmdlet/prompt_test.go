package cmdlet

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "  yes  \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "", want: false},
		{input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var out bytes.Buffer
			p := &LinePrompter{In: strings.NewReader(tt.input), Out: &out}

			got, err := p.Confirm(context.Background(), "transfer:DeleteServer", "s-123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), `on target "s-123"`)
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestConfirmMessage(t *testing.T) {
	assert.Equal(t, "Performing operation transfer:ListServers.", ConfirmMessage("transfer:ListServers", ""))
	assert.Equal(t, `Performing operation transfer:StopServer on target "s-1".`, ConfirmMessage("transfer:StopServer", "s-1"))
}

func TestParseKeyValues(t *testing.T) {
	got, err := ParseKeyValues([]string{"env=prod", "team = data ", "empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "team": " data ", "empty": ""}, got)

	got, err = ParseKeyValues(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseKeyValues([]string{"novalue"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseKeyValues([]string{"=x"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseKeyValues([]string{"a=1", "a=2"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPopulated(t *testing.T) {
	v := &widgetSpec{Color: String("blue")}
	assert.Same(t, v, Populated(v, true))
	assert.Nil(t, Populated(v, false))
	assert.Nil(t, String(""))
	assert.Nil(t, Strings([]string{}))
}

type color string

func TestEnum(t *testing.T) {
	known := []color{"RED", "GREEN"}

	got, err := Enum("Color", "green", known)
	require.NoError(t, err)
	assert.Equal(t, color("GREEN"), got)

	got, err = Enum("Color", "", known)
	require.NoError(t, err)
	assert.Equal(t, color(""), got)

	_, err = Enum("Color", "blue", known)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "RED, GREEN")
}
