package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/cirrus/internal/cmdlet"
	"github.com/vietdv277/cirrus/internal/config"
	"github.com/vietdv277/cirrus/internal/logger"
	"github.com/vietdv277/cirrus/internal/output"
)

const testConfig = `
current_context: prod
contexts:
  prod:
    profile: prod-sso
    region: eu-west-1
defaults:
  output: json
  page_size: 25
`

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crs.yaml")
	t.Setenv("CRS_CONFIG", path)
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
}

func testStreams() (Streams, *bytes.Buffer) {
	var out bytes.Buffer
	return Streams{In: os.Stdin, Out: &out, Err: &bytes.Buffer{}}, &out
}

func TestNewSession_ContextFillsKey(t *testing.T) {
	writeConfig(t, testConfig)
	streams, _ := testStreams()

	s, err := NewSession(viper.New(), streams)
	require.NoError(t, err)
	assert.Equal(t, "prod", s.Context)
	assert.Equal(t, "prod-sso", s.Key.Profile)
	assert.Equal(t, "eu-west-1", s.Key.Region)
	assert.Equal(t, output.FormatJSON, s.Renderer.Format)
	assert.False(t, s.Strict)
}

func TestNewSession_FlagsWin(t *testing.T) {
	writeConfig(t, testConfig)
	streams, _ := testStreams()

	v := viper.New()
	v.Set("profile", "dev")
	v.Set("output", "yaml")
	v.Set("strict", true)

	s, err := NewSession(v, streams)
	require.NoError(t, err)
	assert.Equal(t, "dev", s.Key.Profile)
	assert.Equal(t, "eu-west-1", s.Key.Region)
	assert.Equal(t, output.FormatYAML, s.Renderer.Format)
	assert.True(t, s.Strict)
}

func TestNewSession_NoConfig(t *testing.T) {
	writeConfig(t, "")
	streams, _ := testStreams()

	s, err := NewSession(viper.New(), streams)
	require.NoError(t, err)
	assert.Empty(t, s.Context)
	assert.Empty(t, s.Key.Profile)
	assert.Equal(t, output.FormatTable, s.Renderer.Format)
}

func TestNewSession_Errors(t *testing.T) {
	streams, _ := testStreams()

	writeConfig(t, "current_context: gone\n")
	_, err := NewSession(viper.New(), streams)
	assert.ErrorIs(t, err, config.ErrContextNotFound)

	writeConfig(t, "current_context: prod\ncontexts:\n  prod:\n")
	_, err = NewSession(viper.New(), streams)
	assert.ErrorIs(t, err, config.ErrContextNotFound)

	writeConfig(t, "")
	v := viper.New()
	v.Set("output", "xml")
	_, err = NewSession(v, streams)
	assert.ErrorIs(t, err, output.ErrUnknownFormat)

	v = viper.New()
	v.Set("log-level", "loud")
	_, err = NewSession(v, streams)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestSettings_PageSizeDefault(t *testing.T) {
	s := &Session{Defaults: &config.Defaults{PageSize: 25}, Strict: true}

	got := s.Settings(&Flags{Force: true, Select: "*"})
	assert.Equal(t, cmdlet.Settings{Select: "*", Force: true, PageSize: 25, Strict: true}, got)

	got = s.Settings(&Flags{PageSize: 5, NextToken: "t2"})
	assert.Equal(t, int32(5), got.PageSize)
	assert.Equal(t, "t2", got.StartToken)
	assert.False(t, got.AutoIterate())
}

func TestFlags_Register(t *testing.T) {
	cmd := &cobra.Command{Use: "delete"}
	var f Flags
	f.Register(cmd, true, false)

	require.NoError(t, cmd.ParseFlags([]string{"--force", "--passthru"}))
	assert.True(t, f.Force)
	assert.True(t, f.PassThru)
	assert.Nil(t, cmd.Flags().Lookup("next-token"))

	list := &cobra.Command{Use: "list"}
	var lf Flags
	lf.Register(list, false, true)
	require.NoError(t, list.ParseFlags([]string{"--page-size", "10", "--no-auto-iteration", "-s", "Servers"}))
	assert.Equal(t, int32(10), lf.PageSize)
	assert.True(t, lf.NoAutoIteration)
	assert.Equal(t, "Servers", lf.Select)
	assert.Nil(t, list.Flags().Lookup("force"))
}

func TestFlags_Require(t *testing.T) {
	cmd := &cobra.Command{Use: "create"}
	var name, key, keyFile string
	cmd.Flags().StringVar(&name, "name", "", "")
	cmd.Flags().StringVar(&key, "key", "", "")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "")

	var f Flags
	f.Register(cmd, true, false)
	f.Require("Name", "name")
	f.Require("Body", "key", "key-file")

	require.NoError(t, cmd.ParseFlags([]string{"--name", "", "--key-file", "id.pub"}))
	assert.Empty(t, f.settings().Omitted)

	bare := &cobra.Command{Use: "create"}
	bare.Flags().StringVar(&name, "name", "", "")
	var bf Flags
	bf.Register(bare, true, false)
	bf.Require("Name", "name")
	require.NoError(t, bare.ParseFlags(nil))
	bf.Omit("ServerId")
	assert.Equal(t, []string{"ServerId", "Name"}, bf.settings().Omitted)
	assert.Equal(t, []string{"Name"}, bf.settings().Omitted)
}

type pingInput struct{ Name string }
type pingOutput struct{ Reply string }

func pingOp(err error) *cmdlet.Operation[pingInput, pingInput, pingOutput] {
	return &cmdlet.Operation[pingInput, pingInput, pingOutput]{
		Name:  "test:Ping",
		Build: func(o *pingInput) (*pingInput, error) { return o, nil },
		Call: func(context.Context, *pingInput) (*pingOutput, error) {
			if err != nil {
				return nil, err
			}
			return &pingOutput{Reply: "pong"}, nil
		},
		Fields:        map[string]func(*pingOutput) any{"Reply": func(r *pingOutput) any { return r.Reply }},
		DefaultSelect: "Reply",
	}
}

func TestRun(t *testing.T) {
	var out, errOut bytes.Buffer
	renderer := output.New(&out, &errOut, output.FormatText)
	s := &Session{
		Defaults: &config.Defaults{},
		Renderer: renderer,
		Runner:   cmdlet.NewRunner(cmdlet.Always(true), renderer, logger.Discard()),
	}

	require.NoError(t, Run(context.Background(), s, pingOp(nil), &pingInput{}, &Flags{}))
	assert.Equal(t, "pong\n", out.String())

	err := Run(context.Background(), s, pingOp(errors.New("boom")), &pingInput{}, &Flags{})
	assert.ErrorIs(t, err, ErrFailed)
	assert.Contains(t, errOut.String(), "Error: test:Ping: boom")

	err = Run(context.Background(), s, pingOp(nil), &pingInput{}, &Flags{Select: "Missing"})
	assert.ErrorIs(t, err, cmdlet.ErrUnknownSelector)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"prompt":"hi"}`), 0600))

	got, err := ReadInput(`{"a":1}`, "", nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got, err = ReadInput("", path, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"prompt":"hi"}`, string(got))

	got, err = ReadInput("", "-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(got))

	got, err = ReadInput("", "", nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ReadInput("x", path, nil)
	assert.ErrorIs(t, err, ErrConflictingInput)

	_, err = ReadInput("", filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorContains(t, err, "failed to read")
}

func TestSecretOr_WithoutName(t *testing.T) {
	s := &Session{}

	got, err := s.SecretOr(context.Background(), "inline", "")
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	_, err = s.SecretOr(context.Background(), "inline", "/ssh/key")
	assert.ErrorIs(t, err, ErrConflictingInput)
}
