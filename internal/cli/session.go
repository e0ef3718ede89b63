// Package cli holds the glue shared by the command trees: the per-invocation
// session, the common flag set and input helpers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	"github.com/vietdv277/cirrus/internal/config"
	"github.com/vietdv277/cirrus/internal/logger"
	"github.com/vietdv277/cirrus/internal/output"
	"github.com/vietdv277/cirrus/internal/ui"
)

// ErrFailed reports that at least one call failed. The failure was already rendered.
var ErrFailed = errors.New("one or more calls failed")

// Session is the state one command invocation works with.
type Session struct {
	Key      awsclient.Key
	Context  string
	Defaults *config.Defaults
	Strict   bool

	Factory  *awsclient.Factory
	Renderer *output.Renderer
	Runner   *cmdlet.Runner
}

// Streams are the terminal handles a session reads from and writes to.
type Streams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// Open builds a session for cmd from the global viper settings and the standard streams.
func Open(cmd *cobra.Command) (*Session, error) {
	return NewSession(viper.GetViper(), Streams{In: os.Stdin, Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
}

// NewSession resolves profile, region, output format and strictness.
//
// Precedence is flag, then CRS_ environment variable, then the current context
// and config defaults. Anything still unset is left to the SDK (AWS_PROFILE, AWS_REGION).
func NewSession(v *viper.Viper, streams Streams) (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	s := &Session{
		Key: awsclient.Key{
			Profile: v.GetString("profile"),
			Region:  v.GetString("region"),
		},
		Defaults: cfg.Defaults,
		Strict:   v.GetBool("strict") || cfg.Defaults.StrictRequired,
	}

	if cfg.CurrentContext != "" {
		current, ok := cfg.Contexts[cfg.CurrentContext]
		if !ok || current == nil {
			return nil, fmt.Errorf("%w: %q", config.ErrContextNotFound, cfg.CurrentContext)
		}
		s.Context = cfg.CurrentContext
		if s.Key.Profile == "" {
			s.Key.Profile = current.Profile
		}
		if s.Key.Region == "" {
			s.Key.Region = current.Region
		}
	}

	level := v.GetString("log-level")
	if level == "" {
		level = cfg.Defaults.LogLevel
	}
	if err := logger.SetLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	formatName := v.GetString("output")
	if formatName == "" {
		formatName = cfg.Defaults.Output
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	s.Factory = awsclient.NewFactory()
	s.Renderer = output.New(streams.Out, streams.Err, format)
	s.Runner = cmdlet.NewRunner(ui.NewPrompter(streams.In, streams.Err), s.Renderer, logger.Default())

	logger.Default().Debug("session", "profile", s.Key.Profile, "region", s.Key.Region, "context", s.Context, "output", format)
	return s, nil
}

// Settings combines the command flags with the configured defaults.
func (s *Session) Settings(f *Flags) cmdlet.Settings {
	settings := f.settings()
	settings.Strict = s.Strict
	if settings.PageSize == 0 && s.Defaults != nil {
		settings.PageSize = s.Defaults.PageSize
	}
	return settings
}

// Transfer returns the AWS Transfer Family client for the session key.
func (s *Session) Transfer(ctx context.Context) (awsclient.TransferAPI, error) {
	return s.Factory.Transfer(ctx, s.Key)
}

// AgentCore returns the Bedrock AgentCore client for the session key.
func (s *Session) AgentCore(ctx context.Context) (awsclient.AgentCoreAPI, error) {
	return s.Factory.AgentCore(ctx, s.Key)
}

// EC2 returns the EC2 client for the session key.
func (s *Session) EC2(ctx context.Context) (awsclient.EC2API, error) {
	return s.Factory.EC2(ctx, s.Key)
}

// Secret reads a value from Parameter Store ("/path") or Secrets Manager (id).
func (s *Session) Secret(ctx context.Context, name string) (string, error) {
	resolver, err := s.Factory.Secrets(ctx, s.Key)
	if err != nil {
		return "", err
	}
	return resolver.Resolve(ctx, name)
}

// Run invokes op and turns a failed call into ErrFailed so the process exits non-zero.
func Run[O, I, R any](ctx context.Context, s *Session, op *cmdlet.Operation[O, I, R], opts *O, f *Flags) error {
	report, err := cmdlet.Invoke(ctx, s.Runner, op, opts, s.Settings(f))
	if err != nil {
		return err
	}
	if report.Failed {
		return ErrFailed
	}
	return nil
}
