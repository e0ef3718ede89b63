package cmdlet

import (
	"context"
	"fmt"
	"slices"

	"github.com/vietdv277/cirrus/internal/logger"
)

// Record is the output envelope: either a projected value or the error of the call.
type Record struct {
	Operation string
	Page      int
	Value     any
	Err       error
}

// Emitter receives records as they are produced.
type Emitter interface {
	Emit(Record) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Record) error

// Emit calls f.
func (f EmitterFunc) Emit(r Record) error {
	return f(r)
}

// Report summarises one invocation.
type Report struct {
	Calls    int
	Emitted  int
	Declined bool
	Failed   bool
}

// Runner carries the collaborators an invocation needs.
type Runner struct {
	Prompter Prompter
	Emitter  Emitter
	Log      logger.Logger
}

// NewRunner creates a Runner. A nil logger falls back to the process default.
func NewRunner(p Prompter, e Emitter, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Default()
	}
	return &Runner{Prompter: p, Emitter: e, Log: log}
}

// Invoke runs op with opts.
//
// The returned error is reserved for argument problems detected before any call and for
// output failures. An error returned by the service is captured in an emitted Record and
// flagged in the Report instead.
func Invoke[O, I, R any](ctx context.Context, r *Runner, op *Operation[O, I, R], opts *O, s Settings) (Report, error) {
	var report Report
	r.transition(op.Name, StateIdle)

	project, err := op.selector(s)
	if err != nil {
		return report, err
	}

	if err := checkRequired(r, op.Name, op.Required, opts, s); err != nil {
		return report, err
	}

	if op.Mutating && !s.Force {
		r.transition(op.Name, StateConfirming)
		ok, err := r.Prompter.Confirm(ctx, op.Name, op.target(opts))
		if err != nil {
			return report, fmt.Errorf("failed to confirm %s: %w", op.Name, err)
		}
		if !ok {
			r.transition(op.Name, StateDeclined)
			report.Declined = true
			return report, nil
		}
	}

	in, err := op.Build(opts)
	if err != nil {
		return report, fmt.Errorf("invalid parameters for %s: %w", op.Name, err)
	}

	// Cancelling the invocation context aborts the in-flight call.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	auto := op.Paging != nil && s.AutoIterate()
	if op.Paging != nil {
		if s.PageSize > 0 && op.Paging.SetLimit != nil {
			op.Paging.SetLimit(in, s.PageSize)
		}
		if s.StartToken != "" {
			token := s.StartToken
			op.Paging.SetToken(in, &token)
		}
	}

	for page := 1; ; page++ {
		r.transition(op.Name, StateRequesting)

		out, err := op.Call(ctx, in)
		report.Calls++
		if err != nil {
			r.transition(op.Name, StateFailed)
			report.Failed = true
			if emitErr := r.Emitter.Emit(Record{Operation: op.Name, Page: page, Err: WrapNetworkError(err)}); emitErr != nil {
				return report, fmt.Errorf("failed to emit output: %w", emitErr)
			}
			return report, nil
		}

		if v := project(opts, out); !isNil(v) {
			if err := r.Emitter.Emit(Record{Operation: op.Name, Page: page, Value: v}); err != nil {
				return report, fmt.Errorf("failed to emit output: %w", err)
			}
			report.Emitted++
		}

		if op.Paging == nil {
			break
		}

		next := op.Paging.Token(out)
		if next == nil || *next == "" {
			break
		}
		if !auto {
			r.Log.Info("more results available", "operation", op.Name, "next-token", *next)
			break
		}

		op.Paging.SetToken(in, next)
		r.transition(op.Name, StatePaginating)
	}

	r.transition(op.Name, StateSucceeded)
	return report, nil
}

// checkRequired fails on a required parameter that was never supplied. One supplied with an
// empty value only warns, unless strict.
func checkRequired[O any](r *Runner, name string, required func(*O) []Param, opts *O, s Settings) error {
	if required == nil {
		return nil
	}

	params := required(opts)
	for _, p := range params {
		if p.Omitted || slices.Contains(s.Omitted, p.Name) {
			return fmt.Errorf("%w: %s requires %s", ErrRequiredMissing, name, p.Name)
		}
	}

	for _, p := range params {
		if !p.Empty {
			continue
		}
		if s.Strict {
			return fmt.Errorf("%w: %s requires %s", ErrRequiredEmpty, name, p.Name)
		}
		r.Log.Warn("required parameter is empty, sending the request anyway", "operation", name, "parameter", p.Name)
	}
	return nil
}

func (r *Runner) transition(operation string, s State) {
	r.Log.Debug("adapter state", "operation", operation, "state", s)
}
