// Package cmdlet implements the command adapter shared by every service operation:
// parameter checks, confirmation, request building, a single client call (or one per page),
// response projection and error capture into an output record.
package cmdlet

import (
	"context"
)

// Operation describes one service operation. O is the typed options struct filled from
// command-line parameters, I the SDK request and R the SDK response.
type Operation[O, I, R any] struct {
	// Name identifies the operation in prompts, logs and records, e.g. "transfer:CreateServer".
	Name string

	// Mutating operations ask for confirmation unless forced.
	Mutating bool

	// Target describes the resource the operation acts on, shown in the confirmation prompt.
	Target func(*O) string

	// Required lists the required parameters and whether each was bound to an empty value.
	Required func(*O) []Param

	// Build turns options into the SDK request.
	Build func(*O) (*I, error)

	// Call performs the client invocation.
	Call func(context.Context, *I) (*R, error)

	// Fields are the named response projections. "*" (the whole response) is implicit.
	Fields map[string]func(*R) any

	// Params are the parameter echoes, selected with a leading "^".
	Params map[string]func(*O) any

	// DefaultSelect is used when the caller gives no selector. Empty means emit nothing.
	DefaultSelect string

	// PassThru names the parameter echoed by the legacy pass-through flag.
	PassThru string

	// Paging is set for list operations that return a continuation token.
	Paging *Paging[I, R]
}

// Paging wires the continuation token and page size of a list operation.
type Paging[I, R any] struct {
	Token    func(*R) *string
	SetToken func(*I, *string)
	SetLimit func(*I, int32)
}

// Param is the bound state of a required parameter. Omitted means it was never given;
// Empty means it was given with an empty value.
type Param struct {
	Name    string
	Empty   bool
	Omitted bool
}

// Require reports a required parameter; empty marks it as bound to an empty value.
func Require(name string, empty bool) Param {
	return Param{Name: name, Empty: empty}
}

// Settings are the cross-cutting parameters every command exposes.
type Settings struct {
	Select          string
	PassThru        bool
	Force           bool
	NoAutoIteration bool
	StartToken      string
	PageSize        int32
	Strict          bool

	// Omitted names the required parameters the caller never supplied.
	Omitted []string
}

// AutoIterate reports whether a list operation follows continuation tokens on its own.
func (s Settings) AutoIterate() bool {
	return s.StartToken == "" && !s.NoAutoIteration
}

func (op *Operation[O, I, R]) target(opts *O) string {
	if op.Target == nil {
		return ""
	}
	return op.Target(opts)
}
