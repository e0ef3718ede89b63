package ui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// HuhPrompter asks for confirmation with a huh form.
type HuhPrompter struct{}

// Confirm implements cmdlet.Prompter. Aborting the form declines.
func (HuhPrompter) Confirm(ctx context.Context, operation, target string) (bool, error) {
	confirm := false
	prompt := huh.NewConfirm().
		Title(cmdlet.ConfirmMessage(operation, target)).
		Description("Proceed?").
		Affirmative("Yes").
		Negative("No").
		Value(&confirm)

	if err := huh.NewForm(huh.NewGroup(prompt)).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirm, nil
}

// NewPrompter returns an interactive prompter when in is a terminal and
// a line-based one otherwise.
func NewPrompter(in *os.File, out io.Writer) cmdlet.Prompter {
	if IsTerminal(in) {
		return HuhPrompter{}
	}
	return &cmdlet.LinePrompter{In: in, Out: out}
}
