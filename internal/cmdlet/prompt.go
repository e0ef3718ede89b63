package cmdlet

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user to confirm a mutating operation.
type Prompter interface {
	Confirm(ctx context.Context, operation, target string) (bool, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, operation, target string) (bool, error)

// Confirm calls f.
func (f PrompterFunc) Confirm(ctx context.Context, operation, target string) (bool, error) {
	return f(ctx, operation, target)
}

// Always answers every prompt with the same value.
func Always(answer bool) Prompter {
	return PrompterFunc(func(context.Context, string, string) (bool, error) {
		return answer, nil
	})
}

// LinePrompter reads a "[y/N]" answer from a line-oriented reader.
// Anything other than y or yes, including end of input, declines.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// Confirm writes the question and reads one line.
func (p *LinePrompter) Confirm(_ context.Context, operation, target string) (bool, error) {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}

	fmt.Fprintf(p.Out, "%s\nProceed? [y/N]: ", ConfirmMessage(operation, target))

	response, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))

	return response == "y" || response == "yes", nil
}

// ConfirmMessage is the question shown before a mutating operation.
func ConfirmMessage(operation, target string) string {
	if target == "" {
		return fmt.Sprintf("Performing operation %s.", operation)
	}
	return fmt.Sprintf("Performing operation %s on target %q.", operation, target)
}
