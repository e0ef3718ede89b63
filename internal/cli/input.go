package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrConflictingInput is returned when a value is given both inline and from a file.
var ErrConflictingInput = errors.New("conflicting input")

// ReadInput returns inline as bytes, or the content of path ("-" reads stdin).
func ReadInput(inline, path string, stdin io.Reader) ([]byte, error) {
	switch {
	case inline != "" && path != "":
		return nil, fmt.Errorf("%w: give either an inline value or a file, not both", ErrConflictingInput)
	case path == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	case inline != "":
		return []byte(inline), nil
	}
	return nil, nil
}

// SecretOr returns value unless name is set, in which case the secret stored
// under name is resolved instead. Setting both is an error.
func (s *Session) SecretOr(ctx context.Context, value, name string) (string, error) {
	switch {
	case value != "" && name != "":
		return "", fmt.Errorf("%w: give either a value or a secret name, not both", ErrConflictingInput)
	case name == "":
		return value, nil
	}
	return s.Secret(ctx, name)
}
