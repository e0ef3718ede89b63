package cmdlet

import (
	"fmt"
	"strings"
)

// Populated returns v when at least one of its fields was set, nil otherwise.
// Nested request structures go through here so that empty ones are never sent.
func Populated[T any](v *T, set bool) *T {
	if !set {
		return nil
	}
	return v
}

// String returns a pointer to s, or nil when s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Strings returns v, or nil when it is empty.
func Strings(v []string) []string {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ParseKeyValues parses "key=value" pairs. Keys must be non-empty and unique.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not in key=value form", ErrInvalidArgument, pair)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidArgument, key)
		}
		out[key] = value
	}
	return out, nil
}

// Enum matches v case-insensitively against the known values of an SDK enum.
// An empty v yields the zero value.
func Enum[T ~string](param, v string, known []T) (T, error) {
	if v == "" {
		return "", nil
	}
	for _, k := range known {
		if strings.EqualFold(string(k), v) {
			return k, nil
		}
	}

	names := make([]string, len(known))
	for i, k := range known {
		names[i] = string(k)
	}
	return "", fmt.Errorf("%w: %s must be one of %s, got %q", ErrInvalidArgument, param, strings.Join(names, ", "), v)
}

// Int32 returns a pointer to v when set is true, nil otherwise.
func Int32(v int32, set bool) *int32 {
	if !set {
		return nil
	}
	return &v
}

// Bool returns a pointer to v when set is true, nil otherwise.
func Bool(v bool, set bool) *bool {
	if !set {
		return nil
	}
	return &v
}
