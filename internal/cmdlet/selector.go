package cmdlet

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// SelectAll projects the whole response.
const SelectAll = "*"

// projector maps a finished call to the value emitted downstream.
type projector[O, R any] func(opts *O, resp *R) any

func (op *Operation[O, I, R]) selector(s Settings) (projector[O, R], error) {
	if s.PassThru && s.Select != "" {
		return nil, fmt.Errorf("%w: --passthru cannot be combined with --select %q", ErrSelectConflict, s.Select)
	}

	if s.PassThru {
		if op.PassThru == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoPassThru, op.Name)
		}
		return op.paramEcho(op.PassThru)
	}

	sel := s.Select
	if sel == "" {
		sel = op.DefaultSelect
	}

	switch {
	case sel == "":
		return func(*O, *R) any { return nil }, nil
	case sel == SelectAll:
		return func(_ *O, r *R) any { return r }, nil
	case strings.HasPrefix(sel, "^"):
		return op.paramEcho(strings.TrimPrefix(sel, "^"))
	}

	for name, field := range op.Fields {
		if strings.EqualFold(name, sel) {
			return func(_ *O, r *R) any { return field(r) }, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not a field of the %s response (known: %s)",
		ErrUnknownSelector, sel, op.Name, strings.Join(op.fieldNames(), ", "))
}

func (op *Operation[O, I, R]) paramEcho(name string) (projector[O, R], error) {
	for param, echo := range op.Params {
		if strings.EqualFold(param, name) {
			return func(o *O, _ *R) any { return echo(o) }, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not a parameter of %s", ErrUnknownSelector, name, op.Name)
}

func (op *Operation[O, I, R]) fieldNames() []string {
	names := []string{SelectAll}
	for name := range op.Fields {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// isNil treats typed nil pointers, slices and maps inside an interface as nothing to emit.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
