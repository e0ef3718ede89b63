// Package output renders adapter records on the terminal.
package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/aws/smithy-go"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/vietdv277/cirrus/internal/cmdlet"
	"github.com/vietdv277/cirrus/internal/ui"
)

// Format selects how values are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatText  Format = "text"
)

// ErrUnknownFormat is returned for an unsupported --output value.
var ErrUnknownFormat = errors.New("unknown output format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxTableColumns bounds the columns derived from list items.
const maxTableColumns = 6

// ParseFormat validates an --output value. An empty value means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (use table, json, yaml or text)", ErrUnknownFormat, s)
}

// Renderer is a cmdlet.Emitter that writes values to Out and errors to Err.
type Renderer struct {
	Out    io.Writer
	Err    io.Writer
	Format Format

	mu     sync.Mutex
	failed []cmdlet.Record
}

// New creates a Renderer.
func New(out, errOut io.Writer, format Format) *Renderer {
	return &Renderer{Out: out, Err: errOut, Format: format}
}

// Emit implements cmdlet.Emitter.
func (r *Renderer) Emit(rec cmdlet.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.Err != nil {
		r.failed = append(r.failed, rec)
		_, err := fmt.Fprintf(r.Err, "Error: %s: %s\n", rec.Operation, Describe(rec.Err))
		return err
	}

	switch r.Format {
	case FormatJSON:
		return r.writeJSON(rec.Value)
	case FormatYAML:
		return r.writeYAML(rec.Value)
	case FormatText:
		return r.writeText(rec.Value)
	default:
		return r.writeTable(rec.Value)
	}
}

// Failed returns the error records emitted so far.
func (r *Renderer) Failed() []cmdlet.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]cmdlet.Record(nil), r.failed...)
}

// Describe formats a service error as "message (code)" when the service reported a code.
func Describe(err error) string {
	var endpointErr *cmdlet.EndpointError
	if errors.As(err, &endpointErr) {
		return endpointErr.Error()
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Sprintf("%s (%s)", msg, apiErr.ErrorCode())
	}
	return err.Error()
}

func (r *Renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.Out, string(data))
	return err
}

func (r *Renderer) writeYAML(v any) error {
	plain, err := normalize(v)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(plain)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = fmt.Fprint(r.Out, "---\n"+string(data))
	return err
}

func (r *Renderer) writeText(v any) error {
	plain, err := normalize(v)
	if err != nil {
		return err
	}

	if items, ok := plain.([]any); ok {
		for _, item := range items {
			if _, err := fmt.Fprintln(r.Out, scalar(item)); err != nil {
				return err
			}
		}
		return nil
	}
	_, err = fmt.Fprintln(r.Out, scalar(plain))
	return err
}

func (r *Renderer) writeTable(v any) error {
	plain, err := normalize(v)
	if err != nil {
		return err
	}

	switch val := plain.(type) {
	case []any:
		if len(val) == 0 {
			return nil
		}
		if _, ok := val[0].(map[string]any); !ok {
			return r.writeText(val)
		}
		listTable(val).Render(r.Out)
	case map[string]any:
		detailTable(val).Render(r.Out)
	default:
		_, err = fmt.Fprintln(r.Out, scalar(val))
		return err
	}
	return nil
}

// normalize converts SDK values into plain maps, slices and scalars keyed by field name.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}

	var plain any
	if err := json.Unmarshal(data, &plain); err != nil {
		return nil, fmt.Errorf("failed to decode output: %w", err)
	}

	if m, ok := plain.(map[string]any); ok {
		delete(m, "ResultMetadata")
	}
	return plain, nil
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64, bool:
		return fmt.Sprint(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, float64, bool:
		return true
	}
	return false
}

// columnRank orders identifier-like columns first, then names, then states.
func columnRank(key string) int {
	switch {
	case strings.HasSuffix(key, "Id") || strings.HasSuffix(key, "Identifier"):
		return 0
	case strings.HasSuffix(key, "Name") || key == "Key":
		return 1
	case key == "State" || key == "Status":
		return 2
	default:
		return 3
	}
}

func listTable(items []any) *ui.Table {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for k, v := range m {
			if !seen[k] && isScalar(v) {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := columnRank(keys[i]), columnRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	if len(keys) > maxTableColumns {
		keys = keys[:maxTableColumns]
	}

	table := ui.NewTable(keys...)
	table.Noun = "items"
	for i, k := range keys {
		if k == "State" || k == "Status" {
			table.StateColumn = i
		}
	}

	for _, item := range items {
		m, _ := item.(map[string]any)
		cells := make([]string, len(keys))
		for i, k := range keys {
			cells[i] = scalar(m[k])
		}
		table.Append(cells...)
	}
	return table
}

func detailTable(m map[string]any) *ui.Table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := ui.NewTable("Field", "Value")
	table.Noun = "fields"
	for _, k := range keys {
		table.Append(k, scalar(m[k]))
	}
	return table
}
