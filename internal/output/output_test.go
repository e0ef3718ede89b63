package output

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/cirrus/internal/cmdlet"
)

type server struct {
	ServerId string
	Domain   string
	State    string
	Tags     []string
}

type describeOutput struct {
	Server         *server
	ResultMetadata map[string]string
}

func newRenderer(format Format) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(&out, &errOut, format), &out, &errOut
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: "text", want: FormatText},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmit_JSON(t *testing.T) {
	r, out, _ := newRenderer(FormatJSON)

	require.NoError(t, r.Emit(cmdlet.Record{Operation: "transfer:DescribeServer", Value: &server{ServerId: "s-1", State: "ONLINE"}}))
	assert.JSONEq(t, `{"ServerId":"s-1","Domain":"","State":"ONLINE","Tags":null}`, out.String())
	assert.Contains(t, out.String(), "\n  \"ServerId\"")
}

func TestEmit_YAMLDropsResultMetadata(t *testing.T) {
	r, out, _ := newRenderer(FormatYAML)

	value := &describeOutput{
		Server:         &server{ServerId: "s-1", State: "OFFLINE"},
		ResultMetadata: map[string]string{"RequestId": "abc"},
	}
	require.NoError(t, r.Emit(cmdlet.Record{Value: value}))

	assert.Contains(t, out.String(), "---\n")
	assert.Contains(t, out.String(), "ServerId: s-1")
	assert.NotContains(t, out.String(), "ResultMetadata")
}

func TestEmit_Text(t *testing.T) {
	r, out, _ := newRenderer(FormatText)

	require.NoError(t, r.Emit(cmdlet.Record{Value: "s-1"}))
	require.NoError(t, r.Emit(cmdlet.Record{Value: []string{"a", "b"}}))
	require.NoError(t, r.Emit(cmdlet.Record{Value: &server{ServerId: "s-2"}}))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Equal(t, "s-1", string(lines[0]))
	assert.Equal(t, "a", string(lines[1]))
	assert.Equal(t, "b", string(lines[2]))
	assert.JSONEq(t, `{"ServerId":"s-2","Domain":"","State":"","Tags":null}`, string(lines[3]))
}

func TestEmit_TableList(t *testing.T) {
	r, out, _ := newRenderer(FormatTable)

	servers := []server{
		{ServerId: "s-1", Domain: "S3", State: "ONLINE", Tags: []string{"x"}},
		{ServerId: "s-2", Domain: "EFS", State: "OFFLINE"},
	}
	require.NoError(t, r.Emit(cmdlet.Record{Value: servers}))

	got := out.String()
	assert.Contains(t, got, "ServerId")
	assert.Contains(t, got, "s-2")
	assert.Contains(t, got, "EFS")
	assert.Contains(t, got, "2 items")
	assert.NotContains(t, got, "Tags")
}

func TestEmit_TableObjectAndScalar(t *testing.T) {
	r, out, _ := newRenderer(FormatTable)

	require.NoError(t, r.Emit(cmdlet.Record{Value: &server{ServerId: "s-1", Domain: "S3"}}))
	assert.Contains(t, out.String(), "Field")
	assert.Contains(t, out.String(), "Domain")
	assert.Contains(t, out.String(), "4 fields")

	out.Reset()
	require.NoError(t, r.Emit(cmdlet.Record{Value: "s-1"}))
	assert.Equal(t, "s-1\n", out.String())
}

func TestEmit_TableEmptyList(t *testing.T) {
	r, out, _ := newRenderer(FormatTable)

	require.NoError(t, r.Emit(cmdlet.Record{Value: []server{}}))
	assert.Empty(t, out.String())
}

func TestEmit_ErrorGoesToStderr(t *testing.T) {
	r, out, errOut := newRenderer(FormatJSON)

	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "Unknown server"}
	require.NoError(t, r.Emit(cmdlet.Record{Operation: "transfer:DescribeServer", Err: apiErr}))

	assert.Empty(t, out.String())
	assert.Equal(t, "Error: transfer:DescribeServer: Unknown server (ResourceNotFoundException)\n", errOut.String())
	require.Len(t, r.Failed(), 1)
	assert.Same(t, apiErr, r.Failed()[0].Err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))

	endpointErr := &cmdlet.EndpointError{Host: "transfer.moon-1.amazonaws.com", Err: &net.DNSError{Name: "transfer.moon-1.amazonaws.com", Err: "no such host"}}
	assert.Contains(t, Describe(endpointErr), "unable to resolve service endpoint")
}
