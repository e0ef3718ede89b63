package agentcore

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcore/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/cirrus/internal/cmdlet"
)

func TestBuildStartBrowserSession_ViewPort(t *testing.T) {
	in, err := BuildStartBrowserSession(&StartBrowserOptions{StartSessionOptions: StartSessionOptions{Identifier: "aws.browser.v1"}})
	require.NoError(t, err)
	assert.Nil(t, in.ViewPort)
	assert.Nil(t, in.Name)
	assert.Nil(t, in.SessionTimeoutSeconds)

	in, err = BuildStartBrowserSession(&StartBrowserOptions{
		StartSessionOptions: StartSessionOptions{Identifier: "aws.browser.v1"},
		ViewPort:            ViewPortOptions{Width: aws.Int32(1280)},
	})
	require.NoError(t, err)
	assert.Equal(t, &actypes.ViewPort{Width: aws.Int32(1280)}, in.ViewPort)
}

func TestStartBrowserSession_EmitsSessionID(t *testing.T) {
	client := new(mockAgentCore)
	client.On("StartBrowserSession", mock.Anything, mock.Anything).Return(&bedrockagentcore.StartBrowserSessionOutput{
		BrowserIdentifier: aws.String("aws.browser.v1"),
		SessionId:         aws.String("sess-1"),
	}, nil)

	runner, rec := newRunner()

	opts := &StartBrowserOptions{StartSessionOptions: StartSessionOptions{Identifier: "aws.browser.v1", TimeoutSeconds: aws.Int32(900)}}
	_, err := cmdlet.Invoke(context.Background(), runner, StartBrowserSession(client), opts, cmdlet.Settings{Force: true})
	require.NoError(t, err)
	require.Len(t, rec.records, 1)
	assert.Equal(t, "sess-1", rec.records[0].Value)

	in := client.Calls[0].Arguments.Get(1).(*bedrockagentcore.StartBrowserSessionInput)
	assert.Equal(t, int32(900), aws.ToInt32(in.SessionTimeoutSeconds))
}

func TestListBrowserSessions_ThreePages(t *testing.T) {
	client := new(mockAgentCore)
	pages := []*bedrockagentcore.ListBrowserSessionsOutput{
		{Items: []actypes.BrowserSessionSummary{{SessionId: aws.String("a")}}, NextToken: aws.String("t2")},
		{Items: []actypes.BrowserSessionSummary{{SessionId: aws.String("b")}}, NextToken: aws.String("t3")},
		{Items: []actypes.BrowserSessionSummary{{SessionId: aws.String("c")}}},
	}
	var tokens []string
	for _, p := range pages {
		client.On("ListBrowserSessions", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			in := args.Get(1).(*bedrockagentcore.ListBrowserSessionsInput)
			tokens = append(tokens, aws.ToString(in.NextToken))
		}).Return(p, nil).Once()
	}

	runner, rec := newRunner()

	report, err := cmdlet.Invoke(context.Background(), runner, ListBrowserSessions(client), &ListSessionsOptions{Identifier: "aws.browser.v1", Status: "ready"}, cmdlet.Settings{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Calls)
	assert.Len(t, rec.records, 3)
	assert.Equal(t, []string{"", "t2", "t3"}, tokens)

	in := client.Calls[0].Arguments.Get(1).(*bedrockagentcore.ListBrowserSessionsInput)
	assert.Equal(t, actypes.BrowserSessionStatusReady, in.Status)
}

func TestListCodeInterpreterSessions_NoAutoIteration(t *testing.T) {
	client := new(mockAgentCore)
	client.On("ListCodeInterpreterSessions", mock.Anything, mock.Anything).Return(&bedrockagentcore.ListCodeInterpreterSessionsOutput{
		Items:     []actypes.CodeInterpreterSessionSummary{{SessionId: aws.String("a")}},
		NextToken: aws.String("t2"),
	}, nil)

	runner, rec := newRunner()

	report, err := cmdlet.Invoke(context.Background(), runner, ListCodeInterpreterSessions(client), &ListSessionsOptions{Identifier: "aws.codeinterpreter.v1"}, cmdlet.Settings{NoAutoIteration: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Calls)
	assert.Len(t, rec.records, 1)
}

func TestStopCodeInterpreterSession_PassThru(t *testing.T) {
	client := new(mockAgentCore)
	client.On("StopCodeInterpreterSession", mock.Anything, mock.Anything).Return(&bedrockagentcore.StopCodeInterpreterSessionOutput{}, nil)

	runner, rec := newRunner()

	opts := &SessionOptions{Identifier: "aws.codeinterpreter.v1", SessionID: "sess-9"}
	_, err := cmdlet.Invoke(context.Background(), runner, StopCodeInterpreterSession(client), opts, cmdlet.Settings{Force: true, PassThru: true})
	require.NoError(t, err)
	require.Len(t, rec.records, 1)
	assert.Equal(t, "sess-9", rec.records[0].Value)
}

func TestParseMessage(t *testing.T) {
	m, err := ParseMessage("user:what is the weather: today?")
	require.NoError(t, err)
	assert.Equal(t, Message{Role: "user", Text: "what is the weather: today?"}, m)

	_, err = ParseMessage("no role here")
	assert.ErrorIs(t, err, cmdlet.ErrInvalidArgument)

	_, err = ParseMessage(":text")
	assert.ErrorIs(t, err, cmdlet.ErrInvalidArgument)
}

func TestBuildCreateEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	in, err := BuildCreateEvent(&CreateEventOptions{
		EventScope: EventScope{MemoryID: "mem-1", ActorID: "actor-1", SessionID: "sess-1"},
		Timestamp:  ts,
		Messages:   []Message{{Role: "user", Text: "hi"}, {Role: "ASSISTANT", Text: "hello"}},
	})
	require.NoError(t, err)

	assert.Equal(t, ts, aws.ToTime(in.EventTimestamp))
	assert.Nil(t, in.Branch)
	require.Len(t, in.Payload, 2)

	first, ok := in.Payload[0].(*actypes.PayloadTypeMemberConversational)
	require.True(t, ok)
	assert.Equal(t, actypes.RoleUser, first.Value.Role)
	assert.Equal(t, &actypes.ContentMemberText{Value: "hi"}, first.Value.Content)

	second := in.Payload[1].(*actypes.PayloadTypeMemberConversational)
	assert.Equal(t, actypes.RoleAssistant, second.Value.Role)

	in, err = BuildCreateEvent(&CreateEventOptions{Branch: BranchOptions{Name: "retry"}})
	require.NoError(t, err)
	assert.Equal(t, &actypes.Branch{Name: aws.String("retry")}, in.Branch)
	assert.Nil(t, in.EventTimestamp)

	_, err = BuildCreateEvent(&CreateEventOptions{Messages: []Message{{Role: "narrator", Text: "x"}}})
	assert.ErrorIs(t, err, cmdlet.ErrInvalidArgument)
}

func TestBuildListEvents_Filter(t *testing.T) {
	scope := EventScope{MemoryID: "mem-1", ActorID: "actor-1", SessionID: "sess-1"}

	in, err := BuildListEvents(&ListEventsOptions{EventScope: scope})
	require.NoError(t, err)
	assert.Nil(t, in.Filter)
	assert.Nil(t, in.IncludePayloads)

	in, err = BuildListEvents(&ListEventsOptions{EventScope: scope, Branch: BranchFilterOptions{IncludeParentBranches: aws.Bool(true)}})
	require.NoError(t, err)
	require.NotNil(t, in.Filter)
	assert.Equal(t, &actypes.BranchFilter{IncludeParentBranches: aws.Bool(true)}, in.Filter.Branch)
}

func TestDeleteEvent_Declined(t *testing.T) {
	client := new(mockAgentCore)
	rec := &recorder{}
	runner := cmdlet.NewRunner(cmdlet.Always(false), rec, nil)

	opts := &EventOptions{EventScope: EventScope{MemoryID: "mem-1", ActorID: "a", SessionID: "s"}, EventID: "evt-1"}
	report, err := cmdlet.Invoke(context.Background(), runner, DeleteEvent(client), opts, cmdlet.Settings{})
	require.NoError(t, err)
	assert.True(t, report.Declined)
	assert.Zero(t, report.Calls)
	client.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything)
}

func TestListActorsAndSessions(t *testing.T) {
	client := new(mockAgentCore)
	client.On("ListActors", mock.Anything, mock.Anything).Return(&bedrockagentcore.ListActorsOutput{
		ActorSummaries: []actypes.ActorSummary{{ActorId: aws.String("actor-1")}},
	}, nil)
	client.On("ListSessions", mock.Anything, mock.MatchedBy(func(in *bedrockagentcore.ListSessionsInput) bool {
		return aws.ToString(in.ActorId) == "actor-1"
	})).Return(&bedrockagentcore.ListSessionsOutput{
		SessionSummaries: []actypes.SessionSummary{{SessionId: aws.String("sess-1")}},
	}, nil)

	runner, rec := newRunner()
	opts := &MemoryOptions{MemoryID: "mem-1", ActorID: "actor-1"}

	_, err := cmdlet.Invoke(context.Background(), runner, ListActors(client), opts, cmdlet.Settings{})
	require.NoError(t, err)
	_, err = cmdlet.Invoke(context.Background(), runner, ListSessions(client), opts, cmdlet.Settings{})
	require.NoError(t, err)

	require.Len(t, rec.records, 2)
	assert.IsType(t, []actypes.ActorSummary{}, rec.records[0].Value)
	assert.IsType(t, []actypes.SessionSummary{}, rec.records[1].Value)
	client.AssertExpectations(t)
}

func TestBuildRetrieveMemoryRecords_SearchCriteria(t *testing.T) {
	in, err := BuildRetrieveMemoryRecords(&RetrieveRecordsOptions{MemoryID: "mem-1", Namespace: "/users/alice"})
	require.NoError(t, err)
	assert.Nil(t, in.SearchCriteria)

	in, err = BuildRetrieveMemoryRecords(&RetrieveRecordsOptions{
		MemoryID:  "mem-1",
		Namespace: "/users/alice",
		Search:    SearchOptions{Query: "favourite colour", TopK: aws.Int32(3)},
	})
	require.NoError(t, err)
	assert.Equal(t, &actypes.SearchCriteria{SearchQuery: aws.String("favourite colour"), TopK: aws.Int32(3)}, in.SearchCriteria)
}

func TestRetrieveMemoryRecords_StrictRequired(t *testing.T) {
	client := new(mockAgentCore)
	runner, _ := newRunner()

	_, err := cmdlet.Invoke(context.Background(), runner, RetrieveMemoryRecords(client), &RetrieveRecordsOptions{MemoryID: "mem-1", Namespace: "/ns"}, cmdlet.Settings{Strict: true})
	assert.ErrorIs(t, err, cmdlet.ErrRequiredEmpty)
	assert.ErrorContains(t, err, "SearchQuery")
	client.AssertNotCalled(t, "RetrieveMemoryRecords", mock.Anything, mock.Anything)
}

func TestGetMemoryRecord_DNSFailure(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "bedrock-agentcore.mars-east-1.amazonaws.com", IsNotFound: true}
	client := new(mockAgentCore)
	client.On("GetMemoryRecord", mock.Anything, mock.Anything).Return(nil, &net.OpError{Op: "dial", Err: dnsErr})

	runner, rec := newRunner()

	report, err := cmdlet.Invoke(context.Background(), runner, GetMemoryRecord(client), &RecordOptions{MemoryID: "mem-1", MemoryRecordID: "rec-1"}, cmdlet.Settings{})
	require.NoError(t, err)
	assert.True(t, report.Failed)
	require.Len(t, rec.records, 1)

	var endpointErr *cmdlet.EndpointError
	require.ErrorAs(t, rec.records[0].Err, &endpointErr)
	assert.Equal(t, "bedrock-agentcore.mars-east-1.amazonaws.com", endpointErr.Host)

	var original *net.DNSError
	assert.ErrorAs(t, rec.records[0].Err, &original)
}

func TestDeleteMemoryRecord(t *testing.T) {
	client := new(mockAgentCore)
	client.On("DeleteMemoryRecord", mock.Anything, mock.Anything).Return(&bedrockagentcore.DeleteMemoryRecordOutput{MemoryRecordId: aws.String("rec-1")}, nil)

	runner, rec := newRunner()

	_, err := cmdlet.Invoke(context.Background(), runner, DeleteMemoryRecord(client), &RecordOptions{MemoryID: "mem-1", MemoryRecordID: "rec-1"}, cmdlet.Settings{Force: true})
	require.NoError(t, err)
	require.Len(t, rec.records, 1)
	assert.Equal(t, "rec-1", rec.records[0].Value)
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestInvokeAgentRuntime_ReadsBody(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader(`{"answer":42}`)}
	client := new(mockAgentCore)
	client.On("InvokeAgentRuntime", mock.Anything, mock.MatchedBy(func(in *bedrockagentcore.InvokeAgentRuntimeInput) bool {
		return string(in.Payload) == `{"prompt":"hi"}`
	})).Return(&bedrockagentcore.InvokeAgentRuntimeOutput{
		ContentType:      aws.String("application/json"),
		RuntimeSessionId: aws.String("rs-1"),
		Response:         body,
	}, nil)

	runner, rec := newRunner()

	opts := &InvokeRuntimeOptions{AgentRuntimeArn: "arn:aws:bedrock-agentcore:us-east-1:123456789012:runtime/agent", Payload: []byte(`{"prompt":"hi"}`)}
	_, err := cmdlet.Invoke(context.Background(), runner, InvokeAgentRuntime(client), opts, cmdlet.Settings{})
	require.NoError(t, err)

	require.Len(t, rec.records, 1)
	assert.Equal(t, `{"answer":42}`, rec.records[0].Value)
	assert.True(t, body.closed)

	_, err = cmdlet.Invoke(context.Background(), runner, InvokeAgentRuntime(client), opts, cmdlet.Settings{Select: "^RuntimeSessionId"})
	require.NoError(t, err)
	assert.Equal(t, "", rec.records[1].Value)
}

func TestInvokeAgentRuntime_ServiceError(t *testing.T) {
	client := new(mockAgentCore)
	client.On("InvokeAgentRuntime", mock.Anything, mock.Anything).Return(nil, errors.New("ThrottlingException"))

	runner, rec := newRunner()

	report, err := cmdlet.Invoke(context.Background(), runner, InvokeAgentRuntime(client), &InvokeRuntimeOptions{AgentRuntimeArn: "arn", Payload: []byte("x")}, cmdlet.Settings{})
	require.NoError(t, err)
	assert.True(t, report.Failed)
	assert.ErrorContains(t, rec.records[0].Err, "ThrottlingException")
}

func TestWorkloadTokenVariants(t *testing.T) {
	client := new(mockAgentCore)
	client.On("GetWorkloadAccessToken", mock.Anything, mock.Anything).
		Return(&bedrockagentcore.GetWorkloadAccessTokenOutput{WorkloadAccessToken: aws.String("plain")}, nil)
	client.On("GetWorkloadAccessTokenForJWT", mock.Anything, mock.MatchedBy(func(in *bedrockagentcore.GetWorkloadAccessTokenForJWTInput) bool {
		return aws.ToString(in.UserToken) == "jwt"
	})).Return(&bedrockagentcore.GetWorkloadAccessTokenForJWTOutput{WorkloadAccessToken: aws.String("for-jwt")}, nil)
	client.On("GetWorkloadAccessTokenForUserId", mock.Anything, mock.MatchedBy(func(in *bedrockagentcore.GetWorkloadAccessTokenForUserIdInput) bool {
		return aws.ToString(in.UserId) == "alice"
	})).Return(&bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput{WorkloadAccessToken: aws.String("for-user")}, nil)
	client.On("GetResourceApiKey", mock.Anything, mock.Anything).
		Return(&bedrockagentcore.GetResourceApiKeyOutput{ApiKey: aws.String("key")}, nil)

	runner, rec := newRunner()
	ctx := context.Background()

	_, err := cmdlet.Invoke(ctx, runner, GetWorkloadAccessToken(client), &WorkloadTokenOptions{WorkloadName: "w"}, cmdlet.Settings{})
	require.NoError(t, err)
	_, err = cmdlet.Invoke(ctx, runner, GetWorkloadAccessTokenForJWT(client), &WorkloadTokenOptions{WorkloadName: "w", UserToken: "jwt"}, cmdlet.Settings{})
	require.NoError(t, err)
	_, err = cmdlet.Invoke(ctx, runner, GetWorkloadAccessTokenForUserId(client), &WorkloadTokenOptions{WorkloadName: "w", UserID: "alice"}, cmdlet.Settings{})
	require.NoError(t, err)
	_, err = cmdlet.Invoke(ctx, runner, GetResourceApiKey(client), &APIKeyOptions{ProviderName: "github", WorkloadIdentityToken: "plain"}, cmdlet.Settings{})
	require.NoError(t, err)

	var got []any
	for _, r := range rec.records {
		got = append(got, r.Value)
	}
	assert.Equal(t, []any{"plain", "for-jwt", "for-user", "key"}, got)
	client.AssertExpectations(t)
}
