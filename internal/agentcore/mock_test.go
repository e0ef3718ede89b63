package agentcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	"github.com/stretchr/testify/mock"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	"github.com/vietdv277/cirrus/internal/logger"
)

type mockAgentCore struct {
	mock.Mock
}

var _ awsclient.AgentCoreAPI = (*mockAgentCore)(nil)

func (m *mockAgentCore) StartBrowserSession(ctx context.Context, params *bedrockagentcore.StartBrowserSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StartBrowserSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.StartBrowserSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetBrowserSession(ctx context.Context, params *bedrockagentcore.GetBrowserSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetBrowserSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetBrowserSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) StopBrowserSession(ctx context.Context, params *bedrockagentcore.StopBrowserSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StopBrowserSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.StopBrowserSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListBrowserSessions(ctx context.Context, params *bedrockagentcore.ListBrowserSessionsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListBrowserSessionsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListBrowserSessionsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) StartCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.StartCodeInterpreterSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StartCodeInterpreterSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.StartCodeInterpreterSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.GetCodeInterpreterSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetCodeInterpreterSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetCodeInterpreterSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) StopCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.StopCodeInterpreterSessionInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StopCodeInterpreterSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.StopCodeInterpreterSessionOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListCodeInterpreterSessions(ctx context.Context, params *bedrockagentcore.ListCodeInterpreterSessionsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListCodeInterpreterSessionsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListCodeInterpreterSessionsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) CreateEvent(ctx context.Context, params *bedrockagentcore.CreateEventInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.CreateEventOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.CreateEventOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetEvent(ctx context.Context, params *bedrockagentcore.GetEventInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetEventOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetEventOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) DeleteEvent(ctx context.Context, params *bedrockagentcore.DeleteEventInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.DeleteEventOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.DeleteEventOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListEvents(ctx context.Context, params *bedrockagentcore.ListEventsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListEventsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListEventsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListActors(ctx context.Context, params *bedrockagentcore.ListActorsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListActorsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListActorsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListSessions(ctx context.Context, params *bedrockagentcore.ListSessionsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListSessionsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListSessionsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) ListMemoryRecords(ctx context.Context, params *bedrockagentcore.ListMemoryRecordsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListMemoryRecordsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.ListMemoryRecordsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) RetrieveMemoryRecords(ctx context.Context, params *bedrockagentcore.RetrieveMemoryRecordsInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.RetrieveMemoryRecordsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.RetrieveMemoryRecordsOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetMemoryRecord(ctx context.Context, params *bedrockagentcore.GetMemoryRecordInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetMemoryRecordOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetMemoryRecordOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) DeleteMemoryRecord(ctx context.Context, params *bedrockagentcore.DeleteMemoryRecordInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.DeleteMemoryRecordOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.DeleteMemoryRecordOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) InvokeAgentRuntime(ctx context.Context, params *bedrockagentcore.InvokeAgentRuntimeInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.InvokeAgentRuntimeOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.InvokeAgentRuntimeOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetWorkloadAccessToken(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetWorkloadAccessTokenOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetWorkloadAccessTokenForJWT(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenForJWTInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenForJWTOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetWorkloadAccessTokenForJWTOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetWorkloadAccessTokenForUserId(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenForUserIdInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput)
	return out, args.Error(1)
}

func (m *mockAgentCore) GetResourceApiKey(ctx context.Context, params *bedrockagentcore.GetResourceApiKeyInput, _ ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetResourceApiKeyOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*bedrockagentcore.GetResourceApiKeyOutput)
	return out, args.Error(1)
}

type recorder struct {
	records []cmdlet.Record
}

func (r *recorder) Emit(rec cmdlet.Record) error {
	r.records = append(r.records, rec)
	return nil
}

func newRunner() (*cmdlet.Runner, *recorder) {
	rec := &recorder{}
	return cmdlet.NewRunner(cmdlet.Always(true), rec, logger.Discard()), rec
}
