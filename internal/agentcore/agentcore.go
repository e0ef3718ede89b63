// Package agentcore defines the Bedrock AgentCore data-plane operations: browser and code
// interpreter sessions, memory events and records, runtime invocation and workload identity.
package agentcore

// Operation names as they appear in prompts, logs and output records.
const (
	OpStartBrowserSession             = "agentcore:StartBrowserSession"
	OpGetBrowserSession               = "agentcore:GetBrowserSession"
	OpStopBrowserSession              = "agentcore:StopBrowserSession"
	OpListBrowserSessions             = "agentcore:ListBrowserSessions"
	OpStartCodeInterpreterSession     = "agentcore:StartCodeInterpreterSession"
	OpGetCodeInterpreterSession       = "agentcore:GetCodeInterpreterSession"
	OpStopCodeInterpreterSession      = "agentcore:StopCodeInterpreterSession"
	OpListCodeInterpreterSessions     = "agentcore:ListCodeInterpreterSessions"
	OpCreateEvent                     = "agentcore:CreateEvent"
	OpGetEvent                        = "agentcore:GetEvent"
	OpDeleteEvent                     = "agentcore:DeleteEvent"
	OpListEvents                      = "agentcore:ListEvents"
	OpListActors                      = "agentcore:ListActors"
	OpListSessions                    = "agentcore:ListSessions"
	OpListMemoryRecords               = "agentcore:ListMemoryRecords"
	OpRetrieveMemoryRecords           = "agentcore:RetrieveMemoryRecords"
	OpGetMemoryRecord                 = "agentcore:GetMemoryRecord"
	OpDeleteMemoryRecord              = "agentcore:DeleteMemoryRecord"
	OpInvokeAgentRuntime              = "agentcore:InvokeAgentRuntime"
	OpGetWorkloadAccessToken          = "agentcore:GetWorkloadAccessToken"
	OpGetWorkloadAccessTokenForJWT    = "agentcore:GetWorkloadAccessTokenForJWT"
	OpGetWorkloadAccessTokenForUserId = "agentcore:GetWorkloadAccessTokenForUserId"
	OpGetResourceApiKey               = "agentcore:GetResourceApiKey"
)

// SessionOptions identify a browser or code interpreter session.
type SessionOptions struct {
	Identifier string
	SessionID  string
}

func (o *SessionOptions) target() string {
	return o.Identifier + "/" + o.SessionID
}

// StartSessionOptions are the parameters shared by the Start*Session operations.
type StartSessionOptions struct {
	Identifier     string
	Name           string
	TimeoutSeconds *int32
	ClientToken    string
}

// ListSessionsOptions are the parameters shared by the List*Sessions operations.
type ListSessionsOptions struct {
	Identifier string
	Status     string
}
