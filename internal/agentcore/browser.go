package agentcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcore/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// ViewPortOptions are the leaves of the browser ViewPort.
type ViewPortOptions struct {
	Width  *int32
	Height *int32
}

func (o *ViewPortOptions) build() *actypes.ViewPort {
	v := &actypes.ViewPort{}
	set := false

	if o.Width != nil {
		v.Width = o.Width
		set = true
	}
	if o.Height != nil {
		v.Height = o.Height
		set = true
	}

	return cmdlet.Populated(v, set)
}

// StartBrowserOptions are the parameters of agentcore:StartBrowserSession.
type StartBrowserOptions struct {
	StartSessionOptions
	ViewPort ViewPortOptions
}

// BuildStartBrowserSession builds the StartBrowserSession request.
func BuildStartBrowserSession(o *StartBrowserOptions) (*bedrockagentcore.StartBrowserSessionInput, error) {
	return &bedrockagentcore.StartBrowserSessionInput{
		BrowserIdentifier:     aws.String(o.Identifier),
		Name:                  cmdlet.String(o.Name),
		SessionTimeoutSeconds: o.TimeoutSeconds,
		ClientToken:           cmdlet.String(o.ClientToken),
		ViewPort:              o.ViewPort.build(),
	}, nil
}

// StartBrowserSession binds agentcore:StartBrowserSession to client.
func StartBrowserSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[StartBrowserOptions, bedrockagentcore.StartBrowserSessionInput, bedrockagentcore.StartBrowserSessionOutput] {
	return &cmdlet.Operation[StartBrowserOptions, bedrockagentcore.StartBrowserSessionInput, bedrockagentcore.StartBrowserSessionOutput]{
		Name:     OpStartBrowserSession,
		Mutating: true,
		Target:   func(o *StartBrowserOptions) string { return o.Identifier },
		Required: func(o *StartBrowserOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("BrowserIdentifier", o.Identifier == "")}
		},
		Build: BuildStartBrowserSession,
		Call: func(ctx context.Context, in *bedrockagentcore.StartBrowserSessionInput) (*bedrockagentcore.StartBrowserSessionOutput, error) {
			return client.StartBrowserSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.StartBrowserSessionOutput) any{
			"BrowserIdentifier": func(r *bedrockagentcore.StartBrowserSessionOutput) any { return aws.ToString(r.BrowserIdentifier) },
			"SessionId":         func(r *bedrockagentcore.StartBrowserSessionOutput) any { return aws.ToString(r.SessionId) },
			"CreatedAt":         func(r *bedrockagentcore.StartBrowserSessionOutput) any { return r.CreatedAt },
			"Streams":           func(r *bedrockagentcore.StartBrowserSessionOutput) any { return r.Streams },
		},
		DefaultSelect: "SessionId",
	}
}

func requireSession(kind string) func(*SessionOptions) []cmdlet.Param {
	return func(o *SessionOptions) []cmdlet.Param {
		return []cmdlet.Param{
			cmdlet.Require(kind, o.Identifier == ""),
			cmdlet.Require("SessionId", o.SessionID == ""),
		}
	}
}

func sessionParams(kind string) map[string]func(*SessionOptions) any {
	return map[string]func(*SessionOptions) any{
		kind:        func(o *SessionOptions) any { return o.Identifier },
		"SessionId": func(o *SessionOptions) any { return o.SessionID },
	}
}

// GetBrowserSession binds agentcore:GetBrowserSession to client.
func GetBrowserSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[SessionOptions, bedrockagentcore.GetBrowserSessionInput, bedrockagentcore.GetBrowserSessionOutput] {
	return &cmdlet.Operation[SessionOptions, bedrockagentcore.GetBrowserSessionInput, bedrockagentcore.GetBrowserSessionOutput]{
		Name:     OpGetBrowserSession,
		Required: requireSession("BrowserIdentifier"),
		Build: func(o *SessionOptions) (*bedrockagentcore.GetBrowserSessionInput, error) {
			return &bedrockagentcore.GetBrowserSessionInput{
				BrowserIdentifier: aws.String(o.Identifier),
				SessionId:         aws.String(o.SessionID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetBrowserSessionInput) (*bedrockagentcore.GetBrowserSessionOutput, error) {
			return client.GetBrowserSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetBrowserSessionOutput) any{
			"SessionId": func(r *bedrockagentcore.GetBrowserSessionOutput) any { return aws.ToString(r.SessionId) },
			"Status":    func(r *bedrockagentcore.GetBrowserSessionOutput) any { return r.Status },
			"ViewPort":  func(r *bedrockagentcore.GetBrowserSessionOutput) any { return r.ViewPort },
			"Streams":   func(r *bedrockagentcore.GetBrowserSessionOutput) any { return r.Streams },
		},
		Params:        sessionParams("BrowserIdentifier"),
		DefaultSelect: cmdlet.SelectAll,
		PassThru:      "SessionId",
	}
}

// StopBrowserSession binds agentcore:StopBrowserSession to client.
func StopBrowserSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[SessionOptions, bedrockagentcore.StopBrowserSessionInput, bedrockagentcore.StopBrowserSessionOutput] {
	return &cmdlet.Operation[SessionOptions, bedrockagentcore.StopBrowserSessionInput, bedrockagentcore.StopBrowserSessionOutput]{
		Name:     OpStopBrowserSession,
		Mutating: true,
		Target:   func(o *SessionOptions) string { return o.target() },
		Required: requireSession("BrowserIdentifier"),
		Build: func(o *SessionOptions) (*bedrockagentcore.StopBrowserSessionInput, error) {
			return &bedrockagentcore.StopBrowserSessionInput{
				BrowserIdentifier: aws.String(o.Identifier),
				SessionId:         aws.String(o.SessionID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.StopBrowserSessionInput) (*bedrockagentcore.StopBrowserSessionOutput, error) {
			return client.StopBrowserSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.StopBrowserSessionOutput) any{
			"SessionId":     func(r *bedrockagentcore.StopBrowserSessionOutput) any { return aws.ToString(r.SessionId) },
			"LastUpdatedAt": func(r *bedrockagentcore.StopBrowserSessionOutput) any { return r.LastUpdatedAt },
		},
		Params:   sessionParams("BrowserIdentifier"),
		PassThru: "SessionId",
	}
}

// ListBrowserSessions binds agentcore:ListBrowserSessions to client.
func ListBrowserSessions(client awsclient.AgentCoreAPI) *cmdlet.Operation[ListSessionsOptions, bedrockagentcore.ListBrowserSessionsInput, bedrockagentcore.ListBrowserSessionsOutput] {
	return &cmdlet.Operation[ListSessionsOptions, bedrockagentcore.ListBrowserSessionsInput, bedrockagentcore.ListBrowserSessionsOutput]{
		Name: OpListBrowserSessions,
		Required: func(o *ListSessionsOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("BrowserIdentifier", o.Identifier == "")}
		},
		Build: func(o *ListSessionsOptions) (*bedrockagentcore.ListBrowserSessionsInput, error) {
			status, err := cmdlet.Enum("Status", o.Status, actypes.BrowserSessionStatus("").Values())
			if err != nil {
				return nil, err
			}
			return &bedrockagentcore.ListBrowserSessionsInput{
				BrowserIdentifier: aws.String(o.Identifier),
				Status:            status,
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.ListBrowserSessionsInput) (*bedrockagentcore.ListBrowserSessionsOutput, error) {
			return client.ListBrowserSessions(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListBrowserSessionsOutput) any{
			"Items":     func(r *bedrockagentcore.ListBrowserSessionsOutput) any { return r.Items },
			"NextToken": func(r *bedrockagentcore.ListBrowserSessionsOutput) any { return r.NextToken },
		},
		DefaultSelect: "Items",
		Paging: &cmdlet.Paging[bedrockagentcore.ListBrowserSessionsInput, bedrockagentcore.ListBrowserSessionsOutput]{
			Token:    func(r *bedrockagentcore.ListBrowserSessionsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListBrowserSessionsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListBrowserSessionsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}
