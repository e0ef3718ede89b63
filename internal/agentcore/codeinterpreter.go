package agentcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcore/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// StartCodeInterpreterSession binds agentcore:StartCodeInterpreterSession to client.
func StartCodeInterpreterSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[StartSessionOptions, bedrockagentcore.StartCodeInterpreterSessionInput, bedrockagentcore.StartCodeInterpreterSessionOutput] {
	return &cmdlet.Operation[StartSessionOptions, bedrockagentcore.StartCodeInterpreterSessionInput, bedrockagentcore.StartCodeInterpreterSessionOutput]{
		Name:     OpStartCodeInterpreterSession,
		Mutating: true,
		Target:   func(o *StartSessionOptions) string { return o.Identifier },
		Required: func(o *StartSessionOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("CodeInterpreterIdentifier", o.Identifier == "")}
		},
		Build: func(o *StartSessionOptions) (*bedrockagentcore.StartCodeInterpreterSessionInput, error) {
			return &bedrockagentcore.StartCodeInterpreterSessionInput{
				CodeInterpreterIdentifier: aws.String(o.Identifier),
				Name:                      cmdlet.String(o.Name),
				SessionTimeoutSeconds:     o.TimeoutSeconds,
				ClientToken:               cmdlet.String(o.ClientToken),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.StartCodeInterpreterSessionInput) (*bedrockagentcore.StartCodeInterpreterSessionOutput, error) {
			return client.StartCodeInterpreterSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.StartCodeInterpreterSessionOutput) any{
			"CodeInterpreterIdentifier": func(r *bedrockagentcore.StartCodeInterpreterSessionOutput) any {
				return aws.ToString(r.CodeInterpreterIdentifier)
			},
			"SessionId": func(r *bedrockagentcore.StartCodeInterpreterSessionOutput) any { return aws.ToString(r.SessionId) },
			"CreatedAt": func(r *bedrockagentcore.StartCodeInterpreterSessionOutput) any { return r.CreatedAt },
		},
		DefaultSelect: "SessionId",
	}
}

// GetCodeInterpreterSession binds agentcore:GetCodeInterpreterSession to client.
func GetCodeInterpreterSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[SessionOptions, bedrockagentcore.GetCodeInterpreterSessionInput, bedrockagentcore.GetCodeInterpreterSessionOutput] {
	return &cmdlet.Operation[SessionOptions, bedrockagentcore.GetCodeInterpreterSessionInput, bedrockagentcore.GetCodeInterpreterSessionOutput]{
		Name:     OpGetCodeInterpreterSession,
		Required: requireSession("CodeInterpreterIdentifier"),
		Build: func(o *SessionOptions) (*bedrockagentcore.GetCodeInterpreterSessionInput, error) {
			return &bedrockagentcore.GetCodeInterpreterSessionInput{
				CodeInterpreterIdentifier: aws.String(o.Identifier),
				SessionId:                 aws.String(o.SessionID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetCodeInterpreterSessionInput) (*bedrockagentcore.GetCodeInterpreterSessionOutput, error) {
			return client.GetCodeInterpreterSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetCodeInterpreterSessionOutput) any{
			"SessionId": func(r *bedrockagentcore.GetCodeInterpreterSessionOutput) any { return aws.ToString(r.SessionId) },
			"Status":    func(r *bedrockagentcore.GetCodeInterpreterSessionOutput) any { return r.Status },
			"Name":      func(r *bedrockagentcore.GetCodeInterpreterSessionOutput) any { return aws.ToString(r.Name) },
		},
		Params:        sessionParams("CodeInterpreterIdentifier"),
		DefaultSelect: cmdlet.SelectAll,
		PassThru:      "SessionId",
	}
}

// StopCodeInterpreterSession binds agentcore:StopCodeInterpreterSession to client.
func StopCodeInterpreterSession(client awsclient.AgentCoreAPI) *cmdlet.Operation[SessionOptions, bedrockagentcore.StopCodeInterpreterSessionInput, bedrockagentcore.StopCodeInterpreterSessionOutput] {
	return &cmdlet.Operation[SessionOptions, bedrockagentcore.StopCodeInterpreterSessionInput, bedrockagentcore.StopCodeInterpreterSessionOutput]{
		Name:     OpStopCodeInterpreterSession,
		Mutating: true,
		Target:   func(o *SessionOptions) string { return o.target() },
		Required: requireSession("CodeInterpreterIdentifier"),
		Build: func(o *SessionOptions) (*bedrockagentcore.StopCodeInterpreterSessionInput, error) {
			return &bedrockagentcore.StopCodeInterpreterSessionInput{
				CodeInterpreterIdentifier: aws.String(o.Identifier),
				SessionId:                 aws.String(o.SessionID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.StopCodeInterpreterSessionInput) (*bedrockagentcore.StopCodeInterpreterSessionOutput, error) {
			return client.StopCodeInterpreterSession(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.StopCodeInterpreterSessionOutput) any{
			"SessionId":     func(r *bedrockagentcore.StopCodeInterpreterSessionOutput) any { return aws.ToString(r.SessionId) },
			"LastUpdatedAt": func(r *bedrockagentcore.StopCodeInterpreterSessionOutput) any { return r.LastUpdatedAt },
		},
		Params:   sessionParams("CodeInterpreterIdentifier"),
		PassThru: "SessionId",
	}
}

// ListCodeInterpreterSessions binds agentcore:ListCodeInterpreterSessions to client.
func ListCodeInterpreterSessions(client awsclient.AgentCoreAPI) *cmdlet.Operation[ListSessionsOptions, bedrockagentcore.ListCodeInterpreterSessionsInput, bedrockagentcore.ListCodeInterpreterSessionsOutput] {
	return &cmdlet.Operation[ListSessionsOptions, bedrockagentcore.ListCodeInterpreterSessionsInput, bedrockagentcore.ListCodeInterpreterSessionsOutput]{
		Name: OpListCodeInterpreterSessions,
		Required: func(o *ListSessionsOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("CodeInterpreterIdentifier", o.Identifier == "")}
		},
		Build: func(o *ListSessionsOptions) (*bedrockagentcore.ListCodeInterpreterSessionsInput, error) {
			status, err := cmdlet.Enum("Status", o.Status, actypes.CodeInterpreterSessionStatus("").Values())
			if err != nil {
				return nil, err
			}
			return &bedrockagentcore.ListCodeInterpreterSessionsInput{
				CodeInterpreterIdentifier: aws.String(o.Identifier),
				Status:                    status,
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.ListCodeInterpreterSessionsInput) (*bedrockagentcore.ListCodeInterpreterSessionsOutput, error) {
			return client.ListCodeInterpreterSessions(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListCodeInterpreterSessionsOutput) any{
			"Items":     func(r *bedrockagentcore.ListCodeInterpreterSessionsOutput) any { return r.Items },
			"NextToken": func(r *bedrockagentcore.ListCodeInterpreterSessionsOutput) any { return r.NextToken },
		},
		DefaultSelect: "Items",
		Paging: &cmdlet.Paging[bedrockagentcore.ListCodeInterpreterSessionsInput, bedrockagentcore.ListCodeInterpreterSessionsOutput]{
			Token:    func(r *bedrockagentcore.ListCodeInterpreterSessionsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListCodeInterpreterSessionsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListCodeInterpreterSessionsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}
