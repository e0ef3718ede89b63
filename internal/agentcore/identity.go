package agentcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// WorkloadTokenOptions are the parameters of the GetWorkloadAccessToken family.
// UserToken selects the ForJWT variant and UserID the ForUserId variant.
type WorkloadTokenOptions struct {
	WorkloadName string
	UserToken    string
	UserID       string
}

func requireWorkload(o *WorkloadTokenOptions) []cmdlet.Param {
	return []cmdlet.Param{cmdlet.Require("WorkloadName", o.WorkloadName == "")}
}

// GetWorkloadAccessToken binds agentcore:GetWorkloadAccessToken to client.
func GetWorkloadAccessToken(client awsclient.AgentCoreAPI) *cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenInput, bedrockagentcore.GetWorkloadAccessTokenOutput] {
	return &cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenInput, bedrockagentcore.GetWorkloadAccessTokenOutput]{
		Name:     OpGetWorkloadAccessToken,
		Required: requireWorkload,
		Build: func(o *WorkloadTokenOptions) (*bedrockagentcore.GetWorkloadAccessTokenInput, error) {
			return &bedrockagentcore.GetWorkloadAccessTokenInput{WorkloadName: aws.String(o.WorkloadName)}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetWorkloadAccessTokenInput) (*bedrockagentcore.GetWorkloadAccessTokenOutput, error) {
			return client.GetWorkloadAccessToken(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetWorkloadAccessTokenOutput) any{
			"WorkloadAccessToken": func(r *bedrockagentcore.GetWorkloadAccessTokenOutput) any { return aws.ToString(r.WorkloadAccessToken) },
		},
		DefaultSelect: "WorkloadAccessToken",
	}
}

// GetWorkloadAccessTokenForJWT binds agentcore:GetWorkloadAccessTokenForJWT to client.
func GetWorkloadAccessTokenForJWT(client awsclient.AgentCoreAPI) *cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenForJWTInput, bedrockagentcore.GetWorkloadAccessTokenForJWTOutput] {
	return &cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenForJWTInput, bedrockagentcore.GetWorkloadAccessTokenForJWTOutput]{
		Name: OpGetWorkloadAccessTokenForJWT,
		Required: func(o *WorkloadTokenOptions) []cmdlet.Param {
			return append(requireWorkload(o), cmdlet.Require("UserToken", o.UserToken == ""))
		},
		Build: func(o *WorkloadTokenOptions) (*bedrockagentcore.GetWorkloadAccessTokenForJWTInput, error) {
			return &bedrockagentcore.GetWorkloadAccessTokenForJWTInput{
				WorkloadName: aws.String(o.WorkloadName),
				UserToken:    aws.String(o.UserToken),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetWorkloadAccessTokenForJWTInput) (*bedrockagentcore.GetWorkloadAccessTokenForJWTOutput, error) {
			return client.GetWorkloadAccessTokenForJWT(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetWorkloadAccessTokenForJWTOutput) any{
			"WorkloadAccessToken": func(r *bedrockagentcore.GetWorkloadAccessTokenForJWTOutput) any {
				return aws.ToString(r.WorkloadAccessToken)
			},
		},
		DefaultSelect: "WorkloadAccessToken",
	}
}

// GetWorkloadAccessTokenForUserId binds agentcore:GetWorkloadAccessTokenForUserId to client.
func GetWorkloadAccessTokenForUserId(client awsclient.AgentCoreAPI) *cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenForUserIdInput, bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput] {
	return &cmdlet.Operation[WorkloadTokenOptions, bedrockagentcore.GetWorkloadAccessTokenForUserIdInput, bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput]{
		Name: OpGetWorkloadAccessTokenForUserId,
		Required: func(o *WorkloadTokenOptions) []cmdlet.Param {
			return append(requireWorkload(o), cmdlet.Require("UserId", o.UserID == ""))
		},
		Build: func(o *WorkloadTokenOptions) (*bedrockagentcore.GetWorkloadAccessTokenForUserIdInput, error) {
			return &bedrockagentcore.GetWorkloadAccessTokenForUserIdInput{
				WorkloadName: aws.String(o.WorkloadName),
				UserId:       aws.String(o.UserID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetWorkloadAccessTokenForUserIdInput) (*bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput, error) {
			return client.GetWorkloadAccessTokenForUserId(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput) any{
			"WorkloadAccessToken": func(r *bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput) any {
				return aws.ToString(r.WorkloadAccessToken)
			},
		},
		DefaultSelect: "WorkloadAccessToken",
	}
}

// APIKeyOptions are the parameters of agentcore:GetResourceApiKey.
type APIKeyOptions struct {
	ProviderName          string
	WorkloadIdentityToken string
}

// GetResourceApiKey binds agentcore:GetResourceApiKey to client.
func GetResourceApiKey(client awsclient.AgentCoreAPI) *cmdlet.Operation[APIKeyOptions, bedrockagentcore.GetResourceApiKeyInput, bedrockagentcore.GetResourceApiKeyOutput] {
	return &cmdlet.Operation[APIKeyOptions, bedrockagentcore.GetResourceApiKeyInput, bedrockagentcore.GetResourceApiKeyOutput]{
		Name: OpGetResourceApiKey,
		Required: func(o *APIKeyOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("ResourceCredentialProviderName", o.ProviderName == ""),
				cmdlet.Require("WorkloadIdentityToken", o.WorkloadIdentityToken == ""),
			}
		},
		Build: func(o *APIKeyOptions) (*bedrockagentcore.GetResourceApiKeyInput, error) {
			return &bedrockagentcore.GetResourceApiKeyInput{
				ResourceCredentialProviderName: aws.String(o.ProviderName),
				WorkloadIdentityToken:          aws.String(o.WorkloadIdentityToken),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetResourceApiKeyInput) (*bedrockagentcore.GetResourceApiKeyOutput, error) {
			return client.GetResourceApiKey(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetResourceApiKeyOutput) any{
			"ApiKey": func(r *bedrockagentcore.GetResourceApiKeyOutput) any { return aws.ToString(r.ApiKey) },
		},
		DefaultSelect: "ApiKey",
	}
}
