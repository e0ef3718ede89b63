package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// TestIdentityProviderOptions are the parameters of transfer:TestIdentityProvider.
type TestIdentityProviderOptions struct {
	ServerID       string
	UserName       string
	ServerProtocol string
	SourceIP       string
	UserPassword   string
}

// BuildTestIdentityProvider builds the TestIdentityProvider request.
func BuildTestIdentityProvider(o *TestIdentityProviderOptions) (*awstransfer.TestIdentityProviderInput, error) {
	protocol, err := parseProtocol(o.ServerProtocol)
	if err != nil {
		return nil, err
	}

	return &awstransfer.TestIdentityProviderInput{
		ServerId:       aws.String(o.ServerID),
		UserName:       aws.String(o.UserName),
		ServerProtocol: protocol,
		SourceIp:       cmdlet.String(o.SourceIP),
		UserPassword:   cmdlet.String(o.UserPassword),
	}, nil
}

// TestIdentityProvider binds transfer:TestIdentityProvider to client.
func TestIdentityProvider(client awsclient.TransferAPI) *cmdlet.Operation[TestIdentityProviderOptions, awstransfer.TestIdentityProviderInput, awstransfer.TestIdentityProviderOutput] {
	return &cmdlet.Operation[TestIdentityProviderOptions, awstransfer.TestIdentityProviderInput, awstransfer.TestIdentityProviderOutput]{
		Name: OpTestIdentityProvider,
		Required: func(o *TestIdentityProviderOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("ServerId", o.ServerID == ""),
				cmdlet.Require("UserName", o.UserName == ""),
			}
		},
		Build: BuildTestIdentityProvider,
		Call: func(ctx context.Context, in *awstransfer.TestIdentityProviderInput) (*awstransfer.TestIdentityProviderOutput, error) {
			return client.TestIdentityProvider(ctx, in)
		},
		Fields: map[string]func(*awstransfer.TestIdentityProviderOutput) any{
			"Message":    func(r *awstransfer.TestIdentityProviderOutput) any { return aws.ToString(r.Message) },
			"Response":   func(r *awstransfer.TestIdentityProviderOutput) any { return aws.ToString(r.Response) },
			"StatusCode": func(r *awstransfer.TestIdentityProviderOutput) any { return r.StatusCode },
			"Url":        func(r *awstransfer.TestIdentityProviderOutput) any { return aws.ToString(r.Url) },
		},
		DefaultSelect: cmdlet.SelectAll,
	}
}
