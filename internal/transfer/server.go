package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"
	tftypes "github.com/aws/aws-sdk-go-v2/service/transfer/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// IdentityProviderOptions are the leaves of IdentityProviderDetails.
type IdentityProviderOptions struct {
	URL            string
	InvocationRole string
	DirectoryID    string
	Function       string
}

func (o *IdentityProviderOptions) build() *tftypes.IdentityProviderDetails {
	d := &tftypes.IdentityProviderDetails{}
	set := false

	if o.URL != "" {
		d.Url = aws.String(o.URL)
		set = true
	}
	if o.InvocationRole != "" {
		d.InvocationRole = aws.String(o.InvocationRole)
		set = true
	}
	if o.DirectoryID != "" {
		d.DirectoryId = aws.String(o.DirectoryID)
		set = true
	}
	if o.Function != "" {
		d.Function = aws.String(o.Function)
		set = true
	}

	return cmdlet.Populated(d, set)
}

// EndpointOptions are the leaves of EndpointDetails.
type EndpointOptions struct {
	VpcID                string
	SubnetIDs            []string
	SecurityGroupIDs     []string
	AddressAllocationIDs []string
	VpcEndpointID        string
}

func (o *EndpointOptions) build() *tftypes.EndpointDetails {
	d := &tftypes.EndpointDetails{}
	set := false

	if o.VpcID != "" {
		d.VpcId = aws.String(o.VpcID)
		set = true
	}
	if len(o.SubnetIDs) > 0 {
		d.SubnetIds = o.SubnetIDs
		set = true
	}
	if len(o.SecurityGroupIDs) > 0 {
		d.SecurityGroupIds = o.SecurityGroupIDs
		set = true
	}
	if len(o.AddressAllocationIDs) > 0 {
		d.AddressAllocationIds = o.AddressAllocationIDs
		set = true
	}
	if o.VpcEndpointID != "" {
		d.VpcEndpointId = aws.String(o.VpcEndpointID)
		set = true
	}

	return cmdlet.Populated(d, set)
}

// ServerSettings are the fields shared by CreateServer and UpdateServer.
type ServerSettings struct {
	Certificate                   string
	EndpointType                  string
	Endpoint                      EndpointOptions
	HostKey                       string
	IdentityProvider              IdentityProviderOptions
	LoggingRole                   string
	Protocols                     []string
	SecurityPolicyName            string
	PreAuthenticationLoginBanner  string
	PostAuthenticationLoginBanner string
	StructuredLogDestinations     []string
}

// CreateServerOptions are the parameters of transfer:CreateServer.
type CreateServerOptions struct {
	ServerSettings
	Domain               string
	IdentityProviderType string
	Tags                 map[string]string
}

// BuildCreateServer builds the CreateServer request.
func BuildCreateServer(o *CreateServerOptions) (*awstransfer.CreateServerInput, error) {
	domain, err := cmdlet.Enum("Domain", o.Domain, tftypes.Domain("").Values())
	if err != nil {
		return nil, err
	}
	endpointType, err := cmdlet.Enum("EndpointType", o.EndpointType, tftypes.EndpointType("").Values())
	if err != nil {
		return nil, err
	}
	idpType, err := cmdlet.Enum("IdentityProviderType", o.IdentityProviderType, tftypes.IdentityProviderType("").Values())
	if err != nil {
		return nil, err
	}
	protocols, err := buildProtocols(o.Protocols)
	if err != nil {
		return nil, err
	}

	return &awstransfer.CreateServerInput{
		Certificate:                   cmdlet.String(o.Certificate),
		Domain:                        domain,
		EndpointDetails:               o.Endpoint.build(),
		EndpointType:                  endpointType,
		HostKey:                       cmdlet.String(o.HostKey),
		IdentityProviderDetails:       o.IdentityProvider.build(),
		IdentityProviderType:          idpType,
		LoggingRole:                   cmdlet.String(o.LoggingRole),
		PostAuthenticationLoginBanner: cmdlet.String(o.PostAuthenticationLoginBanner),
		PreAuthenticationLoginBanner:  cmdlet.String(o.PreAuthenticationLoginBanner),
		Protocols:                     protocols,
		SecurityPolicyName:            cmdlet.String(o.SecurityPolicyName),
		StructuredLogDestinations:     cmdlet.Strings(o.StructuredLogDestinations),
		Tags:                          buildTags(o.Tags),
	}, nil
}

// CreateServer binds transfer:CreateServer to client.
func CreateServer(client awsclient.TransferAPI) *cmdlet.Operation[CreateServerOptions, awstransfer.CreateServerInput, awstransfer.CreateServerOutput] {
	return &cmdlet.Operation[CreateServerOptions, awstransfer.CreateServerInput, awstransfer.CreateServerOutput]{
		Name:     OpCreateServer,
		Mutating: true,
		Build:    BuildCreateServer,
		Call: func(ctx context.Context, in *awstransfer.CreateServerInput) (*awstransfer.CreateServerOutput, error) {
			return client.CreateServer(ctx, in)
		},
		Fields: map[string]func(*awstransfer.CreateServerOutput) any{
			"ServerId": func(r *awstransfer.CreateServerOutput) any { return aws.ToString(r.ServerId) },
		},
		DefaultSelect: "ServerId",
	}
}

// ServerIDOptions identify a server.
type ServerIDOptions struct {
	ServerID string
}

func requireServer(o *ServerIDOptions) []cmdlet.Param {
	return []cmdlet.Param{cmdlet.Require("ServerId", o.ServerID == "")}
}

func serverTarget(o *ServerIDOptions) string {
	return o.ServerID
}

func echoServerID(o *ServerIDOptions) any {
	return o.ServerID
}

// DescribeServer binds transfer:DescribeServer to client.
func DescribeServer(client awsclient.TransferAPI) *cmdlet.Operation[ServerIDOptions, awstransfer.DescribeServerInput, awstransfer.DescribeServerOutput] {
	return &cmdlet.Operation[ServerIDOptions, awstransfer.DescribeServerInput, awstransfer.DescribeServerOutput]{
		Name:     OpDescribeServer,
		Required: requireServer,
		Build: func(o *ServerIDOptions) (*awstransfer.DescribeServerInput, error) {
			return &awstransfer.DescribeServerInput{ServerId: aws.String(o.ServerID)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.DescribeServerInput) (*awstransfer.DescribeServerOutput, error) {
			return client.DescribeServer(ctx, in)
		},
		Fields: map[string]func(*awstransfer.DescribeServerOutput) any{
			"Server": func(r *awstransfer.DescribeServerOutput) any { return r.Server },
		},
		Params:        map[string]func(*ServerIDOptions) any{"ServerId": echoServerID},
		DefaultSelect: "Server",
		PassThru:      "ServerId",
	}
}

// ListOptions carry no parameters beyond the common paging flags.
type ListOptions struct{}

// ListServers binds transfer:ListServers to client.
func ListServers(client awsclient.TransferAPI) *cmdlet.Operation[ListOptions, awstransfer.ListServersInput, awstransfer.ListServersOutput] {
	return &cmdlet.Operation[ListOptions, awstransfer.ListServersInput, awstransfer.ListServersOutput]{
		Name: OpListServers,
		Build: func(*ListOptions) (*awstransfer.ListServersInput, error) {
			return &awstransfer.ListServersInput{}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.ListServersInput) (*awstransfer.ListServersOutput, error) {
			return client.ListServers(ctx, in)
		},
		Fields: map[string]func(*awstransfer.ListServersOutput) any{
			"Servers":   func(r *awstransfer.ListServersOutput) any { return r.Servers },
			"NextToken": func(r *awstransfer.ListServersOutput) any { return r.NextToken },
		},
		DefaultSelect: "Servers",
		Paging: &cmdlet.Paging[awstransfer.ListServersInput, awstransfer.ListServersOutput]{
			Token:    func(r *awstransfer.ListServersOutput) *string { return r.NextToken },
			SetToken: func(in *awstransfer.ListServersInput, t *string) { in.NextToken = t },
			SetLimit: func(in *awstransfer.ListServersInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// UpdateServerOptions are the parameters of transfer:UpdateServer.
type UpdateServerOptions struct {
	ServerSettings
	ServerID string
}

// BuildUpdateServer builds the UpdateServer request.
func BuildUpdateServer(o *UpdateServerOptions) (*awstransfer.UpdateServerInput, error) {
	endpointType, err := cmdlet.Enum("EndpointType", o.EndpointType, tftypes.EndpointType("").Values())
	if err != nil {
		return nil, err
	}
	protocols, err := buildProtocols(o.Protocols)
	if err != nil {
		return nil, err
	}

	return &awstransfer.UpdateServerInput{
		ServerId:                      aws.String(o.ServerID),
		Certificate:                   cmdlet.String(o.Certificate),
		EndpointDetails:               o.Endpoint.build(),
		EndpointType:                  endpointType,
		HostKey:                       cmdlet.String(o.HostKey),
		IdentityProviderDetails:       o.IdentityProvider.build(),
		LoggingRole:                   cmdlet.String(o.LoggingRole),
		PostAuthenticationLoginBanner: cmdlet.String(o.PostAuthenticationLoginBanner),
		PreAuthenticationLoginBanner:  cmdlet.String(o.PreAuthenticationLoginBanner),
		Protocols:                     protocols,
		SecurityPolicyName:            cmdlet.String(o.SecurityPolicyName),
		StructuredLogDestinations:     cmdlet.Strings(o.StructuredLogDestinations),
	}, nil
}

// UpdateServer binds transfer:UpdateServer to client.
func UpdateServer(client awsclient.TransferAPI) *cmdlet.Operation[UpdateServerOptions, awstransfer.UpdateServerInput, awstransfer.UpdateServerOutput] {
	return &cmdlet.Operation[UpdateServerOptions, awstransfer.UpdateServerInput, awstransfer.UpdateServerOutput]{
		Name:     OpUpdateServer,
		Mutating: true,
		Target:   func(o *UpdateServerOptions) string { return o.ServerID },
		Required: func(o *UpdateServerOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("ServerId", o.ServerID == "")}
		},
		Build: BuildUpdateServer,
		Call: func(ctx context.Context, in *awstransfer.UpdateServerInput) (*awstransfer.UpdateServerOutput, error) {
			return client.UpdateServer(ctx, in)
		},
		Fields: map[string]func(*awstransfer.UpdateServerOutput) any{
			"ServerId": func(r *awstransfer.UpdateServerOutput) any { return aws.ToString(r.ServerId) },
		},
		Params: map[string]func(*UpdateServerOptions) any{
			"ServerId": func(o *UpdateServerOptions) any { return o.ServerID },
		},
		DefaultSelect: "ServerId",
		PassThru:      "ServerId",
	}
}

// DeleteServer binds transfer:DeleteServer to client.
func DeleteServer(client awsclient.TransferAPI) *cmdlet.Operation[ServerIDOptions, awstransfer.DeleteServerInput, awstransfer.DeleteServerOutput] {
	return &cmdlet.Operation[ServerIDOptions, awstransfer.DeleteServerInput, awstransfer.DeleteServerOutput]{
		Name:     OpDeleteServer,
		Mutating: true,
		Target:   serverTarget,
		Required: requireServer,
		Build: func(o *ServerIDOptions) (*awstransfer.DeleteServerInput, error) {
			return &awstransfer.DeleteServerInput{ServerId: aws.String(o.ServerID)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.DeleteServerInput) (*awstransfer.DeleteServerOutput, error) {
			return client.DeleteServer(ctx, in)
		},
		Params:   map[string]func(*ServerIDOptions) any{"ServerId": echoServerID},
		PassThru: "ServerId",
	}
}

// StartServer binds transfer:StartServer to client.
func StartServer(client awsclient.TransferAPI) *cmdlet.Operation[ServerIDOptions, awstransfer.StartServerInput, awstransfer.StartServerOutput] {
	return &cmdlet.Operation[ServerIDOptions, awstransfer.StartServerInput, awstransfer.StartServerOutput]{
		Name:     OpStartServer,
		Mutating: true,
		Target:   serverTarget,
		Required: requireServer,
		Build: func(o *ServerIDOptions) (*awstransfer.StartServerInput, error) {
			return &awstransfer.StartServerInput{ServerId: aws.String(o.ServerID)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.StartServerInput) (*awstransfer.StartServerOutput, error) {
			return client.StartServer(ctx, in)
		},
		Params:   map[string]func(*ServerIDOptions) any{"ServerId": echoServerID},
		PassThru: "ServerId",
	}
}

// StopServer binds transfer:StopServer to client.
func StopServer(client awsclient.TransferAPI) *cmdlet.Operation[ServerIDOptions, awstransfer.StopServerInput, awstransfer.StopServerOutput] {
	return &cmdlet.Operation[ServerIDOptions, awstransfer.StopServerInput, awstransfer.StopServerOutput]{
		Name:     OpStopServer,
		Mutating: true,
		Target:   serverTarget,
		Required: requireServer,
		Build: func(o *ServerIDOptions) (*awstransfer.StopServerInput, error) {
			return &awstransfer.StopServerInput{ServerId: aws.String(o.ServerID)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.StopServerInput) (*awstransfer.StopServerOutput, error) {
			return client.StopServer(ctx, in)
		},
		Params:   map[string]func(*ServerIDOptions) any{"ServerId": echoServerID},
		PassThru: "ServerId",
	}
}

func parseProtocol(name string) (tftypes.Protocol, error) {
	return cmdlet.Enum("Protocols", name, tftypes.Protocol("").Values())
}
