package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/transfer"
)

// TransferAPI is the part of the AWS Transfer Family client the adapters call.
type TransferAPI interface {
	CreateServer(ctx context.Context, params *transfer.CreateServerInput, optFns ...func(*transfer.Options)) (*transfer.CreateServerOutput, error)
	DescribeServer(ctx context.Context, params *transfer.DescribeServerInput, optFns ...func(*transfer.Options)) (*transfer.DescribeServerOutput, error)
	ListServers(ctx context.Context, params *transfer.ListServersInput, optFns ...func(*transfer.Options)) (*transfer.ListServersOutput, error)
	UpdateServer(ctx context.Context, params *transfer.UpdateServerInput, optFns ...func(*transfer.Options)) (*transfer.UpdateServerOutput, error)
	DeleteServer(ctx context.Context, params *transfer.DeleteServerInput, optFns ...func(*transfer.Options)) (*transfer.DeleteServerOutput, error)
	StartServer(ctx context.Context, params *transfer.StartServerInput, optFns ...func(*transfer.Options)) (*transfer.StartServerOutput, error)
	StopServer(ctx context.Context, params *transfer.StopServerInput, optFns ...func(*transfer.Options)) (*transfer.StopServerOutput, error)

	CreateUser(ctx context.Context, params *transfer.CreateUserInput, optFns ...func(*transfer.Options)) (*transfer.CreateUserOutput, error)
	DescribeUser(ctx context.Context, params *transfer.DescribeUserInput, optFns ...func(*transfer.Options)) (*transfer.DescribeUserOutput, error)
	ListUsers(ctx context.Context, params *transfer.ListUsersInput, optFns ...func(*transfer.Options)) (*transfer.ListUsersOutput, error)
	UpdateUser(ctx context.Context, params *transfer.UpdateUserInput, optFns ...func(*transfer.Options)) (*transfer.UpdateUserOutput, error)
	DeleteUser(ctx context.Context, params *transfer.DeleteUserInput, optFns ...func(*transfer.Options)) (*transfer.DeleteUserOutput, error)

	ImportSshPublicKey(ctx context.Context, params *transfer.ImportSshPublicKeyInput, optFns ...func(*transfer.Options)) (*transfer.ImportSshPublicKeyOutput, error)
	DeleteSshPublicKey(ctx context.Context, params *transfer.DeleteSshPublicKeyInput, optFns ...func(*transfer.Options)) (*transfer.DeleteSshPublicKeyOutput, error)

	TestIdentityProvider(ctx context.Context, params *transfer.TestIdentityProviderInput, optFns ...func(*transfer.Options)) (*transfer.TestIdentityProviderOutput, error)

	TagResource(ctx context.Context, params *transfer.TagResourceInput, optFns ...func(*transfer.Options)) (*transfer.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *transfer.UntagResourceInput, optFns ...func(*transfer.Options)) (*transfer.UntagResourceOutput, error)
	ListTagsForResource(ctx context.Context, params *transfer.ListTagsForResourceInput, optFns ...func(*transfer.Options)) (*transfer.ListTagsForResourceOutput, error)
}

// AgentCoreAPI is the part of the Bedrock AgentCore data-plane client the adapters call.
type AgentCoreAPI interface {
	StartBrowserSession(ctx context.Context, params *bedrockagentcore.StartBrowserSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StartBrowserSessionOutput, error)
	GetBrowserSession(ctx context.Context, params *bedrockagentcore.GetBrowserSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetBrowserSessionOutput, error)
	StopBrowserSession(ctx context.Context, params *bedrockagentcore.StopBrowserSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StopBrowserSessionOutput, error)
	ListBrowserSessions(ctx context.Context, params *bedrockagentcore.ListBrowserSessionsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListBrowserSessionsOutput, error)

	StartCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.StartCodeInterpreterSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StartCodeInterpreterSessionOutput, error)
	GetCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.GetCodeInterpreterSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetCodeInterpreterSessionOutput, error)
	StopCodeInterpreterSession(ctx context.Context, params *bedrockagentcore.StopCodeInterpreterSessionInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.StopCodeInterpreterSessionOutput, error)
	ListCodeInterpreterSessions(ctx context.Context, params *bedrockagentcore.ListCodeInterpreterSessionsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListCodeInterpreterSessionsOutput, error)

	CreateEvent(ctx context.Context, params *bedrockagentcore.CreateEventInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.CreateEventOutput, error)
	GetEvent(ctx context.Context, params *bedrockagentcore.GetEventInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetEventOutput, error)
	DeleteEvent(ctx context.Context, params *bedrockagentcore.DeleteEventInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.DeleteEventOutput, error)
	ListEvents(ctx context.Context, params *bedrockagentcore.ListEventsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListEventsOutput, error)
	ListActors(ctx context.Context, params *bedrockagentcore.ListActorsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListActorsOutput, error)
	ListSessions(ctx context.Context, params *bedrockagentcore.ListSessionsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListSessionsOutput, error)

	ListMemoryRecords(ctx context.Context, params *bedrockagentcore.ListMemoryRecordsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.ListMemoryRecordsOutput, error)
	RetrieveMemoryRecords(ctx context.Context, params *bedrockagentcore.RetrieveMemoryRecordsInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.RetrieveMemoryRecordsOutput, error)
	GetMemoryRecord(ctx context.Context, params *bedrockagentcore.GetMemoryRecordInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetMemoryRecordOutput, error)
	DeleteMemoryRecord(ctx context.Context, params *bedrockagentcore.DeleteMemoryRecordInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.DeleteMemoryRecordOutput, error)

	InvokeAgentRuntime(ctx context.Context, params *bedrockagentcore.InvokeAgentRuntimeInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.InvokeAgentRuntimeOutput, error)

	GetWorkloadAccessToken(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenOutput, error)
	GetWorkloadAccessTokenForJWT(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenForJWTInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenForJWTOutput, error)
	GetWorkloadAccessTokenForUserId(ctx context.Context, params *bedrockagentcore.GetWorkloadAccessTokenForUserIdInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetWorkloadAccessTokenForUserIdOutput, error)
	GetResourceApiKey(ctx context.Context, params *bedrockagentcore.GetResourceApiKeyInput, optFns ...func(*bedrockagentcore.Options)) (*bedrockagentcore.GetResourceApiKeyOutput, error)
}

// STSAPI is used to check who the current credentials belong to.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// EC2API is used to look up network details for VPC-hosted endpoints.
type EC2API interface {
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
}

// SSMAPI reads Parameter Store values.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsManagerAPI reads Secrets Manager values.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SDK clients satisfy the interfaces above.
var (
	_ TransferAPI       = (*transfer.Client)(nil)
	_ AgentCoreAPI      = (*bedrockagentcore.Client)(nil)
	_ STSAPI            = (*sts.Client)(nil)
	_ EC2API            = (*ec2.Client)(nil)
	_ SSMAPI            = (*ssm.Client)(nil)
	_ SecretsManagerAPI = (*secretsmanager.Client)(nil)
)
