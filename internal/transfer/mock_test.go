package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"
	"github.com/stretchr/testify/mock"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
)

type mockTransfer struct {
	mock.Mock
}

var _ awsclient.TransferAPI = (*mockTransfer)(nil)

func (m *mockTransfer) CreateServer(ctx context.Context, params *awstransfer.CreateServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.CreateServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.CreateServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) DescribeServer(ctx context.Context, params *awstransfer.DescribeServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.DescribeServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.DescribeServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) ListServers(ctx context.Context, params *awstransfer.ListServersInput, _ ...func(*awstransfer.Options)) (*awstransfer.ListServersOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.ListServersOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) UpdateServer(ctx context.Context, params *awstransfer.UpdateServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.UpdateServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.UpdateServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) DeleteServer(ctx context.Context, params *awstransfer.DeleteServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.DeleteServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.DeleteServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) StartServer(ctx context.Context, params *awstransfer.StartServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.StartServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.StartServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) StopServer(ctx context.Context, params *awstransfer.StopServerInput, _ ...func(*awstransfer.Options)) (*awstransfer.StopServerOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.StopServerOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) CreateUser(ctx context.Context, params *awstransfer.CreateUserInput, _ ...func(*awstransfer.Options)) (*awstransfer.CreateUserOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.CreateUserOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) DescribeUser(ctx context.Context, params *awstransfer.DescribeUserInput, _ ...func(*awstransfer.Options)) (*awstransfer.DescribeUserOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.DescribeUserOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) ListUsers(ctx context.Context, params *awstransfer.ListUsersInput, _ ...func(*awstransfer.Options)) (*awstransfer.ListUsersOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.ListUsersOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) UpdateUser(ctx context.Context, params *awstransfer.UpdateUserInput, _ ...func(*awstransfer.Options)) (*awstransfer.UpdateUserOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.UpdateUserOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) DeleteUser(ctx context.Context, params *awstransfer.DeleteUserInput, _ ...func(*awstransfer.Options)) (*awstransfer.DeleteUserOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.DeleteUserOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) ImportSshPublicKey(ctx context.Context, params *awstransfer.ImportSshPublicKeyInput, _ ...func(*awstransfer.Options)) (*awstransfer.ImportSshPublicKeyOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.ImportSshPublicKeyOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) DeleteSshPublicKey(ctx context.Context, params *awstransfer.DeleteSshPublicKeyInput, _ ...func(*awstransfer.Options)) (*awstransfer.DeleteSshPublicKeyOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.DeleteSshPublicKeyOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) TestIdentityProvider(ctx context.Context, params *awstransfer.TestIdentityProviderInput, _ ...func(*awstransfer.Options)) (*awstransfer.TestIdentityProviderOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.TestIdentityProviderOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) TagResource(ctx context.Context, params *awstransfer.TagResourceInput, _ ...func(*awstransfer.Options)) (*awstransfer.TagResourceOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.TagResourceOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) UntagResource(ctx context.Context, params *awstransfer.UntagResourceInput, _ ...func(*awstransfer.Options)) (*awstransfer.UntagResourceOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.UntagResourceOutput)
	return out, args.Error(1)
}

func (m *mockTransfer) ListTagsForResource(ctx context.Context, params *awstransfer.ListTagsForResourceInput, _ ...func(*awstransfer.Options)) (*awstransfer.ListTagsForResourceOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*awstransfer.ListTagsForResourceOutput)
	return out, args.Error(1)
}

type mockEC2 struct {
	mock.Mock
}

func (m *mockEC2) DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ec2.DescribeSubnetsOutput)
	return out, args.Error(1)
}
