package aws

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSSM struct {
	mock.Mock
}

func (m *mockSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ssm.GetParameterOutput)
	return out, args.Error(1)
}

type mockSecretsManager struct {
	mock.Mock
}

func (m *mockSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*secretsmanager.GetSecretValueOutput)
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

type mockSTS struct {
	mock.Mock
}

func (m *mockSTS) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sts.GetCallerIdentityOutput)
	return out, args.Error(1)
}

func TestSecretResolver_ParameterStorePath(t *testing.T) {
	ssmClient := new(mockSSM)
	smClient := new(mockSecretsManager)
	ssmClient.On("GetParameter", mock.Anything, mock.MatchedBy(func(in *ssm.GetParameterInput) bool {
		return *in.Name == "/sftp/alice/password" && *in.WithDecryption
	})).Return(&ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Value: aws.String("hunter2")},
	}, nil)

	r := NewSecretResolver(ssmClient, smClient)
	got, err := r.Resolve(context.Background(), "/sftp/alice/password")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	smClient.AssertNotCalled(t, "GetSecretValue", mock.Anything, mock.Anything)
	ssmClient.AssertExpectations(t)
}

func TestSecretResolver_SecretsManagerID(t *testing.T) {
	ssmClient := new(mockSSM)
	smClient := new(mockSecretsManager)
	smClient.On("GetSecretValue", mock.Anything, mock.MatchedBy(func(in *secretsmanager.GetSecretValueInput) bool {
		return *in.SecretId == "sftp/alice"
	})).Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("ssh-ed25519 AAAA")}, nil)

	r := NewSecretResolver(ssmClient, smClient)
	got, err := r.Resolve(context.Background(), "sftp/alice")

	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519 AAAA", got)
	ssmClient.AssertNotCalled(t, "GetParameter", mock.Anything, mock.Anything)
}

func TestSecretResolver_Errors(t *testing.T) {
	ssmClient := new(mockSSM)
	smClient := new(mockSecretsManager)
	ssmClient.On("GetParameter", mock.Anything, mock.Anything).Return(nil, errors.New("ParameterNotFound"))
	smClient.On("GetSecretValue", mock.Anything, mock.Anything).Return(&secretsmanager.GetSecretValueOutput{}, nil)

	r := NewSecretResolver(ssmClient, smClient)

	_, err := r.Resolve(context.Background(), "/missing")
	assert.ErrorContains(t, err, "ParameterNotFound")

	_, err = r.Resolve(context.Background(), "binary-only")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSubnetVPC(t *testing.T) {
	tests := []struct {
		name    string
		subnets []ec2types.Subnet
		err     error
		want    string
		wantErr string
	}{
		{
			name:    "single vpc",
			subnets: []ec2types.Subnet{{VpcId: aws.String("vpc-1")}, {VpcId: aws.String("vpc-1")}},
			want:    "vpc-1",
		},
		{
			name:    "mixed vpcs",
			subnets: []ec2types.Subnet{{VpcId: aws.String("vpc-1")}, {VpcId: aws.String("vpc-2")}},
			wantErr: "more than one VPC",
		},
		{
			name:    "not found",
			subnets: nil,
			wantErr: "subnet not found",
		},
		{
			name:    "api error",
			err:     errors.New("UnauthorizedOperation"),
			wantErr: "UnauthorizedOperation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mockEC2)
			var out *ec2.DescribeSubnetsOutput
			if tt.err == nil {
				out = &ec2.DescribeSubnetsOutput{Subnets: tt.subnets}
			}
			client.On("DescribeSubnets", mock.Anything, mock.Anything).Return(out, tt.err)

			got, err := SubnetVPC(context.Background(), client, []string{"subnet-a", "subnet-b"})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubnetVPC_NoSubnets(t *testing.T) {
	_, err := SubnetVPC(context.Background(), new(mockEC2), nil)
	assert.ErrorIs(t, err, ErrSubnetNotFound)
}

func TestGetCallerIdentity(t *testing.T) {
	client := new(mockSTS)
	client.On("GetCallerIdentity", mock.Anything, mock.Anything).Return(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/ops"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}, nil)

	id, err := GetCallerIdentity(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, &CallerIdentity{
		Account: "123456789012",
		Arn:     "arn:aws:iam::123456789012:user/ops",
		UserID:  "AIDAEXAMPLE",
	}, id)
}

func TestListProfiles(t *testing.T) {
	dir := t.TempDir()
	credPath := filepath.Join(dir, "credentials")
	configPath := filepath.Join(dir, "config")

	require.NoError(t, os.WriteFile(credPath, []byte(`[default]
aws_access_key_id = AKIAEXAMPLE
aws_secret_access_key = secret

[ci]
aws_access_key_id = AKIAEXAMPLE2
`), 0600))
	require.NoError(t, os.WriteFile(configPath, []byte(`[default]
region = eu-west-1

[profile ci]
region = us-east-1

[profile prod-sso]
sso_session = corp
region = ap-southeast-1

[sso-session corp]
sso_start_url = https://corp.awsapps.com/start
`), 0600))

	profiles, err := listProfiles(credPath, configPath)
	require.NoError(t, err)

	assert.Equal(t, []Profile{
		{Name: "default", Region: "eu-west-1", Source: "credentials"},
		{Name: "ci", Region: "us-east-1", Source: "credentials"},
		{Name: "prod-sso", Region: "ap-southeast-1", Source: "config"},
	}, profiles)
}

func TestListProfiles_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	profiles, err := listProfiles(filepath.Join(dir, "nope"), filepath.Join(dir, "nada"))
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
