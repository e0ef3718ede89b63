package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ErrEmptySecret is returned when a secret exists but holds no string value.
var ErrEmptySecret = errors.New("secret has no string value")

// SecretResolver reads sensitive parameter values (passwords, SSH keys) from
// SSM Parameter Store or Secrets Manager so they never appear on the command line.
//
// Names starting with "/" are Parameter Store paths, anything else is a Secrets Manager id.
type SecretResolver struct {
	ssm SSMAPI
	sm  SecretsManagerAPI
}

// NewSecretResolver creates a SecretResolver.
func NewSecretResolver(ssmClient SSMAPI, smClient SecretsManagerAPI) *SecretResolver {
	return &SecretResolver{
		ssm: ssmClient,
		sm:  smClient,
	}
}

// Resolve returns the value stored under name.
func (r *SecretResolver) Resolve(ctx context.Context, name string) (string, error) {
	if strings.HasPrefix(name, "/") {
		return r.getParameter(ctx, name)
	}
	return r.getSecret(ctx, name)
}

func (r *SecretResolver) getParameter(ctx context.Context, name string) (string, error) {
	output, err := r.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get SSM parameter %s: %w", name, err)
	}

	if output.Parameter == nil || output.Parameter.Value == nil {
		return "", fmt.Errorf("%w: %s", ErrEmptySecret, name)
	}
	return *output.Parameter.Value, nil
}

func (r *SecretResolver) getSecret(ctx context.Context, name string) (string, error) {
	output, err := r.sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}

	if output.SecretString == nil {
		return "", fmt.Errorf("%w: %s", ErrEmptySecret, name)
	}
	return *output.SecretString, nil
}
