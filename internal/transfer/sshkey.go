package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// ImportSSHKeyOptions are the parameters of transfer:ImportSshPublicKey.
type ImportSSHKeyOptions struct {
	ServerID         string
	UserName         string
	SshPublicKeyBody string
}

// ImportSshPublicKey binds transfer:ImportSshPublicKey to client.
func ImportSshPublicKey(client awsclient.TransferAPI) *cmdlet.Operation[ImportSSHKeyOptions, awstransfer.ImportSshPublicKeyInput, awstransfer.ImportSshPublicKeyOutput] {
	return &cmdlet.Operation[ImportSSHKeyOptions, awstransfer.ImportSshPublicKeyInput, awstransfer.ImportSshPublicKeyOutput]{
		Name:     OpImportSshPublicKey,
		Mutating: true,
		Target:   func(o *ImportSSHKeyOptions) string { return o.ServerID + "/" + o.UserName },
		Required: func(o *ImportSSHKeyOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("ServerId", o.ServerID == ""),
				cmdlet.Require("UserName", o.UserName == ""),
				cmdlet.Require("SshPublicKeyBody", o.SshPublicKeyBody == ""),
			}
		},
		Build: func(o *ImportSSHKeyOptions) (*awstransfer.ImportSshPublicKeyInput, error) {
			return &awstransfer.ImportSshPublicKeyInput{
				ServerId:         aws.String(o.ServerID),
				UserName:         aws.String(o.UserName),
				SshPublicKeyBody: aws.String(o.SshPublicKeyBody),
			}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.ImportSshPublicKeyInput) (*awstransfer.ImportSshPublicKeyOutput, error) {
			return client.ImportSshPublicKey(ctx, in)
		},
		Fields: map[string]func(*awstransfer.ImportSshPublicKeyOutput) any{
			"ServerId":       func(r *awstransfer.ImportSshPublicKeyOutput) any { return aws.ToString(r.ServerId) },
			"SshPublicKeyId": func(r *awstransfer.ImportSshPublicKeyOutput) any { return aws.ToString(r.SshPublicKeyId) },
			"UserName":       func(r *awstransfer.ImportSshPublicKeyOutput) any { return aws.ToString(r.UserName) },
		},
		DefaultSelect: "SshPublicKeyId",
	}
}

// DeleteSSHKeyOptions are the parameters of transfer:DeleteSshPublicKey.
type DeleteSSHKeyOptions struct {
	ServerID       string
	UserName       string
	SshPublicKeyID string
}

// DeleteSshPublicKey binds transfer:DeleteSshPublicKey to client.
func DeleteSshPublicKey(client awsclient.TransferAPI) *cmdlet.Operation[DeleteSSHKeyOptions, awstransfer.DeleteSshPublicKeyInput, awstransfer.DeleteSshPublicKeyOutput] {
	return &cmdlet.Operation[DeleteSSHKeyOptions, awstransfer.DeleteSshPublicKeyInput, awstransfer.DeleteSshPublicKeyOutput]{
		Name:     OpDeleteSshPublicKey,
		Mutating: true,
		Target:   func(o *DeleteSSHKeyOptions) string { return o.SshPublicKeyID },
		Required: func(o *DeleteSSHKeyOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("ServerId", o.ServerID == ""),
				cmdlet.Require("UserName", o.UserName == ""),
				cmdlet.Require("SshPublicKeyId", o.SshPublicKeyID == ""),
			}
		},
		Build: func(o *DeleteSSHKeyOptions) (*awstransfer.DeleteSshPublicKeyInput, error) {
			return &awstransfer.DeleteSshPublicKeyInput{
				ServerId:       aws.String(o.ServerID),
				UserName:       aws.String(o.UserName),
				SshPublicKeyId: aws.String(o.SshPublicKeyID),
			}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.DeleteSshPublicKeyInput) (*awstransfer.DeleteSshPublicKeyOutput, error) {
			return client.DeleteSshPublicKey(ctx, in)
		},
		Params: map[string]func(*DeleteSSHKeyOptions) any{
			"ServerId":       func(o *DeleteSSHKeyOptions) any { return o.ServerID },
			"UserName":       func(o *DeleteSSHKeyOptions) any { return o.UserName },
			"SshPublicKeyId": func(o *DeleteSSHKeyOptions) any { return o.SshPublicKeyID },
		},
		PassThru: "SshPublicKeyId",
	}
}
