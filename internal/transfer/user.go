package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"
	tftypes "github.com/aws/aws-sdk-go-v2/service/transfer/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// PosixOptions are the leaves of PosixProfile, used by EFS-backed servers.
type PosixOptions struct {
	UID           *int64
	GID           *int64
	SecondaryGIDs []int64
}

func (o *PosixOptions) build() *tftypes.PosixProfile {
	p := &tftypes.PosixProfile{}
	set := false

	if o.UID != nil {
		p.Uid = o.UID
		set = true
	}
	if o.GID != nil {
		p.Gid = o.GID
		set = true
	}
	if len(o.SecondaryGIDs) > 0 {
		p.SecondaryGids = o.SecondaryGIDs
		set = true
	}

	return cmdlet.Populated(p, set)
}

// UserSettings are the fields shared by CreateUser and UpdateUser.
type UserSettings struct {
	ServerID              string
	UserName              string
	Role                  string
	HomeDirectory         string
	HomeDirectoryType     string
	HomeDirectoryMappings map[string]string
	Policy                string
	Posix                 PosixOptions
}

func (o *UserSettings) required(withRole bool) []cmdlet.Param {
	params := []cmdlet.Param{
		cmdlet.Require("ServerId", o.ServerID == ""),
		cmdlet.Require("UserName", o.UserName == ""),
	}
	if withRole {
		params = append(params, cmdlet.Require("Role", o.Role == ""))
	}
	return params
}

func (o *UserSettings) target() string {
	return o.ServerID + "/" + o.UserName
}

// CreateUserOptions are the parameters of transfer:CreateUser.
type CreateUserOptions struct {
	UserSettings
	SshPublicKeyBody string
	Tags             map[string]string
}

// BuildCreateUser builds the CreateUser request.
func BuildCreateUser(o *CreateUserOptions) (*awstransfer.CreateUserInput, error) {
	homeType, err := cmdlet.Enum("HomeDirectoryType", o.HomeDirectoryType, tftypes.HomeDirectoryType("").Values())
	if err != nil {
		return nil, err
	}

	return &awstransfer.CreateUserInput{
		ServerId:              aws.String(o.ServerID),
		UserName:              aws.String(o.UserName),
		Role:                  aws.String(o.Role),
		HomeDirectory:         cmdlet.String(o.HomeDirectory),
		HomeDirectoryType:     homeType,
		HomeDirectoryMappings: buildMappings(o.HomeDirectoryMappings),
		Policy:                cmdlet.String(o.Policy),
		PosixProfile:          o.Posix.build(),
		SshPublicKeyBody:      cmdlet.String(o.SshPublicKeyBody),
		Tags:                  buildTags(o.Tags),
	}, nil
}

// CreateUser binds transfer:CreateUser to client.
func CreateUser(client awsclient.TransferAPI) *cmdlet.Operation[CreateUserOptions, awstransfer.CreateUserInput, awstransfer.CreateUserOutput] {
	return &cmdlet.Operation[CreateUserOptions, awstransfer.CreateUserInput, awstransfer.CreateUserOutput]{
		Name:     OpCreateUser,
		Mutating: true,
		Target:   func(o *CreateUserOptions) string { return o.target() },
		Required: func(o *CreateUserOptions) []cmdlet.Param { return o.required(true) },
		Build:    BuildCreateUser,
		Call: func(ctx context.Context, in *awstransfer.CreateUserInput) (*awstransfer.CreateUserOutput, error) {
			return client.CreateUser(ctx, in)
		},
		Fields: map[string]func(*awstransfer.CreateUserOutput) any{
			"ServerId": func(r *awstransfer.CreateUserOutput) any { return aws.ToString(r.ServerId) },
			"UserName": func(r *awstransfer.CreateUserOutput) any { return aws.ToString(r.UserName) },
		},
		DefaultSelect: "UserName",
	}
}

// UserIDOptions identify a user on a server.
type UserIDOptions struct {
	ServerID string
	UserName string
}

func requireUser(o *UserIDOptions) []cmdlet.Param {
	return []cmdlet.Param{
		cmdlet.Require("ServerId", o.ServerID == ""),
		cmdlet.Require("UserName", o.UserName == ""),
	}
}

func userParams() map[string]func(*UserIDOptions) any {
	return map[string]func(*UserIDOptions) any{
		"ServerId": func(o *UserIDOptions) any { return o.ServerID },
		"UserName": func(o *UserIDOptions) any { return o.UserName },
	}
}

// DescribeUser binds transfer:DescribeUser to client.
func DescribeUser(client awsclient.TransferAPI) *cmdlet.Operation[UserIDOptions, awstransfer.DescribeUserInput, awstransfer.DescribeUserOutput] {
	return &cmdlet.Operation[UserIDOptions, awstransfer.DescribeUserInput, awstransfer.DescribeUserOutput]{
		Name:     OpDescribeUser,
		Required: requireUser,
		Build: func(o *UserIDOptions) (*awstransfer.DescribeUserInput, error) {
			return &awstransfer.DescribeUserInput{ServerId: aws.String(o.ServerID), UserName: aws.String(o.UserName)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.DescribeUserInput) (*awstransfer.DescribeUserOutput, error) {
			return client.DescribeUser(ctx, in)
		},
		Fields: map[string]func(*awstransfer.DescribeUserOutput) any{
			"ServerId": func(r *awstransfer.DescribeUserOutput) any { return aws.ToString(r.ServerId) },
			"User":     func(r *awstransfer.DescribeUserOutput) any { return r.User },
		},
		Params:        userParams(),
		DefaultSelect: "User",
		PassThru:      "UserName",
	}
}

// ListUsers binds transfer:ListUsers to client.
func ListUsers(client awsclient.TransferAPI) *cmdlet.Operation[ServerIDOptions, awstransfer.ListUsersInput, awstransfer.ListUsersOutput] {
	return &cmdlet.Operation[ServerIDOptions, awstransfer.ListUsersInput, awstransfer.ListUsersOutput]{
		Name:     OpListUsers,
		Required: requireServer,
		Build: func(o *ServerIDOptions) (*awstransfer.ListUsersInput, error) {
			return &awstransfer.ListUsersInput{ServerId: aws.String(o.ServerID)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.ListUsersInput) (*awstransfer.ListUsersOutput, error) {
			return client.ListUsers(ctx, in)
		},
		Fields: map[string]func(*awstransfer.ListUsersOutput) any{
			"ServerId":  func(r *awstransfer.ListUsersOutput) any { return aws.ToString(r.ServerId) },
			"Users":     func(r *awstransfer.ListUsersOutput) any { return r.Users },
			"NextToken": func(r *awstransfer.ListUsersOutput) any { return r.NextToken },
		},
		Params:        map[string]func(*ServerIDOptions) any{"ServerId": echoServerID},
		DefaultSelect: "Users",
		Paging: &cmdlet.Paging[awstransfer.ListUsersInput, awstransfer.ListUsersOutput]{
			Token:    func(r *awstransfer.ListUsersOutput) *string { return r.NextToken },
			SetToken: func(in *awstransfer.ListUsersInput, t *string) { in.NextToken = t },
			SetLimit: func(in *awstransfer.ListUsersInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// UpdateUserOptions are the parameters of transfer:UpdateUser.
type UpdateUserOptions struct {
	UserSettings
}

// BuildUpdateUser builds the UpdateUser request.
func BuildUpdateUser(o *UpdateUserOptions) (*awstransfer.UpdateUserInput, error) {
	homeType, err := cmdlet.Enum("HomeDirectoryType", o.HomeDirectoryType, tftypes.HomeDirectoryType("").Values())
	if err != nil {
		return nil, err
	}

	return &awstransfer.UpdateUserInput{
		ServerId:              aws.String(o.ServerID),
		UserName:              aws.String(o.UserName),
		Role:                  cmdlet.String(o.Role),
		HomeDirectory:         cmdlet.String(o.HomeDirectory),
		HomeDirectoryType:     homeType,
		HomeDirectoryMappings: buildMappings(o.HomeDirectoryMappings),
		Policy:                cmdlet.String(o.Policy),
		PosixProfile:          o.Posix.build(),
	}, nil
}

// UpdateUser binds transfer:UpdateUser to client.
func UpdateUser(client awsclient.TransferAPI) *cmdlet.Operation[UpdateUserOptions, awstransfer.UpdateUserInput, awstransfer.UpdateUserOutput] {
	return &cmdlet.Operation[UpdateUserOptions, awstransfer.UpdateUserInput, awstransfer.UpdateUserOutput]{
		Name:     OpUpdateUser,
		Mutating: true,
		Target:   func(o *UpdateUserOptions) string { return o.target() },
		Required: func(o *UpdateUserOptions) []cmdlet.Param { return o.required(false) },
		Build:    BuildUpdateUser,
		Call: func(ctx context.Context, in *awstransfer.UpdateUserInput) (*awstransfer.UpdateUserOutput, error) {
			return client.UpdateUser(ctx, in)
		},
		Fields: map[string]func(*awstransfer.UpdateUserOutput) any{
			"ServerId": func(r *awstransfer.UpdateUserOutput) any { return aws.ToString(r.ServerId) },
			"UserName": func(r *awstransfer.UpdateUserOutput) any { return aws.ToString(r.UserName) },
		},
		DefaultSelect: "UserName",
	}
}

// DeleteUser binds transfer:DeleteUser to client.
func DeleteUser(client awsclient.TransferAPI) *cmdlet.Operation[UserIDOptions, awstransfer.DeleteUserInput, awstransfer.DeleteUserOutput] {
	return &cmdlet.Operation[UserIDOptions, awstransfer.DeleteUserInput, awstransfer.DeleteUserOutput]{
		Name:     OpDeleteUser,
		Mutating: true,
		Target:   func(o *UserIDOptions) string { return o.ServerID + "/" + o.UserName },
		Required: requireUser,
		Build: func(o *UserIDOptions) (*awstransfer.DeleteUserInput, error) {
			return &awstransfer.DeleteUserInput{ServerId: aws.String(o.ServerID), UserName: aws.String(o.UserName)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.DeleteUserInput) (*awstransfer.DeleteUserOutput, error) {
			return client.DeleteUser(ctx, in)
		},
		Params:   userParams(),
		PassThru: "UserName",
	}
}
