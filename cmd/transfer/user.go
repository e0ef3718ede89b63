package transfer

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	tf "github.com/vietdv277/cirrus/internal/transfer"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage service-managed users",
	Long: `Create, inspect, update and delete users of a Transfer Family server.

Examples:
  crs transfer user list --server-id s-1234
  crs transfer user create alice --server-id s-1234 --role <role-arn> --home /bucket/alice
  crs transfer user create bob --server-id s-1234 --role <role-arn> --ssh-key-secret /sftp/bob/pubkey`,
}

var userCreateCmd = &cobra.Command{
	Use:   "create <user-name>",
	Short: "Create a user",
	Long: `Create a service-managed user. The SSH public key can be given inline,
from a file or from a secret (a "/path" in Parameter Store or a Secrets Manager id).

Examples:
  crs transfer user create alice --server-id s-1234 --role <role-arn> --ssh-key-file ~/.ssh/alice.pub
  crs transfer user create alice --server-id s-1234 --role <role-arn> --home-type LOGICAL --mapping /=/bucket/alice`,
	Args: cobra.ExactArgs(1),
	RunE: runUserCreate,
}

var userDescribeCmd = &cobra.Command{
	Use:   "describe <user-name>",
	Short: "Describe a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserDescribe,
}

var userListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the users of a server",
	Args:    cobra.NoArgs,
	RunE:    runUserList,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <user-name>",
	Short: "Update a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserUpdate,
}

var userDeleteCmd = &cobra.Command{
	Use:     "delete <user-name>",
	Aliases: []string{"rm"},
	Short:   "Delete a user",
	Args:    cobra.ExactArgs(1),
	RunE:    runUserDelete,
}

// userFlags are the flag values shared by user create and update.
type userFlags struct {
	settings     tf.UserSettings
	mappings     []string
	uid          int64
	gid          int64
	secondaryGID []int64
}

var (
	userCreate      userFlags
	userCreateKey   sshKeyInput
	userCreateTags  []string
	userCreateFlags cli.Flags

	userUpdate      userFlags
	userUpdateFlags cli.Flags

	userServerID      string
	userDescribeFlags cli.Flags
	userListFlags     cli.Flags
	userDeleteFlags   cli.Flags
)

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userDescribeCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)

	userCreate.register(userCreateCmd)
	userCreateKey.register(userCreateCmd)
	userCreateCmd.Flags().StringArrayVar(&userCreateTags, "tag", nil, "Tag as key=value (repeatable)")
	userCreateFlags.Register(userCreateCmd, true, false)
	userCreateFlags.Require("ServerId", "server-id")
	userCreateFlags.Require("Role", "role")

	userUpdate.register(userUpdateCmd)
	userUpdateFlags.Register(userUpdateCmd, true, false)
	userUpdateFlags.Require("ServerId", "server-id")

	for _, c := range []*cobra.Command{userDescribeCmd, userListCmd, userDeleteCmd} {
		c.Flags().StringVar(&userServerID, "server-id", "", "Server id")
	}
	userDescribeFlags.Register(userDescribeCmd, false, false)
	userDescribeFlags.Require("ServerId", "server-id")
	userListFlags.Register(userListCmd, false, true)
	userDeleteFlags.Register(userDeleteCmd, true, false)
	userDeleteFlags.Require("ServerId", "server-id")
}

func (u *userFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&u.settings.ServerID, "server-id", "", "Server id")
	flags.StringVar(&u.settings.Role, "role", "", "IAM role ARN granting access to the storage")
	flags.StringVar(&u.settings.HomeDirectory, "home", "", "Home directory, e.g. /bucket/alice")
	flags.StringVar(&u.settings.HomeDirectoryType, "home-type", "", "PATH or LOGICAL")
	flags.StringArrayVar(&u.mappings, "mapping", nil, "Logical directory mapping as entry=target (repeatable)")
	flags.StringVar(&u.settings.Policy, "policy", "", "Session policy JSON")

	// PosixProfile
	flags.Int64Var(&u.uid, "uid", 0, "POSIX user id (EFS)")
	flags.Int64Var(&u.gid, "gid", 0, "POSIX group id (EFS)")
	flags.Int64SliceVar(&u.secondaryGID, "secondary-gids", nil, "Secondary POSIX group ids (EFS)")
}

// resolve completes the settings from the parsed flags of cmd.
func (u *userFlags) resolve(cmd *cobra.Command, userName string) (*tf.UserSettings, error) {
	mappings, err := cmdlet.ParseKeyValues(u.mappings)
	if err != nil {
		return nil, err
	}

	s := u.settings
	s.UserName = userName
	s.HomeDirectoryMappings = mappings
	s.Posix.SecondaryGIDs = u.secondaryGID
	if cmd.Flags().Changed("uid") {
		uid := u.uid
		s.Posix.UID = &uid
	}
	if cmd.Flags().Changed("gid") {
		gid := u.gid
		s.Posix.GID = &gid
	}
	return &s, nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	settings, err := userCreate.resolve(cmd, args[0])
	if err != nil {
		return err
	}
	tags, err := cmdlet.ParseKeyValues(userCreateTags)
	if err != nil {
		return err
	}
	key, err := userCreateKey.value(cmd.Context(), s)
	if err != nil {
		return err
	}

	opts := &tf.CreateUserOptions{UserSettings: *settings, SshPublicKeyBody: key, Tags: tags}
	return cli.Run(cmd.Context(), s, tf.CreateUser(client), opts, &userCreateFlags)
}

func runUserDescribe(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &tf.UserIDOptions{ServerID: userServerID, UserName: args[0]}
	return cli.Run(cmd.Context(), s, tf.DescribeUser(client), opts, &userDescribeFlags)
}

func runUserList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	id, err := serverArg(cmd.Context(), client, nonEmpty(userServerID))
	if err != nil {
		return err
	}
	if id == "" && !cmd.Flags().Changed("server-id") {
		userListFlags.Omit("ServerId")
	}
	return cli.Run(cmd.Context(), s, tf.ListUsers(client), &tf.ServerIDOptions{ServerID: id}, &userListFlags)
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	settings, err := userUpdate.resolve(cmd, args[0])
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, tf.UpdateUser(client), &tf.UpdateUserOptions{UserSettings: *settings}, &userUpdateFlags)
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &tf.UserIDOptions{ServerID: userServerID, UserName: args[0]}
	return cli.Run(cmd.Context(), s, tf.DeleteUser(client), opts, &userDeleteFlags)
}

func nonEmpty(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// sshKeyInput is an SSH public key given inline, from a file or from a secret.
type sshKeyInput struct {
	body   string
	file   string
	secret string
}

func (k *sshKeyInput) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&k.body, "ssh-key", "", "SSH public key body")
	flags.StringVar(&k.file, "ssh-key-file", "", `File holding the SSH public key ("-" for stdin)`)
	flags.StringVar(&k.secret, "ssh-key-secret", "", "Parameter Store path or Secrets Manager id holding the SSH public key")
}

func (k *sshKeyInput) value(ctx context.Context, s *cli.Session) (string, error) {
	data, err := cli.ReadInput(k.body, k.file, cmdStdin)
	if err != nil {
		return "", err
	}
	return s.SecretOr(ctx, string(data), k.secret)
}
