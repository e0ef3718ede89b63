package transfer

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/cli"
	tf "github.com/vietdv277/cirrus/internal/transfer"
)

// cmdStdin is read for "-" file arguments.
var cmdStdin = os.Stdin

var sshkeyCmd = &cobra.Command{
	Use:   "sshkey",
	Short: "Manage the SSH public keys of a user",
}

var sshkeyImportCmd = &cobra.Command{
	Use:   "import <user-name>",
	Short: "Import an SSH public key",
	Long: `Import an SSH public key for a user.

Examples:
  crs transfer sshkey import alice --server-id s-1234 --ssh-key-file ~/.ssh/alice.pub
  crs transfer sshkey import alice --server-id s-1234 --ssh-key-secret sftp/alice/pubkey`,
	Args: cobra.ExactArgs(1),
	RunE: runSSHKeyImport,
}

var sshkeyDeleteCmd = &cobra.Command{
	Use:     "delete <user-name> <ssh-public-key-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an SSH public key",
	Args:    cobra.ExactArgs(2),
	RunE:    runSSHKeyDelete,
}

var (
	sshkeyServerID    string
	sshkeyImportKey   sshKeyInput
	sshkeyImportFlags cli.Flags
	sshkeyDeleteFlags cli.Flags
)

func init() {
	sshkeyCmd.AddCommand(sshkeyImportCmd)
	sshkeyCmd.AddCommand(sshkeyDeleteCmd)

	for _, c := range []*cobra.Command{sshkeyImportCmd, sshkeyDeleteCmd} {
		c.Flags().StringVar(&sshkeyServerID, "server-id", "", "Server id")
	}
	sshkeyImportKey.register(sshkeyImportCmd)
	sshkeyImportFlags.Register(sshkeyImportCmd, true, false)
	sshkeyImportFlags.Require("ServerId", "server-id")
	sshkeyImportFlags.Require("SshPublicKeyBody", "ssh-key", "ssh-key-file", "ssh-key-secret")
	sshkeyDeleteFlags.Register(sshkeyDeleteCmd, true, false)
	sshkeyDeleteFlags.Require("ServerId", "server-id")
}

func runSSHKeyImport(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	key, err := sshkeyImportKey.value(cmd.Context(), s)
	if err != nil {
		return err
	}

	opts := &tf.ImportSSHKeyOptions{ServerID: sshkeyServerID, UserName: args[0], SshPublicKeyBody: key}
	return cli.Run(cmd.Context(), s, tf.ImportSshPublicKey(client), opts, &sshkeyImportFlags)
}

func runSSHKeyDelete(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := &tf.DeleteSSHKeyOptions{ServerID: sshkeyServerID, UserName: args[0], SshPublicKeyID: args[1]}
	return cli.Run(cmd.Context(), s, tf.DeleteSshPublicKey(client), opts, &sshkeyDeleteFlags)
}
