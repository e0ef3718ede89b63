package transfer

import (
	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/cli"
	tf "github.com/vietdv277/cirrus/internal/transfer"
)

var idpCmd = &cobra.Command{
	Use:   "idp",
	Short: "Identity provider commands",
}

var idpTestCmd = &cobra.Command{
	Use:   "test <user-name>",
	Short: "Test the identity provider of a server",
	Long: `Authenticate a user against the custom identity provider of a server.

The password can come from a secret so it never appears on the command line.

Examples:
  crs transfer idp test alice --server-id s-1234 --password-secret /sftp/alice/password
  crs transfer idp test alice --server-id s-1234 --protocol FTPS --source-ip 10.0.0.8`,
	Args: cobra.ExactArgs(1),
	RunE: runIdpTest,
}

var (
	idpTestOpts   tf.TestIdentityProviderOptions
	idpTestSecret string
	idpTestFlags  cli.Flags
)

func init() {
	idpCmd.AddCommand(idpTestCmd)

	flags := idpTestCmd.Flags()
	flags.StringVar(&idpTestOpts.ServerID, "server-id", "", "Server id")
	flags.StringVar(&idpTestOpts.ServerProtocol, "protocol", "", "SFTP, FTP, FTPS or AS2")
	flags.StringVar(&idpTestOpts.SourceIP, "source-ip", "", "Source IP address to test with")
	flags.StringVar(&idpTestOpts.UserPassword, "password", "", "User password")
	flags.StringVar(&idpTestSecret, "password-secret", "", "Parameter Store path or Secrets Manager id holding the password")
	idpTestFlags.Register(idpTestCmd, false, false)
	idpTestFlags.Require("ServerId", "server-id")
}

func runIdpTest(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := idpTestOpts
	opts.UserName = args[0]
	if opts.UserPassword, err = s.SecretOr(cmd.Context(), opts.UserPassword, idpTestSecret); err != nil {
		return err
	}

	return cli.Run(cmd.Context(), s, tf.TestIdentityProvider(client), &opts, &idpTestFlags)
}
