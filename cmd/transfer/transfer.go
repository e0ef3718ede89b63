package transfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cli"
	tf "github.com/vietdv277/cirrus/internal/transfer"
	"github.com/vietdv277/cirrus/internal/ui"
)

// TransferCmd is the root command for AWS Transfer Family operations
var TransferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "AWS Transfer Family commands",
	Long: `AWS Transfer Family commands: servers, users, SSH keys, identity
provider tests and tags.

Examples:
  crs transfer server list
  crs transfer server describe s-1234567890abcdef0
  crs transfer user create alice --server-id s-1234 --role arn:aws:iam::123456789012:role/sftp
  crs transfer sshkey import alice --server-id s-1234 --ssh-key-file ~/.ssh/id_ed25519.pub`,
}

func init() {
	TransferCmd.AddCommand(serverCmd)
	TransferCmd.AddCommand(userCmd)
	TransferCmd.AddCommand(sshkeyCmd)
	TransferCmd.AddCommand(idpCmd)
	TransferCmd.AddCommand(tagCmd)
}

// open returns the session and Transfer client for cmd.
func open(cmd *cobra.Command) (*cli.Session, awsclient.TransferAPI, error) {
	s, err := cli.Open(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := s.Transfer(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return s, client, nil
}

// serverArg returns the server id from args, or lets the user pick one on a terminal.
func serverArg(ctx context.Context, client awsclient.TransferAPI, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !ui.IsTerminal(os.Stdin) {
		return "", nil
	}

	servers, err := tf.CollectServers(ctx, client)
	if err != nil {
		return "", fmt.Errorf("failed to list servers: %w", err)
	}

	items := make([]ui.Item, 0, len(servers))
	for _, srv := range servers {
		items = append(items, ui.Item{
			ID:    aws.ToString(srv.ServerId),
			Name:  strings.TrimSpace(string(srv.Domain) + " " + string(srv.EndpointType)),
			State: string(srv.State),
			Details: []ui.Detail{
				{Label: "ARN", Value: aws.ToString(srv.Arn)},
				{Label: "Identity", Value: string(srv.IdentityProviderType)},
				{Label: "Users", Value: fmt.Sprint(aws.ToInt32(srv.UserCount))},
				{Label: "Logging role", Value: aws.ToString(srv.LoggingRole)},
			},
		})
	}

	selected, err := ui.Select("Select Transfer server", items)
	if err != nil {
		if errors.Is(err, ui.ErrSelectionCancelled) {
			return "", err
		}
		return "", fmt.Errorf("failed to select server: %w", err)
	}
	return selected.ID, nil
}
