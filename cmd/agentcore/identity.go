package agentcore

import (
	"fmt"

	"github.com/spf13/cobra"

	ac "github.com/vietdv277/cirrus/internal/agentcore"
	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Workload identity tokens and credentials",
}

var workloadTokenCmd = &cobra.Command{
	Use:   "workload-token",
	Short: "Get a workload access token",
	Long: `Get a workload access token, optionally on behalf of a user.

--user-token exchanges a user JWT, --user-id names the user directly.

Examples:
  crs agentcore identity workload-token --workload-name my-agent
  crs agentcore identity workload-token --workload-name my-agent --user-id alice`,
	Args: cobra.NoArgs,
	RunE: runWorkloadToken,
}

var apiKeyCmd = &cobra.Command{
	Use:   "api-key",
	Short: "Get an API key from a credential provider",
	Args:  cobra.NoArgs,
	RunE:  runAPIKey,
}

var (
	workloadOpts  ac.WorkloadTokenOptions
	workloadFlags cli.Flags
	apiKeyOpts    ac.APIKeyOptions
	apiKeyFlags   cli.Flags
)

func init() {
	identityCmd.AddCommand(workloadTokenCmd)
	identityCmd.AddCommand(apiKeyCmd)

	flags := workloadTokenCmd.Flags()
	flags.StringVar(&workloadOpts.WorkloadName, "workload-name", "", "Workload identity name")
	flags.StringVar(&workloadOpts.UserToken, "user-token", "", "User JWT to exchange")
	flags.StringVar(&workloadOpts.UserID, "user-id", "", "User id to act for")
	workloadFlags.Register(workloadTokenCmd, false, false)
	workloadFlags.Require("WorkloadName", "workload-name")

	apiKeyCmd.Flags().StringVar(&apiKeyOpts.ProviderName, "provider-name", "", "API key credential provider name")
	apiKeyCmd.Flags().StringVar(&apiKeyOpts.WorkloadIdentityToken, "workload-token", "", "Workload access token")
	apiKeyFlags.Register(apiKeyCmd, false, false)
	apiKeyFlags.Require("ResourceCredentialProviderName", "provider-name")
	apiKeyFlags.Require("WorkloadIdentityToken", "workload-token")
}

func runWorkloadToken(cmd *cobra.Command, args []string) error {
	if workloadOpts.UserToken != "" && workloadOpts.UserID != "" {
		return fmt.Errorf("%w: --user-token and --user-id cannot be combined", cmdlet.ErrInvalidArgument)
	}

	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	switch {
	case workloadOpts.UserToken != "":
		return cli.Run(cmd.Context(), s, ac.GetWorkloadAccessTokenForJWT(client), &workloadOpts, &workloadFlags)
	case workloadOpts.UserID != "":
		return cli.Run(cmd.Context(), s, ac.GetWorkloadAccessTokenForUserId(client), &workloadOpts, &workloadFlags)
	default:
		return cli.Run(cmd.Context(), s, ac.GetWorkloadAccessToken(client), &workloadOpts, &workloadFlags)
	}
}

func runAPIKey(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, ac.GetResourceApiKey(client), &apiKeyOpts, &apiKeyFlags)
}
