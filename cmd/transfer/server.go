package transfer

import (
	"github.com/spf13/cobra"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	tf "github.com/vietdv277/cirrus/internal/transfer"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage Transfer Family servers",
	Long: `Create, inspect, update, start, stop and delete Transfer Family servers.

Examples:
  crs transfer server list
  crs transfer server create --protocols SFTP --logging-role <role-arn>
  crs transfer server create --endpoint-type VPC --subnet-ids subnet-1,subnet-2
  crs transfer server stop s-1234 --force`,
}

var serverCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a server",
	Long: `Create a Transfer Family server.

For VPC endpoints, the VPC is looked up from --subnet-ids when --vpc-id is omitted.

Examples:
  crs transfer server create --logging-role arn:aws:iam::123456789012:role/transfer-logs
  crs transfer server create --protocols SFTP,FTPS --certificate <acm-arn> --tag env=prod`,
	Args: cobra.NoArgs,
	RunE: runServerCreate,
}

var serverDescribeCmd = &cobra.Command{
	Use:   "describe [server-id]",
	Short: "Describe a server",
	Long: `Describe a Transfer Family server. Without an id, a selector lists the servers.

Examples:
  crs transfer server describe s-1234567890abcdef0
  crs transfer server describe s-1234 --select '*' -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServerDescribe,
}

var serverListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List servers",
	Args:    cobra.NoArgs,
	RunE:    runServerList,
}

var serverUpdateCmd = &cobra.Command{
	Use:   "update <server-id>",
	Short: "Update a server",
	Long: `Update a Transfer Family server. Only the given settings are sent.

Examples:
  crs transfer server update s-1234 --security-policy TransferSecurityPolicy-2024-01`,
	Args: cobra.ExactArgs(1),
	RunE: runServerUpdate,
}

var serverDeleteCmd = &cobra.Command{
	Use:     "delete <server-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a server",
	Args:    cobra.ExactArgs(1),
	RunE:    serverIDRunner(tf.DeleteServer, &serverDeleteFlags),
}

var serverStartCmd = &cobra.Command{
	Use:   "start <server-id>",
	Short: "Start a server",
	Args:  cobra.ExactArgs(1),
	RunE:  serverIDRunner(tf.StartServer, &serverStartFlags),
}

var serverStopCmd = &cobra.Command{
	Use:   "stop <server-id>",
	Short: "Stop a server",
	Args:  cobra.ExactArgs(1),
	RunE:  serverIDRunner(tf.StopServer, &serverStopFlags),
}

var (
	serverCreateOpts  tf.CreateServerOptions
	serverCreateTags  []string
	serverCreateFlags cli.Flags

	serverUpdateOpts  tf.UpdateServerOptions
	serverUpdateFlags cli.Flags

	serverDescribeFlags cli.Flags
	serverListFlags     cli.Flags
	serverDeleteFlags   cli.Flags
	serverStartFlags    cli.Flags
	serverStopFlags     cli.Flags
)

func init() {
	serverCmd.AddCommand(serverCreateCmd)
	serverCmd.AddCommand(serverDescribeCmd)
	serverCmd.AddCommand(serverListCmd)
	serverCmd.AddCommand(serverUpdateCmd)
	serverCmd.AddCommand(serverDeleteCmd)
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverStopCmd)

	registerServerSettings(serverCreateCmd, &serverCreateOpts.ServerSettings)
	serverCreateCmd.Flags().StringVar(&serverCreateOpts.Domain, "domain", "", "Storage domain: S3 or EFS")
	serverCreateCmd.Flags().StringVar(&serverCreateOpts.IdentityProviderType, "identity-provider-type", "", "SERVICE_MANAGED, API_GATEWAY, AWS_DIRECTORY_SERVICE or AWS_LAMBDA")
	serverCreateCmd.Flags().StringArrayVar(&serverCreateTags, "tag", nil, "Tag as key=value (repeatable)")
	serverCreateFlags.Register(serverCreateCmd, true, false)

	registerServerSettings(serverUpdateCmd, &serverUpdateOpts.ServerSettings)
	serverUpdateFlags.Register(serverUpdateCmd, true, false)

	serverDescribeFlags.Register(serverDescribeCmd, false, false)
	serverListFlags.Register(serverListCmd, false, true)
	serverDeleteFlags.Register(serverDeleteCmd, true, false)
	serverStartFlags.Register(serverStartCmd, true, false)
	serverStopFlags.Register(serverStopCmd, true, false)
}

func registerServerSettings(cmd *cobra.Command, s *tf.ServerSettings) {
	flags := cmd.Flags()
	flags.StringVar(&s.Certificate, "certificate", "", "ACM certificate ARN (required for FTPS)")
	flags.StringVar(&s.EndpointType, "endpoint-type", "", "PUBLIC, VPC or VPC_ENDPOINT")
	flags.StringVar(&s.HostKey, "host-key", "", "RSA, ECDSA or ED25519 private host key")
	flags.StringVar(&s.LoggingRole, "logging-role", "", "IAM role ARN for CloudWatch logging")
	flags.StringSliceVar(&s.Protocols, "protocols", nil, "SFTP, FTP, FTPS and/or AS2")
	flags.StringVar(&s.SecurityPolicyName, "security-policy", "", "Security policy name")
	flags.StringVar(&s.PreAuthenticationLoginBanner, "pre-auth-banner", "", "Banner shown before authentication")
	flags.StringVar(&s.PostAuthenticationLoginBanner, "post-auth-banner", "", "Banner shown after authentication")
	flags.StringSliceVar(&s.StructuredLogDestinations, "log-destinations", nil, "CloudWatch log group ARNs for structured logs")

	// EndpointDetails
	flags.StringVar(&s.Endpoint.VpcID, "vpc-id", "", "VPC id (looked up from --subnet-ids when omitted)")
	flags.StringSliceVar(&s.Endpoint.SubnetIDs, "subnet-ids", nil, "Subnet ids of the VPC endpoint")
	flags.StringSliceVar(&s.Endpoint.SecurityGroupIDs, "security-group-ids", nil, "Security group ids of the VPC endpoint")
	flags.StringSliceVar(&s.Endpoint.AddressAllocationIDs, "address-allocation-ids", nil, "Elastic IP allocation ids")
	flags.StringVar(&s.Endpoint.VpcEndpointID, "vpc-endpoint-id", "", "Existing VPC endpoint id")

	// IdentityProviderDetails
	flags.StringVar(&s.IdentityProvider.URL, "idp-url", "", "API Gateway URL of a custom identity provider")
	flags.StringVar(&s.IdentityProvider.InvocationRole, "idp-invocation-role", "", "Role used to invoke the identity provider")
	flags.StringVar(&s.IdentityProvider.DirectoryID, "directory-id", "", "AWS Directory Service directory id")
	flags.StringVar(&s.IdentityProvider.Function, "idp-function", "", "Lambda function ARN of the identity provider")
}

func runServerCreate(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	tags, err := cmdlet.ParseKeyValues(serverCreateTags)
	if err != nil {
		return err
	}
	serverCreateOpts.Tags = tags

	return cli.Run(cmd.Context(), s, tf.CreateServerResolvingVPC(client, s.EC2), &serverCreateOpts, &serverCreateFlags)
}

func runServerDescribe(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	id, err := serverArg(cmd.Context(), client, args)
	if err != nil {
		return err
	}
	if id == "" && len(args) == 0 {
		serverDescribeFlags.Omit("ServerId")
	}

	return cli.Run(cmd.Context(), s, tf.DescribeServer(client), &tf.ServerIDOptions{ServerID: id}, &serverDescribeFlags)
}

func runServerList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, tf.ListServers(client), &tf.ListOptions{}, &serverListFlags)
}

func runServerUpdate(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	serverUpdateOpts.ServerID = args[0]
	return cli.Run(cmd.Context(), s, tf.UpdateServerResolvingVPC(client, s.EC2), &serverUpdateOpts, &serverUpdateFlags)
}

// serverIDRunner builds the RunE of a command whose only parameter is the server id.
func serverIDRunner[I, R any](
	bind func(awsclient.TransferAPI) *cmdlet.Operation[tf.ServerIDOptions, I, R],
	flags *cli.Flags,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, client, err := open(cmd)
		if err != nil {
			return err
		}
		return cli.Run(cmd.Context(), s, bind(client), &tf.ServerIDOptions{ServerID: args[0]}, flags)
	}
}
