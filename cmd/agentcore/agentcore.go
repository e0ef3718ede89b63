package agentcore

import (
	"os"

	"github.com/spf13/cobra"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cli"
)

// AgentCoreCmd is the root command for Bedrock AgentCore data-plane operations
var AgentCoreCmd = &cobra.Command{
	Use:     "agentcore",
	Aliases: []string{"ac"},
	Short:   "Bedrock AgentCore data-plane commands",
	Long: `Bedrock AgentCore data-plane commands: browser and code interpreter
sessions, memory events and records, runtime invocation and workload identity.

Examples:
  crs agentcore browser start --name research
  crs agentcore code-interpreter list --status READY
  crs agentcore memory event create --memory-id mem-1 --actor-id u-1 --session-id s-1 --message user:hello
  crs agentcore runtime invoke --arn <runtime-arn> --payload-file request.json`,
}

// cmdStdin is read for "-" file arguments.
var cmdStdin = os.Stdin

func init() {
	AgentCoreCmd.AddCommand(browserCmd)
	AgentCoreCmd.AddCommand(codeInterpreterCmd)
	AgentCoreCmd.AddCommand(memoryCmd)
	AgentCoreCmd.AddCommand(runtimeCmd)
	AgentCoreCmd.AddCommand(identityCmd)
}

// open returns the session and AgentCore client for cmd.
var open = openSession

func openSession(cmd *cobra.Command) (*cli.Session, awsclient.AgentCoreAPI, error) {
	s, err := cli.Open(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := s.AgentCore(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return s, client, nil
}

// optionalInt32 returns &v when the flag name was given on cmd.
func optionalInt32(cmd *cobra.Command, name string, v int32) *int32 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

// optionalBool returns &v when the flag name was given on cmd.
func optionalBool(cmd *cobra.Command, name string, v bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
