package agentcore

import (
	"github.com/spf13/cobra"

	ac "github.com/vietdv277/cirrus/internal/agentcore"
	"github.com/vietdv277/cirrus/internal/cli"
)

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Invoke agent runtimes",
}

var runtimeInvokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke an agent runtime",
	Long: `Send a payload to an agent runtime and print the response body.

Examples:
  crs agentcore runtime invoke --arn <runtime-arn> --payload '{"prompt":"hello"}'
  crs agentcore runtime invoke --arn <runtime-arn> --payload-file - < request.json
  crs agentcore runtime invoke --arn <runtime-arn> --payload '{}' --select '*' -o json`,
	Args: cobra.NoArgs,
	RunE: runRuntimeInvoke,
}

var (
	runtimeOpts        ac.InvokeRuntimeOptions
	runtimePayload     string
	runtimePayloadFile string
	runtimeFlags       cli.Flags
)

func init() {
	runtimeCmd.AddCommand(runtimeInvokeCmd)

	flags := runtimeInvokeCmd.Flags()
	flags.StringVar(&runtimeOpts.AgentRuntimeArn, "arn", "", "Agent runtime ARN")
	flags.StringVar(&runtimeOpts.Qualifier, "qualifier", "", "Endpoint qualifier (default endpoint when empty)")
	flags.StringVar(&runtimePayload, "payload", "", "Request payload")
	flags.StringVar(&runtimePayloadFile, "payload-file", "", `File holding the payload ("-" for stdin)`)
	flags.StringVar(&runtimeOpts.ContentType, "content-type", "application/json", "MIME type of the payload")
	flags.StringVar(&runtimeOpts.Accept, "accept", "", "Accepted MIME type of the response")
	flags.StringVar(&runtimeOpts.RuntimeSessionID, "session-id", "", "Runtime session id (at least 33 characters)")
	flags.StringVar(&runtimeOpts.RuntimeUserID, "user-id", "", "Runtime user id")
	runtimeFlags.Register(runtimeInvokeCmd, false, false)
	runtimeFlags.Require("AgentRuntimeArn", "arn")
	runtimeFlags.Require("Payload", "payload", "payload-file")
}

func runRuntimeInvoke(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := runtimeOpts
	if opts.Payload, err = cli.ReadInput(runtimePayload, runtimePayloadFile, cmdStdin); err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, ac.InvokeAgentRuntime(client), &opts, &runtimeFlags)
}
