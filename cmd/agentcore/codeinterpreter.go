package agentcore

import (
	"github.com/spf13/cobra"

	ac "github.com/vietdv277/cirrus/internal/agentcore"
	"github.com/vietdv277/cirrus/internal/cli"
)

const defaultCodeInterpreter = "aws.codeinterpreter.v1"

var codeInterpreterCmd = &cobra.Command{
	Use:     "code-interpreter",
	Aliases: []string{"ci"},
	Short:   "Manage code interpreter sessions",
	Long: `Start, inspect, list and stop AgentCore code interpreter sessions.

Examples:
  crs agentcore code-interpreter start --timeout 900
  crs agentcore ci list -o json
  crs agentcore ci stop <session-id> --passthru`,
}

var ciStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a code interpreter session",
	Args:  cobra.NoArgs,
	RunE:  runCIStart,
}

var ciGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Get a code interpreter session",
	Args:  cobra.ExactArgs(1),
	RunE:  runCIGet,
}

var ciStopCmd = &cobra.Command{
	Use:   "stop <session-id>",
	Short: "Stop a code interpreter session",
	Args:  cobra.ExactArgs(1),
	RunE:  runCIStop,
}

var ciListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List code interpreter sessions",
	Args:    cobra.NoArgs,
	RunE:    runCIList,
}

var (
	ciID     string
	ciStart  sessionStartFlags
	ciStatus string
	ciStartF cli.Flags
	ciGetF   cli.Flags
	ciStopF  cli.Flags
	ciListF  cli.Flags
)

func init() {
	codeInterpreterCmd.AddCommand(ciStartCmd)
	codeInterpreterCmd.AddCommand(ciGetCmd)
	codeInterpreterCmd.AddCommand(ciStopCmd)
	codeInterpreterCmd.AddCommand(ciListCmd)

	codeInterpreterCmd.PersistentFlags().StringVar(&ciID, "code-interpreter-id", defaultCodeInterpreter, "Code interpreter identifier")

	ciStart.register(ciStartCmd)
	ciStartF.Register(ciStartCmd, true, false)
	ciGetF.Register(ciGetCmd, false, false)
	ciStopF.Register(ciStopCmd, true, false)

	ciListCmd.Flags().StringVar(&ciStatus, "status", "", "READY or TERMINATED")
	ciListF.Register(ciListCmd, false, true)
}

func runCIStart(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := ciStart.options(cmd, ciID)
	return cli.Run(cmd.Context(), s, ac.StartCodeInterpreterSession(client), &opts, &ciStartF)
}

func runCIGet(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.SessionOptions{Identifier: ciID, SessionID: args[0]}
	return cli.Run(cmd.Context(), s, ac.GetCodeInterpreterSession(client), opts, &ciGetF)
}

func runCIStop(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.SessionOptions{Identifier: ciID, SessionID: args[0]}
	return cli.Run(cmd.Context(), s, ac.StopCodeInterpreterSession(client), opts, &ciStopF)
}

func runCIList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.ListSessionsOptions{Identifier: ciID, Status: ciStatus}
	return cli.Run(cmd.Context(), s, ac.ListCodeInterpreterSessions(client), opts, &ciListF)
}
