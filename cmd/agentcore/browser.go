package agentcore

import (
	"github.com/spf13/cobra"

	ac "github.com/vietdv277/cirrus/internal/agentcore"
	"github.com/vietdv277/cirrus/internal/cli"
)

const defaultBrowser = "aws.browser.v1"

var browserCmd = &cobra.Command{
	Use:   "browser",
	Short: "Manage browser sessions",
	Long: `Start, inspect, list and stop AgentCore browser sessions.

Examples:
  crs agentcore browser start --name research --viewport-width 1280 --viewport-height 800
  crs agentcore browser list --status READY
  crs agentcore browser stop <session-id> --force`,
}

var browserStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a browser session",
	Args:  cobra.NoArgs,
	RunE:  runBrowserStart,
}

var browserGetCmd = &cobra.Command{
	Use:   "get <session-id>",
	Short: "Get a browser session",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowserGet,
}

var browserStopCmd = &cobra.Command{
	Use:   "stop <session-id>",
	Short: "Stop a browser session",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrowserStop,
}

var browserListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List browser sessions",
	Args:    cobra.NoArgs,
	RunE:    runBrowserList,
}

var (
	browserID     string
	browserStart  sessionStartFlags
	browserWidth  int32
	browserHeight int32
	browserStatus string
	browserStartF cli.Flags
	browserGetF   cli.Flags
	browserStopF  cli.Flags
	browserListF  cli.Flags
)

func init() {
	browserCmd.AddCommand(browserStartCmd)
	browserCmd.AddCommand(browserGetCmd)
	browserCmd.AddCommand(browserStopCmd)
	browserCmd.AddCommand(browserListCmd)

	browserCmd.PersistentFlags().StringVar(&browserID, "browser-id", defaultBrowser, "Browser identifier")

	browserStart.register(browserStartCmd)
	browserStartCmd.Flags().Int32Var(&browserWidth, "viewport-width", 0, "Viewport width in pixels")
	browserStartCmd.Flags().Int32Var(&browserHeight, "viewport-height", 0, "Viewport height in pixels")
	browserStartF.Register(browserStartCmd, true, false)

	browserGetF.Register(browserGetCmd, false, false)
	browserStopF.Register(browserStopCmd, true, false)

	browserListCmd.Flags().StringVar(&browserStatus, "status", "", "READY or TERMINATED")
	browserListF.Register(browserListCmd, false, true)
}

func runBrowserStart(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := &ac.StartBrowserOptions{
		StartSessionOptions: browserStart.options(cmd, browserID),
		ViewPort: ac.ViewPortOptions{
			Width:  optionalInt32(cmd, "viewport-width", browserWidth),
			Height: optionalInt32(cmd, "viewport-height", browserHeight),
		},
	}
	return cli.Run(cmd.Context(), s, ac.StartBrowserSession(client), opts, &browserStartF)
}

func runBrowserGet(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.SessionOptions{Identifier: browserID, SessionID: args[0]}
	return cli.Run(cmd.Context(), s, ac.GetBrowserSession(client), opts, &browserGetF)
}

func runBrowserStop(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.SessionOptions{Identifier: browserID, SessionID: args[0]}
	return cli.Run(cmd.Context(), s, ac.StopBrowserSession(client), opts, &browserStopF)
}

func runBrowserList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.ListSessionsOptions{Identifier: browserID, Status: browserStatus}
	return cli.Run(cmd.Context(), s, ac.ListBrowserSessions(client), opts, &browserListF)
}

// sessionStartFlags are the flags shared by browser and code interpreter start.
type sessionStartFlags struct {
	name        string
	timeout     int32
	clientToken string
}

func (f *sessionStartFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.name, "name", "", "Session name")
	flags.Int32Var(&f.timeout, "timeout", 0, "Session timeout in seconds")
	flags.StringVar(&f.clientToken, "client-token", "", "Idempotency token")
}

func (f *sessionStartFlags) options(cmd *cobra.Command, identifier string) ac.StartSessionOptions {
	return ac.StartSessionOptions{
		Identifier:     identifier,
		Name:           f.name,
		TimeoutSeconds: optionalInt32(cmd, "timeout", f.timeout),
		ClientToken:    f.clientToken,
	}
}
