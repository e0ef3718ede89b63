package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	agentcorecmd "github.com/vietdv277/cirrus/cmd/agentcore"
	transfercmd "github.com/vietdv277/cirrus/cmd/transfer"
	"github.com/vietdv277/cirrus/internal/cli"
)

var (
	// Global flags
	profile  string
	region   string
	format   string
	logLevel string
	strict   bool
)

var rootCmd = &cobra.Command{
	Use:   "crs",
	Short: "Cirrus - command adapters for AWS Transfer Family and Bedrock AgentCore",
	Long: `Cirrus is a command-line interface for AWS Transfer Family and the
Bedrock AgentCore data plane. Every command maps to one service operation:
parameters are validated, mutating calls are confirmed, list calls follow
continuation tokens and the response is projected with --select.

Context-Aware Commands:
  crs use prod               # Switch to the "prod" context
  crs status                 # Show current context and auth status
  crs contexts               # List all configured contexts

Transfer Family:
  crs transfer server list
  crs transfer user create alice --server-id s-1234 --role <arn>
  crs transfer server stop s-1234 --force

Bedrock AgentCore:
  crs agentcore browser start --name research
  crs agentcore memory event list --memory-id mem-1 --actor-id u-1 --session-id s-1
  crs agentcore runtime invoke --arn <arn> --payload '{"prompt":"hi"}'`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Interrupts cancel the in-flight call.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	stop()
	os.Exit(1)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	flags.StringVarP(&region, "region", "r", "", "AWS region to use")
	flags.StringVarP(&format, "output", "o", "", "Output format: table, json, yaml or text")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&strict, "strict", false, "Fail instead of warning when a required parameter is empty")

	// Bind flags to viper
	for _, name := range []string{"profile", "region", "output", "log-level", "strict"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(transfercmd.TransferCmd)
	rootCmd.AddCommand(agentcorecmd.AgentCoreCmd)
}

func initConfig() {
	// CRS_PROFILE, CRS_REGION, CRS_OUTPUT, CRS_LOG_LEVEL, CRS_STRICT
	viper.SetEnvPrefix("CRS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
