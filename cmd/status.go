package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current context and authentication status",
	Long: `Display the effective profile and region and verify that the
credentials they resolve to are valid.

Examples:
  crs status
  crs status --profile dev`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	s, err := cli.Open(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Current Status")
	fmt.Fprintln(out, ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Fprintln(out)

	if s.Context == "" {
		fmt.Fprintln(out, "Context:  "+ui.MutedStyle.Render("(not set)"))
	} else {
		fmt.Fprintf(out, "Context:  %s\n", ui.HeaderStyle.Render(s.Context))
	}
	profile := s.Key.Profile
	if profile == "" {
		profile = "default"
	}
	fmt.Fprintf(out, "Profile:  %s\n", ui.NameStyle.Render(profile))
	if s.Key.Region != "" {
		fmt.Fprintf(out, "Region:   %s\n", s.Key.Region)
	}
	fmt.Fprintln(out)

	client, err := s.Factory.STS(cmd.Context(), s.Key)
	if err != nil {
		return err
	}
	displayIdentity(cmd, out, client, s.Key.Profile)
	return nil
}

func displayIdentity(cmd *cobra.Command, out io.Writer, client awsclient.STSAPI, profile string) {
	fmt.Fprint(out, "Auth:     ")
	identity, err := awsclient.GetCallerIdentity(cmd.Context(), client)
	if err != nil {
		fmt.Fprintln(out, ui.FailedStyle.Render("✗ Not authenticated"))
		fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
		if profile != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "To authenticate:")
			fmt.Fprintf(out, "  aws sso login --profile %s\n", profile)
		}
		return
	}

	fmt.Fprintln(out, ui.OnlineStyle.Render("✓ Authenticated"))
	fmt.Fprintf(out, "Account:  %s\n", identity.Account)
	fmt.Fprintf(out, "User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}
}
