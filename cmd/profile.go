package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/config"
	"github.com/vietdv277/cirrus/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect AWS profiles",
	Long: `Inspect the AWS profiles found in ~/.aws/credentials and ~/.aws/config.

Examples:
  crs profile ls                 # List all available profiles`,
}

var profileLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available AWS profiles",
	Long: `List all available AWS profiles from ~/.aws/credentials and ~/.aws/config.
The profile in effect is marked ACTIVE.

Examples:
  crs profile ls`,
	RunE: runProfileList,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileLsCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	profiles, err := aws.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Fprintln(out, "No AWS profiles found")
		fmt.Fprintln(out, "Create profiles in ~/.aws/credentials or ~/.aws/config")
		return nil
	}

	active := activeProfile()

	table := ui.NewTable("PROFILE", "REGION", "SOURCE", "STATUS")
	table.StateColumn = 3
	table.Noun = "profiles"
	for _, p := range profiles {
		status := ""
		if p.Name == active {
			status = "ACTIVE"
		}
		table.Append(p.Name, p.Region, p.Source, status)
	}
	table.Render(out)

	return nil
}

// activeProfile returns the profile commands would use.
// Priority: --profile flag / CRS_PROFILE > current context > AWS_PROFILE env > "default"
func activeProfile() string {
	if p := viper.GetString("profile"); p != "" {
		return p
	}

	if ctx, _, err := config.GetCurrentContext(); err == nil && ctx != nil && ctx.Profile != "" {
		return ctx.Profile
	}

	if p := os.Getenv("AWS_PROFILE"); p != "" {
		return p
	}
	return "default"
}
