package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/config"
	"github.com/vietdv277/cirrus/internal/ui"
)

var contextsCmd = &cobra.Command{
	Use:     "contexts",
	Aliases: []string{"ctx"},
	Short:   "List all configured contexts",
	Long: `List all configured contexts.

The current active context is marked ACTIVE.

Examples:
  crs contexts
  crs ctx`,
	RunE: runContexts,
}

func init() {
	rootCmd.AddCommand(contextsCmd)
}

func runContexts(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	contexts, current, err := config.ListContexts()
	if err != nil {
		return fmt.Errorf("failed to list contexts: %w", err)
	}

	if len(contexts) == 0 {
		fmt.Fprintln(out, "No contexts configured.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Add a context with:")
		fmt.Fprintln(out, "  crs use add prod --profile <profile> --region <region>")
		return nil
	}

	table := ui.NewTable("CONTEXT", "PROFILE", "REGION", "STATUS")
	table.StateColumn = 3
	table.Noun = "contexts"
	for _, name := range sortedNames(contexts) {
		ctx := contexts[name]
		status := ""
		if name == current {
			status = "ACTIVE"
		}
		table.Append(name, ctx.Profile, ctx.Region, status)
	}
	table.Render(out)

	return nil
}
