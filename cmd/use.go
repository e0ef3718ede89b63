package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/config"
	"github.com/vietdv277/cirrus/internal/logger"
	"github.com/vietdv277/cirrus/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [context-name]",
	Short: "Set the active context",
	Long: `Set the active context for subsequent commands.

A context is a named AWS profile/region pair. Once set, every command
uses it unless --profile or --region is given. Without a name, an
interactive selector is shown.

Examples:
  crs use prod              # Switch to the "prod" context
  crs use                   # Pick a context interactively`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

var useAddCmd = &cobra.Command{
	Use:   "add <context-name>",
	Short: "Add a new context",
	Long: `Add or update a context configuration.

Examples:
  crs use add prod --profile prod-sso --region eu-west-1
  crs use add sandbox --region us-east-1`,
	Args: cobra.ExactArgs(1),
	RunE: runUseAdd,
}

var useDeleteCmd = &cobra.Command{
	Use:   "delete <context-name>",
	Short: "Delete a context",
	Long: `Delete a context configuration.

Examples:
  crs use delete old-env`,
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"rm", "remove"},
	RunE:    runUseDelete,
}

var (
	// Flags for use add
	useAddProfile string
	useAddRegion  string
)

func init() {
	rootCmd.AddCommand(useCmd)
	useCmd.AddCommand(useAddCmd)
	useCmd.AddCommand(useDeleteCmd)

	// Flags for use add
	useAddCmd.Flags().StringVar(&useAddProfile, "profile", "", "AWS profile name")
	useAddCmd.Flags().StringVar(&useAddRegion, "region", "", "AWS region")
}

func runUse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var contextName string
	if len(args) == 1 {
		contextName = args[0]
	} else {
		selected, err := selectContext()
		if err != nil {
			if errors.Is(err, ui.ErrSelectionCancelled) {
				return nil
			}
			return err
		}
		contextName = selected
	}

	if err := config.SetCurrentContext(contextName); err != nil {
		if !errors.Is(err, config.ErrContextNotFound) {
			return err
		}

		contexts, current, listErr := config.ListContexts()
		if listErr != nil {
			return err
		}

		fmt.Fprintf(out, "Context %q not found.\n\n", contextName)
		if len(contexts) == 0 {
			fmt.Fprintln(out, "No contexts configured. Add one with:")
			fmt.Fprintln(out, "  crs use add prod --profile <profile> --region <region>")
		} else {
			fmt.Fprintln(out, "Available contexts:")
			for _, name := range sortedNames(contexts) {
				marker := "  "
				if name == current {
					marker = "* "
				}
				fmt.Fprintf(out, "  %s%s\n", marker, name)
			}
		}
		return err
	}

	ctx, err := config.GetContext(contextName)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Switched to context: %s\n", contextName)
	if ctx.Profile != "" {
		fmt.Fprintf(out, "  Profile:  %s\n", ctx.Profile)
	}
	if ctx.Region != "" {
		fmt.Fprintf(out, "  Region:   %s\n", ctx.Region)
	}

	return nil
}

func selectContext() (string, error) {
	contexts, current, err := config.ListContexts()
	if err != nil {
		return "", err
	}
	if len(contexts) == 0 {
		return "", fmt.Errorf("no contexts configured, add one with 'crs use add'")
	}
	if !ui.IsTerminal(os.Stdin) {
		return "", fmt.Errorf("a context name is required when not running in a terminal")
	}

	items := make([]ui.Item, 0, len(contexts))
	for _, name := range sortedNames(contexts) {
		ctx := contexts[name]
		state := ""
		if name == current {
			state = "ACTIVE"
		}
		items = append(items, ui.Item{
			ID:    name,
			Name:  ctx.Profile,
			State: state,
			Details: []ui.Detail{
				{Label: "Profile", Value: ctx.Profile},
				{Label: "Region", Value: ctx.Region},
			},
		})
	}

	selected, err := ui.Select("Select context", items)
	if err != nil {
		return "", err
	}
	return selected.ID, nil
}

func runUseAdd(cmd *cobra.Command, args []string) error {
	contextName := args[0]

	if useAddProfile == "" && useAddRegion == "" {
		return fmt.Errorf("at least one of --profile or --region is required")
	}

	if useAddProfile != "" && !aws.ValidateProfile(useAddProfile) {
		logger.Default().Warn("profile not found in the shared AWS files", "profile", useAddProfile)
	}

	ctx := &config.Context{
		Profile: useAddProfile,
		Region:  useAddRegion,
	}
	if err := config.AddContext(contextName, ctx); err != nil {
		return fmt.Errorf("failed to add context: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Context added: %s\n", contextName)
	fmt.Fprintln(out, "\nTo use this context:")
	fmt.Fprintf(out, "  crs use %s\n", contextName)

	return nil
}

func runUseDelete(cmd *cobra.Command, args []string) error {
	contextName := args[0]

	if err := config.DeleteContext(contextName); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Context deleted: %s\n", contextName)
	return nil
}

func sortedNames(contexts map[string]*config.Context) []string {
	names := make([]string, 0, len(contexts))
	for name := range contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
