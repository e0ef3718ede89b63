package transfer

import (
	"github.com/spf13/cobra"

	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	tf "github.com/vietdv277/cirrus/internal/transfer"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage the tags of a server, user, workflow or connector",
	Long: `Manage resource tags by ARN.

Examples:
  crs transfer tag list arn:aws:transfer:eu-west-1:123456789012:server/s-1234
  crs transfer tag add <arn> env=prod team=data
  crs transfer tag remove <arn> team`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <arn> <key=value>...",
	Short: "Add or overwrite tags",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTagAdd,
}

var tagRemoveCmd = &cobra.Command{
	Use:     "remove <arn> <key>...",
	Aliases: []string{"rm"},
	Short:   "Remove tags",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runTagRemove,
}

var tagListCmd = &cobra.Command{
	Use:     "list <arn>",
	Aliases: []string{"ls"},
	Short:   "List tags",
	Args:    cobra.ExactArgs(1),
	RunE:    runTagList,
}

var (
	tagAddFlags    cli.Flags
	tagRemoveFlags cli.Flags
	tagListFlags   cli.Flags
)

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagListCmd)

	tagAddFlags.Register(tagAddCmd, true, false)
	tagRemoveFlags.Register(tagRemoveCmd, true, false)
	tagListFlags.Register(tagListCmd, false, true)
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	tags, err := cmdlet.ParseKeyValues(args[1:])
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, tf.TagResource(client), &tf.TagOptions{Arn: args[0], Tags: tags}, &tagAddFlags)
}

func runTagRemove(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, tf.UntagResource(client), &tf.UntagOptions{Arn: args[0], TagKeys: args[1:]}, &tagRemoveFlags)
}

func runTagList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, tf.ListTagsForResource(client), &tf.ArnOptions{Arn: args[0]}, &tagListFlags)
}
