package agentcore

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	ac "github.com/vietdv277/cirrus/internal/agentcore"
	"github.com/vietdv277/cirrus/internal/cli"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Work with AgentCore memory",
	Long: `Short-term memory events and long-term memory records.

Examples:
  crs agentcore memory event create --memory-id mem-1 --actor-id u-1 --session-id s-1 \
      --message user:"What is my plan?" --message assistant:"The premium plan."
  crs agentcore memory event list --memory-id mem-1 --actor-id u-1 --session-id s-1
  crs agentcore memory record retrieve --memory-id mem-1 --namespace /users/u-1 --query "plan"`,
}

var memoryEventCmd = &cobra.Command{
	Use:   "event",
	Short: "Short-term memory events",
}

var memoryActorCmd = &cobra.Command{
	Use:   "actor",
	Short: "Actors of a memory",
}

var memorySessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Sessions of an actor",
}

var memoryRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Long-term memory records",
}

var eventCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write an event",
	Long: `Write an event holding one or more conversational messages.

Messages are given as role:text, e.g. --message user:hello. The event timestamp
defaults to now.`,
	Args: cobra.NoArgs,
	RunE: runEventCreate,
}

var eventGetCmd = &cobra.Command{
	Use:   "get <event-id>",
	Short: "Get an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventGet,
}

var eventDeleteCmd = &cobra.Command{
	Use:     "delete <event-id>",
	Aliases: []string{"rm"},
	Short:   "Delete an event",
	Args:    cobra.ExactArgs(1),
	RunE:    runEventDelete,
}

var eventListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the events of a session",
	Args:    cobra.NoArgs,
	RunE:    runEventList,
}

var actorListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List actors",
	Args:    cobra.NoArgs,
	RunE:    runActorList,
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the sessions of an actor",
	Args:    cobra.NoArgs,
	RunE:    runSessionList,
}

var recordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List memory records in a namespace",
	Args:    cobra.NoArgs,
	RunE:    runRecordList,
}

var recordRetrieveCmd = &cobra.Command{
	Use:   "retrieve",
	Short: "Search memory records",
	Args:  cobra.NoArgs,
	RunE:  runRecordRetrieve,
}

var recordGetCmd = &cobra.Command{
	Use:   "get <memory-record-id>",
	Short: "Get a memory record",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordGet,
}

var recordDeleteCmd = &cobra.Command{
	Use:     "delete <memory-record-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a memory record",
	Args:    cobra.ExactArgs(1),
	RunE:    runRecordDelete,
}

var (
	memoryID  string
	actorID   string
	sessionID string

	eventMessages    []string
	eventTimestamp   string
	eventBranch      string
	eventRootEventID string
	eventClientToken string

	eventIncludeParents  bool
	eventIncludePayloads bool

	recordNamespace  string
	recordStrategyID string
	recordQuery      string
	recordTopK       int32

	eventCreateF    cli.Flags
	eventGetF       cli.Flags
	eventDeleteF    cli.Flags
	eventListF      cli.Flags
	actorListF      cli.Flags
	sessionListF    cli.Flags
	recordListF     cli.Flags
	recordRetrieveF cli.Flags
	recordGetF      cli.Flags
	recordDeleteF   cli.Flags
)

func init() {
	memoryCmd.AddCommand(memoryEventCmd)
	memoryCmd.AddCommand(memoryActorCmd)
	memoryCmd.AddCommand(memorySessionCmd)
	memoryCmd.AddCommand(memoryRecordCmd)

	memoryEventCmd.AddCommand(eventCreateCmd)
	memoryEventCmd.AddCommand(eventGetCmd)
	memoryEventCmd.AddCommand(eventDeleteCmd)
	memoryEventCmd.AddCommand(eventListCmd)
	memoryActorCmd.AddCommand(actorListCmd)
	memorySessionCmd.AddCommand(sessionListCmd)
	memoryRecordCmd.AddCommand(recordListCmd)
	memoryRecordCmd.AddCommand(recordRetrieveCmd)
	memoryRecordCmd.AddCommand(recordGetCmd)
	memoryRecordCmd.AddCommand(recordDeleteCmd)

	memoryCmd.PersistentFlags().StringVar(&memoryID, "memory-id", "", "Memory id")
	for _, c := range []*cobra.Command{memoryEventCmd, memorySessionCmd} {
		c.PersistentFlags().StringVar(&actorID, "actor-id", "", "Actor id")
	}
	memoryEventCmd.PersistentFlags().StringVar(&sessionID, "session-id", "", "Session id")

	create := eventCreateCmd.Flags()
	create.StringArrayVar(&eventMessages, "message", nil, "Conversational message as role:text (repeatable)")
	create.StringVar(&eventTimestamp, "timestamp", "", "Event time in RFC 3339 (default now)")
	create.StringVar(&eventBranch, "branch", "", "Branch name")
	create.StringVar(&eventRootEventID, "root-event-id", "", "Event the branch starts from")
	create.StringVar(&eventClientToken, "client-token", "", "Idempotency token")
	eventCreateF.Register(eventCreateCmd, true, false)
	eventCreateF.Require("Payload", "message")

	eventGetF.Register(eventGetCmd, false, false)
	eventDeleteF.Register(eventDeleteCmd, true, false)

	list := eventListCmd.Flags()
	list.StringVar(&eventBranch, "branch", "", "Only events of this branch")
	list.BoolVar(&eventIncludeParents, "include-parent-branches", false, "Include events of parent branches")
	list.BoolVar(&eventIncludePayloads, "include-payloads", true, "Include event payloads")
	eventListF.Register(eventListCmd, false, true)
	for _, f := range []*cli.Flags{&eventCreateF, &eventGetF, &eventDeleteF, &eventListF} {
		requireScope(f, "memory-id", "actor-id", "session-id")
	}

	actorListF.Register(actorListCmd, false, true)
	requireScope(&actorListF, "memory-id")
	sessionListF.Register(sessionListCmd, false, true)
	requireScope(&sessionListF, "memory-id", "actor-id")

	for _, c := range []*cobra.Command{recordListCmd, recordRetrieveCmd} {
		c.Flags().StringVar(&recordNamespace, "namespace", "", "Record namespace, e.g. /users/u-1")
		c.Flags().StringVar(&recordStrategyID, "strategy-id", "", "Memory strategy id")
	}
	recordRetrieveCmd.Flags().StringVar(&recordQuery, "query", "", "Semantic search query")
	recordRetrieveCmd.Flags().Int32Var(&recordTopK, "top-k", 0, "Maximum number of top-scoring records")
	recordListF.Register(recordListCmd, false, true)
	recordRetrieveF.Register(recordRetrieveCmd, false, true)
	recordGetF.Register(recordGetCmd, false, false)
	recordDeleteF.Register(recordDeleteCmd, true, false)
	for _, f := range []*cli.Flags{&recordListF, &recordRetrieveF, &recordGetF, &recordDeleteF} {
		requireScope(f, "memory-id")
	}
	recordListF.Require("Namespace", "namespace")
	recordRetrieveF.Require("Namespace", "namespace")
	recordRetrieveF.Require("SearchQuery", "query")
}

var scopeParams = map[string]string{
	"memory-id":  "MemoryId",
	"actor-id":   "ActorId",
	"session-id": "SessionId",
}

// requireScope marks the memory scope flags as required on f.
func requireScope(f *cli.Flags, flags ...string) {
	for _, name := range flags {
		f.Require(scopeParams[name], name)
	}
}

func eventScope() ac.EventScope {
	return ac.EventScope{MemoryID: memoryID, ActorID: actorID, SessionID: sessionID}
}

func runEventCreate(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	messages := make([]ac.Message, 0, len(eventMessages))
	for _, m := range eventMessages {
		msg, err := ac.ParseMessage(m)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	timestamp := time.Now()
	if eventTimestamp != "" {
		if timestamp, err = time.Parse(time.RFC3339, eventTimestamp); err != nil {
			return fmt.Errorf("%w: --timestamp: %v", cmdlet.ErrInvalidArgument, err)
		}
	}

	opts := &ac.CreateEventOptions{
		EventScope:  eventScope(),
		Timestamp:   timestamp,
		Messages:    messages,
		Branch:      ac.BranchOptions{Name: eventBranch, RootEventID: eventRootEventID},
		ClientToken: eventClientToken,
	}
	return cli.Run(cmd.Context(), s, ac.CreateEvent(client), opts, &eventCreateF)
}

func runEventGet(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.EventOptions{EventScope: eventScope(), EventID: args[0]}
	return cli.Run(cmd.Context(), s, ac.GetEvent(client), opts, &eventGetF)
}

func runEventDelete(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.EventOptions{EventScope: eventScope(), EventID: args[0]}
	return cli.Run(cmd.Context(), s, ac.DeleteEvent(client), opts, &eventDeleteF)
}

func runEventList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := &ac.ListEventsOptions{
		EventScope: eventScope(),
		Branch: ac.BranchFilterOptions{
			Name:                  eventBranch,
			IncludeParentBranches: optionalBool(cmd, "include-parent-branches", eventIncludeParents),
		},
		IncludePayloads: optionalBool(cmd, "include-payloads", eventIncludePayloads),
	}
	return cli.Run(cmd.Context(), s, ac.ListEvents(client), opts, &eventListF)
}

func runActorList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	return cli.Run(cmd.Context(), s, ac.ListActors(client), &ac.MemoryOptions{MemoryID: memoryID}, &actorListF)
}

func runSessionList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.MemoryOptions{MemoryID: memoryID, ActorID: actorID}
	return cli.Run(cmd.Context(), s, ac.ListSessions(client), opts, &sessionListF)
}

func runRecordList(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.ListRecordsOptions{MemoryID: memoryID, Namespace: recordNamespace, MemoryStrategyID: recordStrategyID}
	return cli.Run(cmd.Context(), s, ac.ListMemoryRecords(client), opts, &recordListF)
}

func runRecordRetrieve(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}

	opts := &ac.RetrieveRecordsOptions{
		MemoryID:  memoryID,
		Namespace: recordNamespace,
		Search: ac.SearchOptions{
			Query:            recordQuery,
			MemoryStrategyID: recordStrategyID,
			TopK:             optionalInt32(cmd, "top-k", recordTopK),
		},
	}
	return cli.Run(cmd.Context(), s, ac.RetrieveMemoryRecords(client), opts, &recordRetrieveF)
}

func runRecordGet(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.RecordOptions{MemoryID: memoryID, MemoryRecordID: args[0]}
	return cli.Run(cmd.Context(), s, ac.GetMemoryRecord(client), opts, &recordGetF)
}

func runRecordDelete(cmd *cobra.Command, args []string) error {
	s, client, err := open(cmd)
	if err != nil {
		return err
	}
	opts := &ac.RecordOptions{MemoryID: memoryID, MemoryRecordID: args[0]}
	return cli.Run(cmd.Context(), s, ac.DeleteMemoryRecord(client), opts, &recordDeleteF)
}
