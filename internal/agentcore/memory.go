package agentcore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcore/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// EventScope locates the short-term memory of one actor session.
type EventScope struct {
	MemoryID  string
	ActorID   string
	SessionID string
}

func (s *EventScope) required() []cmdlet.Param {
	return []cmdlet.Param{
		cmdlet.Require("MemoryId", s.MemoryID == ""),
		cmdlet.Require("ActorId", s.ActorID == ""),
		cmdlet.Require("SessionId", s.SessionID == ""),
	}
}

// Message is one conversational turn stored in an event.
type Message struct {
	Role string
	Text string
}

// ParseMessage parses "role:text", e.g. "user:hello".
func ParseMessage(s string) (Message, error) {
	role, text, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(role) == "" {
		return Message{}, fmt.Errorf("%w: message %q is not in role:text form", cmdlet.ErrInvalidArgument, s)
	}
	return Message{Role: strings.TrimSpace(role), Text: text}, nil
}

// BranchOptions are the leaves of the Branch an event is written to.
type BranchOptions struct {
	Name        string
	RootEventID string
}

func (o *BranchOptions) build() *actypes.Branch {
	b := &actypes.Branch{}
	set := false

	if o.Name != "" {
		b.Name = aws.String(o.Name)
		set = true
	}
	if o.RootEventID != "" {
		b.RootEventId = aws.String(o.RootEventID)
		set = true
	}

	return cmdlet.Populated(b, set)
}

// CreateEventOptions are the parameters of agentcore:CreateEvent.
type CreateEventOptions struct {
	EventScope
	Timestamp   time.Time
	Messages    []Message
	Branch      BranchOptions
	ClientToken string
}

// BuildCreateEvent builds the CreateEvent request.
func BuildCreateEvent(o *CreateEventOptions) (*bedrockagentcore.CreateEventInput, error) {
	payload := make([]actypes.PayloadType, 0, len(o.Messages))
	for _, m := range o.Messages {
		role, err := cmdlet.Enum("Role", m.Role, actypes.Role("").Values())
		if err != nil {
			return nil, err
		}
		payload = append(payload, &actypes.PayloadTypeMemberConversational{
			Value: actypes.Conversational{
				Content: &actypes.ContentMemberText{Value: m.Text},
				Role:    role,
			},
		})
	}

	in := &bedrockagentcore.CreateEventInput{
		MemoryId:    aws.String(o.MemoryID),
		ActorId:     aws.String(o.ActorID),
		SessionId:   cmdlet.String(o.SessionID),
		Payload:     payload,
		Branch:      o.Branch.build(),
		ClientToken: cmdlet.String(o.ClientToken),
	}
	if !o.Timestamp.IsZero() {
		in.EventTimestamp = aws.Time(o.Timestamp)
	}
	return in, nil
}

// CreateEvent binds agentcore:CreateEvent to client.
func CreateEvent(client awsclient.AgentCoreAPI) *cmdlet.Operation[CreateEventOptions, bedrockagentcore.CreateEventInput, bedrockagentcore.CreateEventOutput] {
	return &cmdlet.Operation[CreateEventOptions, bedrockagentcore.CreateEventInput, bedrockagentcore.CreateEventOutput]{
		Name:     OpCreateEvent,
		Mutating: true,
		Target:   func(o *CreateEventOptions) string { return o.MemoryID },
		Required: func(o *CreateEventOptions) []cmdlet.Param {
			return append(o.required(), cmdlet.Require("Payload", len(o.Messages) == 0))
		},
		Build: BuildCreateEvent,
		Call: func(ctx context.Context, in *bedrockagentcore.CreateEventInput) (*bedrockagentcore.CreateEventOutput, error) {
			return client.CreateEvent(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.CreateEventOutput) any{
			"Event": func(r *bedrockagentcore.CreateEventOutput) any { return r.Event },
		},
		DefaultSelect: "Event",
	}
}

// EventOptions identify one event.
type EventOptions struct {
	EventScope
	EventID string
}

func requireEvent(o *EventOptions) []cmdlet.Param {
	return append(o.required(), cmdlet.Require("EventId", o.EventID == ""))
}

// GetEvent binds agentcore:GetEvent to client.
func GetEvent(client awsclient.AgentCoreAPI) *cmdlet.Operation[EventOptions, bedrockagentcore.GetEventInput, bedrockagentcore.GetEventOutput] {
	return &cmdlet.Operation[EventOptions, bedrockagentcore.GetEventInput, bedrockagentcore.GetEventOutput]{
		Name:     OpGetEvent,
		Required: requireEvent,
		Build: func(o *EventOptions) (*bedrockagentcore.GetEventInput, error) {
			return &bedrockagentcore.GetEventInput{
				MemoryId:  aws.String(o.MemoryID),
				ActorId:   aws.String(o.ActorID),
				SessionId: aws.String(o.SessionID),
				EventId:   aws.String(o.EventID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetEventInput) (*bedrockagentcore.GetEventOutput, error) {
			return client.GetEvent(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetEventOutput) any{
			"Event": func(r *bedrockagentcore.GetEventOutput) any { return r.Event },
		},
		DefaultSelect: "Event",
	}
}

// DeleteEvent binds agentcore:DeleteEvent to client.
func DeleteEvent(client awsclient.AgentCoreAPI) *cmdlet.Operation[EventOptions, bedrockagentcore.DeleteEventInput, bedrockagentcore.DeleteEventOutput] {
	return &cmdlet.Operation[EventOptions, bedrockagentcore.DeleteEventInput, bedrockagentcore.DeleteEventOutput]{
		Name:     OpDeleteEvent,
		Mutating: true,
		Target:   func(o *EventOptions) string { return o.EventID },
		Required: requireEvent,
		Build: func(o *EventOptions) (*bedrockagentcore.DeleteEventInput, error) {
			return &bedrockagentcore.DeleteEventInput{
				MemoryId:  aws.String(o.MemoryID),
				ActorId:   aws.String(o.ActorID),
				SessionId: aws.String(o.SessionID),
				EventId:   aws.String(o.EventID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.DeleteEventInput) (*bedrockagentcore.DeleteEventOutput, error) {
			return client.DeleteEvent(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.DeleteEventOutput) any{
			"EventId": func(r *bedrockagentcore.DeleteEventOutput) any { return aws.ToString(r.EventId) },
		},
		Params: map[string]func(*EventOptions) any{
			"EventId": func(o *EventOptions) any { return o.EventID },
		},
		DefaultSelect: "EventId",
		PassThru:      "EventId",
	}
}

// BranchFilterOptions are the leaves of the ListEvents branch filter.
type BranchFilterOptions struct {
	Name                  string
	IncludeParentBranches *bool
}

func (o *BranchFilterOptions) build() *actypes.FilterInput {
	b := &actypes.BranchFilter{}
	set := false

	if o.Name != "" {
		b.Name = aws.String(o.Name)
		set = true
	}
	if o.IncludeParentBranches != nil {
		b.IncludeParentBranches = o.IncludeParentBranches
		set = true
	}

	if branch := cmdlet.Populated(b, set); branch != nil {
		return &actypes.FilterInput{Branch: branch}
	}
	return nil
}

// ListEventsOptions are the parameters of agentcore:ListEvents.
type ListEventsOptions struct {
	EventScope
	Branch          BranchFilterOptions
	IncludePayloads *bool
}

// BuildListEvents builds the ListEvents request.
func BuildListEvents(o *ListEventsOptions) (*bedrockagentcore.ListEventsInput, error) {
	return &bedrockagentcore.ListEventsInput{
		MemoryId:        aws.String(o.MemoryID),
		ActorId:         aws.String(o.ActorID),
		SessionId:       aws.String(o.SessionID),
		Filter:          o.Branch.build(),
		IncludePayloads: o.IncludePayloads,
	}, nil
}

// ListEvents binds agentcore:ListEvents to client.
func ListEvents(client awsclient.AgentCoreAPI) *cmdlet.Operation[ListEventsOptions, bedrockagentcore.ListEventsInput, bedrockagentcore.ListEventsOutput] {
	return &cmdlet.Operation[ListEventsOptions, bedrockagentcore.ListEventsInput, bedrockagentcore.ListEventsOutput]{
		Name:     OpListEvents,
		Required: func(o *ListEventsOptions) []cmdlet.Param { return o.required() },
		Build:    BuildListEvents,
		Call: func(ctx context.Context, in *bedrockagentcore.ListEventsInput) (*bedrockagentcore.ListEventsOutput, error) {
			return client.ListEvents(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListEventsOutput) any{
			"Events":    func(r *bedrockagentcore.ListEventsOutput) any { return r.Events },
			"NextToken": func(r *bedrockagentcore.ListEventsOutput) any { return r.NextToken },
		},
		DefaultSelect: "Events",
		Paging: &cmdlet.Paging[bedrockagentcore.ListEventsInput, bedrockagentcore.ListEventsOutput]{
			Token:    func(r *bedrockagentcore.ListEventsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListEventsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListEventsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// MemoryOptions identify a memory, optionally narrowed to one actor.
type MemoryOptions struct {
	MemoryID string
	ActorID  string
}

// ListActors binds agentcore:ListActors to client.
func ListActors(client awsclient.AgentCoreAPI) *cmdlet.Operation[MemoryOptions, bedrockagentcore.ListActorsInput, bedrockagentcore.ListActorsOutput] {
	return &cmdlet.Operation[MemoryOptions, bedrockagentcore.ListActorsInput, bedrockagentcore.ListActorsOutput]{
		Name: OpListActors,
		Required: func(o *MemoryOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("MemoryId", o.MemoryID == "")}
		},
		Build: func(o *MemoryOptions) (*bedrockagentcore.ListActorsInput, error) {
			return &bedrockagentcore.ListActorsInput{MemoryId: aws.String(o.MemoryID)}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.ListActorsInput) (*bedrockagentcore.ListActorsOutput, error) {
			return client.ListActors(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListActorsOutput) any{
			"ActorSummaries": func(r *bedrockagentcore.ListActorsOutput) any { return r.ActorSummaries },
			"NextToken":      func(r *bedrockagentcore.ListActorsOutput) any { return r.NextToken },
		},
		DefaultSelect: "ActorSummaries",
		Paging: &cmdlet.Paging[bedrockagentcore.ListActorsInput, bedrockagentcore.ListActorsOutput]{
			Token:    func(r *bedrockagentcore.ListActorsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListActorsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListActorsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// ListSessions binds agentcore:ListSessions to client.
func ListSessions(client awsclient.AgentCoreAPI) *cmdlet.Operation[MemoryOptions, bedrockagentcore.ListSessionsInput, bedrockagentcore.ListSessionsOutput] {
	return &cmdlet.Operation[MemoryOptions, bedrockagentcore.ListSessionsInput, bedrockagentcore.ListSessionsOutput]{
		Name: OpListSessions,
		Required: func(o *MemoryOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("MemoryId", o.MemoryID == ""),
				cmdlet.Require("ActorId", o.ActorID == ""),
			}
		},
		Build: func(o *MemoryOptions) (*bedrockagentcore.ListSessionsInput, error) {
			return &bedrockagentcore.ListSessionsInput{MemoryId: aws.String(o.MemoryID), ActorId: aws.String(o.ActorID)}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.ListSessionsInput) (*bedrockagentcore.ListSessionsOutput, error) {
			return client.ListSessions(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListSessionsOutput) any{
			"SessionSummaries": func(r *bedrockagentcore.ListSessionsOutput) any { return r.SessionSummaries },
			"NextToken":        func(r *bedrockagentcore.ListSessionsOutput) any { return r.NextToken },
		},
		DefaultSelect: "SessionSummaries",
		Paging: &cmdlet.Paging[bedrockagentcore.ListSessionsInput, bedrockagentcore.ListSessionsOutput]{
			Token:    func(r *bedrockagentcore.ListSessionsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListSessionsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListSessionsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}
