package agentcore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentcore"
	actypes "github.com/aws/aws-sdk-go-v2/service/bedrockagentcore/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// ListRecordsOptions are the parameters of agentcore:ListMemoryRecords.
type ListRecordsOptions struct {
	MemoryID         string
	Namespace        string
	MemoryStrategyID string
}

// ListMemoryRecords binds agentcore:ListMemoryRecords to client.
func ListMemoryRecords(client awsclient.AgentCoreAPI) *cmdlet.Operation[ListRecordsOptions, bedrockagentcore.ListMemoryRecordsInput, bedrockagentcore.ListMemoryRecordsOutput] {
	return &cmdlet.Operation[ListRecordsOptions, bedrockagentcore.ListMemoryRecordsInput, bedrockagentcore.ListMemoryRecordsOutput]{
		Name: OpListMemoryRecords,
		Required: func(o *ListRecordsOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("MemoryId", o.MemoryID == ""),
				cmdlet.Require("Namespace", o.Namespace == ""),
			}
		},
		Build: func(o *ListRecordsOptions) (*bedrockagentcore.ListMemoryRecordsInput, error) {
			return &bedrockagentcore.ListMemoryRecordsInput{
				MemoryId:         aws.String(o.MemoryID),
				Namespace:        aws.String(o.Namespace),
				MemoryStrategyId: cmdlet.String(o.MemoryStrategyID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.ListMemoryRecordsInput) (*bedrockagentcore.ListMemoryRecordsOutput, error) {
			return client.ListMemoryRecords(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.ListMemoryRecordsOutput) any{
			"MemoryRecordSummaries": func(r *bedrockagentcore.ListMemoryRecordsOutput) any { return r.MemoryRecordSummaries },
			"NextToken":             func(r *bedrockagentcore.ListMemoryRecordsOutput) any { return r.NextToken },
		},
		DefaultSelect: "MemoryRecordSummaries",
		Paging: &cmdlet.Paging[bedrockagentcore.ListMemoryRecordsInput, bedrockagentcore.ListMemoryRecordsOutput]{
			Token:    func(r *bedrockagentcore.ListMemoryRecordsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.ListMemoryRecordsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.ListMemoryRecordsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// SearchOptions are the leaves of SearchCriteria.
type SearchOptions struct {
	Query            string
	MemoryStrategyID string
	TopK             *int32
}

func (o *SearchOptions) build() *actypes.SearchCriteria {
	c := &actypes.SearchCriteria{}
	set := false

	if o.Query != "" {
		c.SearchQuery = aws.String(o.Query)
		set = true
	}
	if o.MemoryStrategyID != "" {
		c.MemoryStrategyId = aws.String(o.MemoryStrategyID)
		set = true
	}
	if o.TopK != nil {
		c.TopK = o.TopK
		set = true
	}

	return cmdlet.Populated(c, set)
}

// RetrieveRecordsOptions are the parameters of agentcore:RetrieveMemoryRecords.
type RetrieveRecordsOptions struct {
	MemoryID  string
	Namespace string
	Search    SearchOptions
}

// BuildRetrieveMemoryRecords builds the RetrieveMemoryRecords request.
func BuildRetrieveMemoryRecords(o *RetrieveRecordsOptions) (*bedrockagentcore.RetrieveMemoryRecordsInput, error) {
	return &bedrockagentcore.RetrieveMemoryRecordsInput{
		MemoryId:       aws.String(o.MemoryID),
		Namespace:      aws.String(o.Namespace),
		SearchCriteria: o.Search.build(),
	}, nil
}

// RetrieveMemoryRecords binds agentcore:RetrieveMemoryRecords to client.
func RetrieveMemoryRecords(client awsclient.AgentCoreAPI) *cmdlet.Operation[RetrieveRecordsOptions, bedrockagentcore.RetrieveMemoryRecordsInput, bedrockagentcore.RetrieveMemoryRecordsOutput] {
	return &cmdlet.Operation[RetrieveRecordsOptions, bedrockagentcore.RetrieveMemoryRecordsInput, bedrockagentcore.RetrieveMemoryRecordsOutput]{
		Name: OpRetrieveMemoryRecords,
		Required: func(o *RetrieveRecordsOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("MemoryId", o.MemoryID == ""),
				cmdlet.Require("Namespace", o.Namespace == ""),
				cmdlet.Require("SearchQuery", o.Search.Query == ""),
			}
		},
		Build: BuildRetrieveMemoryRecords,
		Call: func(ctx context.Context, in *bedrockagentcore.RetrieveMemoryRecordsInput) (*bedrockagentcore.RetrieveMemoryRecordsOutput, error) {
			return client.RetrieveMemoryRecords(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.RetrieveMemoryRecordsOutput) any{
			"MemoryRecordSummaries": func(r *bedrockagentcore.RetrieveMemoryRecordsOutput) any { return r.MemoryRecordSummaries },
			"NextToken":             func(r *bedrockagentcore.RetrieveMemoryRecordsOutput) any { return r.NextToken },
		},
		DefaultSelect: "MemoryRecordSummaries",
		Paging: &cmdlet.Paging[bedrockagentcore.RetrieveMemoryRecordsInput, bedrockagentcore.RetrieveMemoryRecordsOutput]{
			Token:    func(r *bedrockagentcore.RetrieveMemoryRecordsOutput) *string { return r.NextToken },
			SetToken: func(in *bedrockagentcore.RetrieveMemoryRecordsInput, t *string) { in.NextToken = t },
			SetLimit: func(in *bedrockagentcore.RetrieveMemoryRecordsInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}

// RecordOptions identify one memory record.
type RecordOptions struct {
	MemoryID       string
	MemoryRecordID string
}

func requireRecord(o *RecordOptions) []cmdlet.Param {
	return []cmdlet.Param{
		cmdlet.Require("MemoryId", o.MemoryID == ""),
		cmdlet.Require("MemoryRecordId", o.MemoryRecordID == ""),
	}
}

// GetMemoryRecord binds agentcore:GetMemoryRecord to client.
func GetMemoryRecord(client awsclient.AgentCoreAPI) *cmdlet.Operation[RecordOptions, bedrockagentcore.GetMemoryRecordInput, bedrockagentcore.GetMemoryRecordOutput] {
	return &cmdlet.Operation[RecordOptions, bedrockagentcore.GetMemoryRecordInput, bedrockagentcore.GetMemoryRecordOutput]{
		Name:     OpGetMemoryRecord,
		Required: requireRecord,
		Build: func(o *RecordOptions) (*bedrockagentcore.GetMemoryRecordInput, error) {
			return &bedrockagentcore.GetMemoryRecordInput{
				MemoryId:       aws.String(o.MemoryID),
				MemoryRecordId: aws.String(o.MemoryRecordID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.GetMemoryRecordInput) (*bedrockagentcore.GetMemoryRecordOutput, error) {
			return client.GetMemoryRecord(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.GetMemoryRecordOutput) any{
			"MemoryRecord": func(r *bedrockagentcore.GetMemoryRecordOutput) any { return r.MemoryRecord },
		},
		DefaultSelect: "MemoryRecord",
	}
}

// DeleteMemoryRecord binds agentcore:DeleteMemoryRecord to client.
func DeleteMemoryRecord(client awsclient.AgentCoreAPI) *cmdlet.Operation[RecordOptions, bedrockagentcore.DeleteMemoryRecordInput, bedrockagentcore.DeleteMemoryRecordOutput] {
	return &cmdlet.Operation[RecordOptions, bedrockagentcore.DeleteMemoryRecordInput, bedrockagentcore.DeleteMemoryRecordOutput]{
		Name:     OpDeleteMemoryRecord,
		Mutating: true,
		Target:   func(o *RecordOptions) string { return o.MemoryRecordID },
		Required: requireRecord,
		Build: func(o *RecordOptions) (*bedrockagentcore.DeleteMemoryRecordInput, error) {
			return &bedrockagentcore.DeleteMemoryRecordInput{
				MemoryId:       aws.String(o.MemoryID),
				MemoryRecordId: aws.String(o.MemoryRecordID),
			}, nil
		},
		Call: func(ctx context.Context, in *bedrockagentcore.DeleteMemoryRecordInput) (*bedrockagentcore.DeleteMemoryRecordOutput, error) {
			return client.DeleteMemoryRecord(ctx, in)
		},
		Fields: map[string]func(*bedrockagentcore.DeleteMemoryRecordOutput) any{
			"MemoryRecordId": func(r *bedrockagentcore.DeleteMemoryRecordOutput) any { return aws.ToString(r.MemoryRecordId) },
		},
		Params: map[string]func(*RecordOptions) any{
			"MemoryRecordId": func(o *RecordOptions) any { return o.MemoryRecordID },
		},
		DefaultSelect: "MemoryRecordId",
		PassThru:      "MemoryRecordId",
	}
}
