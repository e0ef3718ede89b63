package transfer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
)

// TagOptions are the parameters of transfer:TagResource.
type TagOptions struct {
	Arn  string
	Tags map[string]string
}

// UntagOptions are the parameters of transfer:UntagResource.
type UntagOptions struct {
	Arn     string
	TagKeys []string
}

// ArnOptions identify a taggable resource.
type ArnOptions struct {
	Arn string
}

// TagResource binds transfer:TagResource to client.
func TagResource(client awsclient.TransferAPI) *cmdlet.Operation[TagOptions, awstransfer.TagResourceInput, awstransfer.TagResourceOutput] {
	return &cmdlet.Operation[TagOptions, awstransfer.TagResourceInput, awstransfer.TagResourceOutput]{
		Name:     OpTagResource,
		Mutating: true,
		Target:   func(o *TagOptions) string { return o.Arn },
		Required: func(o *TagOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("Arn", o.Arn == ""),
				cmdlet.Require("Tags", len(o.Tags) == 0),
			}
		},
		Build: func(o *TagOptions) (*awstransfer.TagResourceInput, error) {
			return &awstransfer.TagResourceInput{Arn: aws.String(o.Arn), Tags: buildTags(o.Tags)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.TagResourceInput) (*awstransfer.TagResourceOutput, error) {
			return client.TagResource(ctx, in)
		},
		Params:   map[string]func(*TagOptions) any{"Arn": func(o *TagOptions) any { return o.Arn }},
		PassThru: "Arn",
	}
}

// UntagResource binds transfer:UntagResource to client.
func UntagResource(client awsclient.TransferAPI) *cmdlet.Operation[UntagOptions, awstransfer.UntagResourceInput, awstransfer.UntagResourceOutput] {
	return &cmdlet.Operation[UntagOptions, awstransfer.UntagResourceInput, awstransfer.UntagResourceOutput]{
		Name:     OpUntagResource,
		Mutating: true,
		Target:   func(o *UntagOptions) string { return o.Arn },
		Required: func(o *UntagOptions) []cmdlet.Param {
			return []cmdlet.Param{
				cmdlet.Require("Arn", o.Arn == ""),
				cmdlet.Require("TagKeys", len(o.TagKeys) == 0),
			}
		},
		Build: func(o *UntagOptions) (*awstransfer.UntagResourceInput, error) {
			return &awstransfer.UntagResourceInput{Arn: aws.String(o.Arn), TagKeys: o.TagKeys}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.UntagResourceInput) (*awstransfer.UntagResourceOutput, error) {
			return client.UntagResource(ctx, in)
		},
		Params:   map[string]func(*UntagOptions) any{"Arn": func(o *UntagOptions) any { return o.Arn }},
		PassThru: "Arn",
	}
}

// ListTagsForResource binds transfer:ListTagsForResource to client.
func ListTagsForResource(client awsclient.TransferAPI) *cmdlet.Operation[ArnOptions, awstransfer.ListTagsForResourceInput, awstransfer.ListTagsForResourceOutput] {
	return &cmdlet.Operation[ArnOptions, awstransfer.ListTagsForResourceInput, awstransfer.ListTagsForResourceOutput]{
		Name: OpListTagsForResource,
		Required: func(o *ArnOptions) []cmdlet.Param {
			return []cmdlet.Param{cmdlet.Require("Arn", o.Arn == "")}
		},
		Build: func(o *ArnOptions) (*awstransfer.ListTagsForResourceInput, error) {
			return &awstransfer.ListTagsForResourceInput{Arn: aws.String(o.Arn)}, nil
		},
		Call: func(ctx context.Context, in *awstransfer.ListTagsForResourceInput) (*awstransfer.ListTagsForResourceOutput, error) {
			return client.ListTagsForResource(ctx, in)
		},
		Fields: map[string]func(*awstransfer.ListTagsForResourceOutput) any{
			"Arn":       func(r *awstransfer.ListTagsForResourceOutput) any { return aws.ToString(r.Arn) },
			"Tags":      func(r *awstransfer.ListTagsForResourceOutput) any { return r.Tags },
			"NextToken": func(r *awstransfer.ListTagsForResourceOutput) any { return r.NextToken },
		},
		Params:        map[string]func(*ArnOptions) any{"Arn": func(o *ArnOptions) any { return o.Arn }},
		DefaultSelect: "Tags",
		Paging: &cmdlet.Paging[awstransfer.ListTagsForResourceInput, awstransfer.ListTagsForResourceOutput]{
			Token:    func(r *awstransfer.ListTagsForResourceOutput) *string { return r.NextToken },
			SetToken: func(in *awstransfer.ListTagsForResourceInput, t *string) { in.NextToken = t },
			SetLimit: func(in *awstransfer.ListTagsForResourceInput, n int32) { in.MaxResults = aws.Int32(n) },
		},
	}
}
