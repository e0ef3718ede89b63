package transfer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstransfer "github.com/aws/aws-sdk-go-v2/service/transfer"
	tftypes "github.com/aws/aws-sdk-go-v2/service/transfer/types"

	awsclient "github.com/vietdv277/cirrus/internal/aws"
	"github.com/vietdv277/cirrus/internal/cmdlet"
	"github.com/vietdv277/cirrus/internal/logger"
)

// EC2Source opens the EC2 client used to look up subnets.
type EC2Source func(context.Context) (awsclient.EC2API, error)

// ResolveEndpointVPC fills in the VPC id of a VPC-hosted endpoint from its subnets
// when only the subnets were given.
func ResolveEndpointVPC(ctx context.Context, ec2 EC2Source, d *tftypes.EndpointDetails) error {
	if d == nil || d.VpcId != nil || len(d.SubnetIds) == 0 || d.VpcEndpointId != nil {
		return nil
	}

	client, err := ec2(ctx)
	if err != nil {
		return err
	}
	vpcID, err := awsclient.SubnetVPC(ctx, client, d.SubnetIds)
	if err != nil {
		return fmt.Errorf("failed to infer VPC from subnets: %w", err)
	}

	logger.Default().Debug("inferred VPC from subnets", "vpc", vpcID, "subnets", d.SubnetIds)
	d.VpcId = aws.String(vpcID)
	return nil
}

// CreateServerResolvingVPC is CreateServer with the endpoint VPC looked up from
// its subnets. The lookup happens in Call, so it only runs once the request was
// validated and confirmed.
func CreateServerResolvingVPC(client awsclient.TransferAPI, ec2 EC2Source) *cmdlet.Operation[CreateServerOptions, awstransfer.CreateServerInput, awstransfer.CreateServerOutput] {
	op := CreateServer(client)
	call := op.Call
	op.Call = func(ctx context.Context, in *awstransfer.CreateServerInput) (*awstransfer.CreateServerOutput, error) {
		if err := ResolveEndpointVPC(ctx, ec2, in.EndpointDetails); err != nil {
			return nil, err
		}
		return call(ctx, in)
	}
	return op
}

// UpdateServerResolvingVPC is UpdateServer with the same in-call VPC lookup.
func UpdateServerResolvingVPC(client awsclient.TransferAPI, ec2 EC2Source) *cmdlet.Operation[UpdateServerOptions, awstransfer.UpdateServerInput, awstransfer.UpdateServerOutput] {
	op := UpdateServer(client)
	call := op.Call
	op.Call = func(ctx context.Context, in *awstransfer.UpdateServerInput) (*awstransfer.UpdateServerOutput, error) {
		if err := ResolveEndpointVPC(ctx, ec2, in.EndpointDetails); err != nil {
			return nil, err
		}
		return call(ctx, in)
	}
	return op
}
