package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// ErrSubnetNotFound is returned when a subnet id does not exist in the region.
var ErrSubnetNotFound = errors.New("subnet not found")

// SubnetVPC returns the VPC every given subnet belongs to. Subnets from
// different VPCs are rejected since a Transfer endpoint lives in exactly one VPC.
func SubnetVPC(ctx context.Context, client EC2API, subnetIDs []string) (string, error) {
	if len(subnetIDs) == 0 {
		return "", fmt.Errorf("%w: no subnet ids given", ErrSubnetNotFound)
	}

	output, err := client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		SubnetIds: subnetIDs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe subnets: %w", err)
	}

	if len(output.Subnets) == 0 {
		return "", fmt.Errorf("%w: %v", ErrSubnetNotFound, subnetIDs)
	}

	vpcID := deref(output.Subnets[0].VpcId)
	for _, s := range output.Subnets[1:] {
		if other := deref(s.VpcId); other != vpcID {
			return "", fmt.Errorf("subnets span more than one VPC (%s, %s)", vpcID, other)
		}
	}

	return vpcID, nil
}
