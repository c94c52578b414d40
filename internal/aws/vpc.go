package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

// Tag keys written on every provisioned resource
const (
	TagName    = "Name"
	TagProject = "Project"
	TagRunID   = "vpcplan:run-id"
)

// ListManagedVPCs returns VPCs created by vpcplan, optionally filtered by project
func (c *Client) ListManagedVPCs(ctx context.Context, project string) ([]pkgtypes.VPC, error) {
	filters := []ec2types.Filter{
		{
			Name:   aws.String("tag-key"),
			Values: []string{TagRunID},
		},
	}

	if project != "" {
		filters = append(filters, ec2types.Filter{
			Name:   aws.String("tag:" + TagProject),
			Values: []string{project},
		})
	}

	var vpcs []pkgtypes.VPC
	paginator := ec2.NewDescribeVpcsPaginator(c.EC2, &ec2.DescribeVpcsInput{Filters: filters})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, v := range output.Vpcs {
			vpcs = append(vpcs, toVPC(v))
		}
	}

	return vpcs, nil
}

// ListSubnets returns all subnets in a VPC
func (c *Client) ListSubnets(ctx context.Context, vpcID string) ([]pkgtypes.Subnet, error) {
	input := &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("vpc-id"),
				Values: []string{vpcID},
			},
		},
	}

	var subnets []pkgtypes.Subnet
	paginator := ec2.NewDescribeSubnetsPaginator(c.EC2, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range output.Subnets {
			subnets = append(subnets, toSubnet(s))
		}
	}

	return subnets, nil
}

// toVPC converts an EC2 VPC to our VPC type
func toVPC(v ec2types.Vpc) pkgtypes.VPC {
	vpc := pkgtypes.VPC{
		ID:        deref(v.VpcId),
		CIDR:      deref(v.CidrBlock),
		State:     string(v.State),
		IsDefault: derefBool(v.IsDefault),
	}

	for _, tag := range v.Tags {
		switch deref(tag.Key) {
		case TagName:
			vpc.Name = deref(tag.Value)
		case TagProject:
			vpc.Project = deref(tag.Value)
		case TagRunID:
			vpc.RunID = deref(tag.Value)
		}
	}

	return vpc
}

// toSubnet converts an EC2 Subnet to our Subnet type
func toSubnet(s ec2types.Subnet) pkgtypes.Subnet {
	subnet := pkgtypes.Subnet{
		ID:           deref(s.SubnetId),
		VPCID:        deref(s.VpcId),
		CIDR:         deref(s.CidrBlock),
		AZ:           deref(s.AvailabilityZone),
		AvailableIPs: int(derefInt32(s.AvailableIpAddressCount)),
		State:        string(s.State),
		Public:       derefBool(s.MapPublicIpOnLaunch),
	}

	for _, tag := range s.Tags {
		if deref(tag.Key) == TagName {
			subnet.Name = deref(tag.Value)
			break
		}
	}

	return subnet
}

// deref safely dereferences a string pointer
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefBool safely dereferences a bool pointer
func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// derefInt32 safely dereferences an int32 pointer
func derefInt32(i *int32) int32 {
	if i == nil {
		return 0
	}
	return *i
}
