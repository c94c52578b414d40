package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

var errInjected = errors.New("injected failure")

// fakeEC2 records calls and hands out sequential identifiers
type fakeEC2 struct {
	calls  []string
	failOn string
	// failErr replaces errInjected for the failing call
	failErr error
	seq    map[string]int

	// subnet -> current association id
	aclAssoc map[string]string

	zones   []ec2types.AvailabilityZone
	vpcs    []ec2types.Vpc
	subnets []ec2types.Subnet

	vpcInputs       []*ec2.CreateVpcInput
	vpcAttrInputs   []*ec2.ModifyVpcAttributeInput
	subnetInputs    []*ec2.CreateSubnetInput
	subnetAttrCalls []*ec2.ModifySubnetAttributeInput
	routeInputs     []*ec2.CreateRouteInput
	assocInputs     []*ec2.AssociateRouteTableInput
	aclEntryInputs  []*ec2.CreateNetworkAclEntryInput
	replaceInputs   []*ec2.ReplaceNetworkAclAssociationInput
	zoneInputs      []*ec2.DescribeAvailabilityZonesInput
	vpcFilters      []ec2types.Filter
}

func newFakeEC2() *fakeEC2 {
	return &fakeEC2{seq: make(map[string]int), aclAssoc: make(map[string]string)}
}

func (f *fakeEC2) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failOn == call {
		if f.failErr != nil {
			return f.failErr
		}
		return errInjected
	}
	return nil
}

func (f *fakeEC2) nextID(prefix string) string {
	f.seq[prefix]++
	return fmt.Sprintf("%s-%d", prefix, f.seq[prefix])
}

func (f *fakeEC2) DescribeAvailabilityZones(_ context.Context, in *ec2.DescribeAvailabilityZonesInput, _ ...func(*ec2.Options)) (*ec2.DescribeAvailabilityZonesOutput, error) {
	f.zoneInputs = append(f.zoneInputs, in)
	if err := f.record("DescribeAvailabilityZones"); err != nil {
		return nil, err
	}
	return &ec2.DescribeAvailabilityZonesOutput{AvailabilityZones: f.zones}, nil
}

func (f *fakeEC2) DescribeVpcs(_ context.Context, in *ec2.DescribeVpcsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error) {
	f.vpcFilters = in.Filters
	if err := f.record("DescribeVpcs"); err != nil {
		return nil, err
	}
	return &ec2.DescribeVpcsOutput{Vpcs: f.vpcs}, nil
}

func (f *fakeEC2) DescribeSubnets(_ context.Context, _ *ec2.DescribeSubnetsInput, _ ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error) {
	if err := f.record("DescribeSubnets"); err != nil {
		return nil, err
	}
	return &ec2.DescribeSubnetsOutput{Subnets: f.subnets}, nil
}

func (f *fakeEC2) DescribeNetworkAcls(_ context.Context, in *ec2.DescribeNetworkAclsInput, _ ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error) {
	if err := f.record("DescribeNetworkAcls"); err != nil {
		return nil, err
	}
	subnetID := in.Filters[0].Values[0]
	assoc, ok := f.aclAssoc[subnetID]
	if !ok {
		return &ec2.DescribeNetworkAclsOutput{}, nil
	}
	return &ec2.DescribeNetworkAclsOutput{
		NetworkAcls: []ec2types.NetworkAcl{{
			NetworkAclId: aws.String("acl-default"),
			Associations: []ec2types.NetworkAclAssociation{{
				NetworkAclAssociationId: aws.String(assoc),
				SubnetId:                aws.String(subnetID),
			}},
		}},
	}, nil
}

func (f *fakeEC2) CreateVpc(_ context.Context, in *ec2.CreateVpcInput, _ ...func(*ec2.Options)) (*ec2.CreateVpcOutput, error) {
	f.vpcInputs = append(f.vpcInputs, in)
	if err := f.record("CreateVpc"); err != nil {
		return nil, err
	}
	return &ec2.CreateVpcOutput{Vpc: &ec2types.Vpc{VpcId: aws.String(f.nextID("vpc"))}}, nil
}

func (f *fakeEC2) ModifyVpcAttribute(_ context.Context, in *ec2.ModifyVpcAttributeInput, _ ...func(*ec2.Options)) (*ec2.ModifyVpcAttributeOutput, error) {
	f.vpcAttrInputs = append(f.vpcAttrInputs, in)
	if err := f.record("ModifyVpcAttribute"); err != nil {
		return nil, err
	}
	return &ec2.ModifyVpcAttributeOutput{}, nil
}

func (f *fakeEC2) CreateInternetGateway(_ context.Context, _ *ec2.CreateInternetGatewayInput, _ ...func(*ec2.Options)) (*ec2.CreateInternetGatewayOutput, error) {
	if err := f.record("CreateInternetGateway"); err != nil {
		return nil, err
	}
	return &ec2.CreateInternetGatewayOutput{
		InternetGateway: &ec2types.InternetGateway{InternetGatewayId: aws.String(f.nextID("igw"))},
	}, nil
}

func (f *fakeEC2) AttachInternetGateway(_ context.Context, _ *ec2.AttachInternetGatewayInput, _ ...func(*ec2.Options)) (*ec2.AttachInternetGatewayOutput, error) {
	if err := f.record("AttachInternetGateway"); err != nil {
		return nil, err
	}
	return &ec2.AttachInternetGatewayOutput{}, nil
}

func (f *fakeEC2) CreateSubnet(_ context.Context, in *ec2.CreateSubnetInput, _ ...func(*ec2.Options)) (*ec2.CreateSubnetOutput, error) {
	f.subnetInputs = append(f.subnetInputs, in)
	if err := f.record("CreateSubnet"); err != nil {
		return nil, err
	}
	id := f.nextID("subnet")
	f.aclAssoc[id] = "aclassoc-default-" + id
	return &ec2.CreateSubnetOutput{Subnet: &ec2types.Subnet{SubnetId: aws.String(id)}}, nil
}

func (f *fakeEC2) ModifySubnetAttribute(_ context.Context, in *ec2.ModifySubnetAttributeInput, _ ...func(*ec2.Options)) (*ec2.ModifySubnetAttributeOutput, error) {
	f.subnetAttrCalls = append(f.subnetAttrCalls, in)
	if err := f.record("ModifySubnetAttribute"); err != nil {
		return nil, err
	}
	return &ec2.ModifySubnetAttributeOutput{}, nil
}

func (f *fakeEC2) CreateRouteTable(_ context.Context, _ *ec2.CreateRouteTableInput, _ ...func(*ec2.Options)) (*ec2.CreateRouteTableOutput, error) {
	if err := f.record("CreateRouteTable"); err != nil {
		return nil, err
	}
	return &ec2.CreateRouteTableOutput{
		RouteTable: &ec2types.RouteTable{RouteTableId: aws.String(f.nextID("rtb"))},
	}, nil
}

func (f *fakeEC2) CreateRoute(_ context.Context, in *ec2.CreateRouteInput, _ ...func(*ec2.Options)) (*ec2.CreateRouteOutput, error) {
	f.routeInputs = append(f.routeInputs, in)
	if err := f.record("CreateRoute"); err != nil {
		return nil, err
	}
	return &ec2.CreateRouteOutput{Return: aws.Bool(true)}, nil
}

func (f *fakeEC2) AssociateRouteTable(_ context.Context, in *ec2.AssociateRouteTableInput, _ ...func(*ec2.Options)) (*ec2.AssociateRouteTableOutput, error) {
	f.assocInputs = append(f.assocInputs, in)
	if err := f.record("AssociateRouteTable"); err != nil {
		return nil, err
	}
	return &ec2.AssociateRouteTableOutput{AssociationId: aws.String(f.nextID("rtbassoc"))}, nil
}

func (f *fakeEC2) CreateNetworkAcl(_ context.Context, _ *ec2.CreateNetworkAclInput, _ ...func(*ec2.Options)) (*ec2.CreateNetworkAclOutput, error) {
	if err := f.record("CreateNetworkAcl"); err != nil {
		return nil, err
	}
	return &ec2.CreateNetworkAclOutput{
		NetworkAcl: &ec2types.NetworkAcl{NetworkAclId: aws.String(f.nextID("acl"))},
	}, nil
}

func (f *fakeEC2) CreateNetworkAclEntry(_ context.Context, in *ec2.CreateNetworkAclEntryInput, _ ...func(*ec2.Options)) (*ec2.CreateNetworkAclEntryOutput, error) {
	f.aclEntryInputs = append(f.aclEntryInputs, in)
	if err := f.record("CreateNetworkAclEntry"); err != nil {
		return nil, err
	}
	return &ec2.CreateNetworkAclEntryOutput{}, nil
}

func (f *fakeEC2) ReplaceNetworkAclAssociation(_ context.Context, in *ec2.ReplaceNetworkAclAssociationInput, _ ...func(*ec2.Options)) (*ec2.ReplaceNetworkAclAssociationOutput, error) {
	f.replaceInputs = append(f.replaceInputs, in)
	if err := f.record("ReplaceNetworkAclAssociation"); err != nil {
		return nil, err
	}
	return &ec2.ReplaceNetworkAclAssociationOutput{NewAssociationId: aws.String(f.nextID("aclassoc"))}, nil
}

// fakeSSM records parameters
type fakeSSM struct {
	params map[string]*ssm.PutParameterInput
	fail   bool
}

func (f *fakeSSM) PutParameter(_ context.Context, in *ssm.PutParameterInput, _ ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
	if f.fail {
		return nil, errInjected
	}
	if f.params == nil {
		f.params = make(map[string]*ssm.PutParameterInput)
	}
	f.params[aws.ToString(in.Name)] = in
	return &ssm.PutParameterOutput{Version: 1}, nil
}

// fakeSTS returns a fixed identity
type fakeSTS struct {
	err error
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/ci"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}, nil
}
