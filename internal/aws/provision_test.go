package aws

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/vpcplan/internal/log"
	"github.com/vietdv277/vpcplan/internal/netplan"
	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

func TestMain(m *testing.M) {
	log.ConfigureWriter("error", "console", io.Discard)
	os.Exit(m.Run())
}

func demoPlan(t *testing.T, public, private []string) *netplan.NetworkPlan {
	t.Helper()
	cfg := netplan.DefaultNetworkConfig()
	cfg.ProjectName = "demo"
	cfg.VPCCIDR = "10.0.0.0/16"
	cfg.PublicSubnetCIDRs = public
	cfg.PrivateSubnetCIDRs = private
	cfg.CIBuildSuffix = "-042"

	plan, err := netplan.Build(cfg, []string{"us-east-1a", "us-east-1b", "us-east-1c"})
	require.NoError(t, err)
	return plan
}

func tagMap(specs []ec2types.TagSpecification) map[string]string {
	out := make(map[string]string)
	for _, spec := range specs {
		for _, tag := range spec.Tags {
			out[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}
	return out
}

func TestProvisioner_ApplyDemo(t *testing.T) {
	api := newFakeEC2()
	p := NewProvisioner(api, "run-1")
	plan := demoPlan(t, []string{"10.0.0.0/24", "10.0.2.0/24"}, []string{"10.0.1.0/24"})

	out, err := p.Apply(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, &pkgtypes.NetworkOutputs{
		RunID:                     "run-1",
		VPCID:                     "vpc-1",
		InternetGatewayID:         "igw-1",
		PublicSubnetIDs:           []string{"subnet-1", "subnet-2"},
		PrivateSubnetIDs:          []string{"subnet-3"},
		PublicRouteTableIDs:       []string{"rtb-1", "rtb-2"},
		PrivateRouteTableIDs:      []string{"rtb-3"},
		NetworkACLID:              "acl-1",
		PublicNACLAssociationIDs:  []string{"aclassoc-1", "aclassoc-2"},
		PrivateNACLAssociationIDs: []string{"aclassoc-3"},
	}, out)

	// VPC tags and DNS attributes
	require.Len(t, api.vpcInputs, 1)
	assert.Equal(t, "10.0.0.0/16", aws.ToString(api.vpcInputs[0].CidrBlock))
	assert.Equal(t, map[string]string{
		TagName:    "demo-vpc-042",
		TagProject: "demo",
		TagRunID:   "run-1",
	}, tagMap(api.vpcInputs[0].TagSpecifications))
	require.Len(t, api.vpcAttrInputs, 2)
	assert.True(t, aws.ToBool(api.vpcAttrInputs[0].EnableDnsSupport.Value))
	assert.True(t, aws.ToBool(api.vpcAttrInputs[1].EnableDnsHostnames.Value))

	// Subnets keep their CIDR and zone
	require.Len(t, api.subnetInputs, 3)
	assert.Equal(t, "10.0.2.0/24", aws.ToString(api.subnetInputs[1].CidrBlock))
	assert.Equal(t, "us-east-1c", aws.ToString(api.subnetInputs[2].AvailabilityZone))
	assert.Equal(t, "demo-pvt-sn-az-1-042", tagMap(api.subnetInputs[2].TagSpecifications)[TagName])
	assert.Len(t, api.subnetAttrCalls, 2, "only public subnets map public IPs")

	// One default route per public table, pointing at the gateway
	require.Len(t, api.routeInputs, 2)
	for i, r := range api.routeInputs {
		assert.Equal(t, "0.0.0.0/0", aws.ToString(r.DestinationCidrBlock))
		assert.Equal(t, "igw-1", aws.ToString(r.GatewayId))
		assert.Equal(t, out.PublicRouteTableIDs[i], aws.ToString(r.RouteTableId))
	}

	require.Len(t, api.assocInputs, 3)
	assert.Equal(t, "rtb-3", aws.ToString(api.assocInputs[2].RouteTableId))
	assert.Equal(t, "subnet-3", aws.ToString(api.assocInputs[2].SubnetId))

	// Permissive ingress and egress entries
	require.Len(t, api.aclEntryInputs, 2)
	for i, e := range api.aclEntryInputs {
		assert.Equal(t, int32(100), aws.ToInt32(e.RuleNumber))
		assert.Equal(t, "-1", aws.ToString(e.Protocol))
		assert.Equal(t, ec2types.RuleActionAllow, e.RuleAction)
		assert.Equal(t, "0.0.0.0/0", aws.ToString(e.CidrBlock))
		assert.Equal(t, i == 1, aws.ToBool(e.Egress))
	}

	require.Len(t, api.replaceInputs, 3)
	for i, r := range api.replaceInputs {
		assert.Equal(t, "acl-1", aws.ToString(r.NetworkAclId))
		assert.Equal(t, "aclassoc-default-"+[]string{"subnet-1", "subnet-2", "subnet-3"}[i], aws.ToString(r.AssociationId))
	}
}

func TestProvisioner_PrivateOnlySkipsGateway(t *testing.T) {
	api := newFakeEC2()
	plan := demoPlan(t, nil, []string{"10.0.1.0/24"})

	out, err := NewProvisioner(api, "run-2").Apply(context.Background(), plan)
	require.NoError(t, err)

	assert.Empty(t, out.InternetGatewayID)
	assert.Empty(t, out.PublicSubnetIDs)
	assert.Equal(t, []string{"subnet-1"}, out.PrivateSubnetIDs)
	assert.NotContains(t, api.calls, "CreateInternetGateway")
	assert.NotContains(t, api.calls, "CreateRoute")
	assert.NotContains(t, api.calls, "ModifySubnetAttribute")
}

func TestProvisioner_EmptyPlan(t *testing.T) {
	api := newFakeEC2()
	plan := demoPlan(t, nil, nil)

	out, err := NewProvisioner(api, "run-3").Apply(context.Background(), plan)
	require.NoError(t, err)

	assert.Equal(t, "vpc-1", out.VPCID)
	assert.Equal(t, "acl-1", out.NetworkACLID)
	assert.NotContains(t, api.calls, "CreateSubnet")
	assert.NotContains(t, api.calls, "ReplaceNetworkAclAssociation")
}

func TestProvisioner_FailureReturnsPartialOutputs(t *testing.T) {
	api := newFakeEC2()
	api.failOn = "CreateSubnet"
	plan := demoPlan(t, []string{"10.0.0.0/24"}, nil)

	out, err := NewProvisioner(api, "run-4").Apply(context.Background(), plan)
	require.ErrorIs(t, err, errInjected)
	assert.Contains(t, err.Error(), "demo-pub-sn-az-1-042")

	require.NotNil(t, out)
	assert.Equal(t, "vpc-1", out.VPCID)
	assert.Equal(t, "igw-1", out.InternetGatewayID)
	assert.Empty(t, out.PublicSubnetIDs)
	assert.NotContains(t, api.calls, "CreateRouteTable")
}

func TestProvisioner_CancelledContext(t *testing.T) {
	api := newFakeEC2()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvisioner(api, "").Apply(ctx, demoPlan(t, nil, nil))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, api.calls)
}

func TestNewProvisioner_GeneratesRunID(t *testing.T) {
	a := NewProvisioner(newFakeEC2(), "")
	b := NewProvisioner(newFakeEC2(), "")

	assert.Len(t, a.RunID(), 36)
	assert.NotEqual(t, a.RunID(), b.RunID())
	assert.Equal(t, "fixed", NewProvisioner(newFakeEC2(), "fixed").RunID())
}
