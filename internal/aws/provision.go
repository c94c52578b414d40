package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/google/uuid"

	"github.com/vietdv277/vpcplan/internal/log"
	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

var (
	_ provider.Provisioner = (*Provisioner)(nil)
	_ provider.ZoneSource  = (*Client)(nil)
)

// Provisioner creates the resources of a NetworkPlan through the EC2 API.
// It makes a single pass with no retries and no rollback.
type Provisioner struct {
	ec2   EC2API
	runID string
}

// NewProvisioner returns a Provisioner tagging resources with runID, or a fresh UUID when empty
func NewProvisioner(api EC2API, runID string) *Provisioner {
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Provisioner{ec2: api, runID: runID}
}

// RunID returns the value written to the vpcplan:run-id tag
func (p *Provisioner) RunID() string {
	return p.runID
}

// applyState tracks identifiers assigned so far, keyed by plan ref
type applyState struct {
	plan *netplan.NetworkPlan
	ids  map[string]string
	out  *pkgtypes.NetworkOutputs
}

// Apply realizes plan. On failure the outputs created so far are returned
// alongside the error.
func (p *Provisioner) Apply(ctx context.Context, plan *netplan.NetworkPlan) (*pkgtypes.NetworkOutputs, error) {
	st := &applyState{
		plan: plan,
		ids:  make(map[string]string),
		out:  &pkgtypes.NetworkOutputs{RunID: p.runID},
	}

	log.Info("applying network plan", "vpc", plan.VPC.Name, "run_id", p.runID)

	steps := []struct {
		name string
		fn   func(context.Context, *applyState) error
	}{
		{"vpc", p.createVPC},
		{"internet gateway", p.createGateway},
		{"subnets", p.createSubnets},
		{"route tables", p.createRouteTables},
		{"network acl", p.createNetworkACL},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return st.out, err
		}
		if err := step.fn(ctx, st); err != nil {
			log.Error("apply failed", "step", step.name, "error", err)
			return st.out, classifyError(err)
		}
	}

	log.Info("network plan applied", "vpc_id", st.out.VPCID, "subnets", len(plan.Subnets()))
	return st.out, nil
}

func (p *Provisioner) createVPC(ctx context.Context, st *applyState) error {
	v := st.plan.VPC

	output, err := p.ec2.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:         aws.String(v.CIDR),
		TagSpecifications: p.tagSpec(ec2types.ResourceTypeVpc, v.Name, st.plan.Tags),
	})
	if err != nil {
		return fmt.Errorf("failed to create VPC %s: %w", v.Name, err)
	}
	vpcID := deref(output.Vpc.VpcId)
	st.ids[v.Ref] = vpcID
	st.out.VPCID = vpcID
	log.Debug("created vpc", "id", vpcID, "cidr", v.CIDR)

	// Hostnames require DNS support, so support is set first
	if _, err := p.ec2.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
		VpcId:            aws.String(vpcID),
		EnableDnsSupport: &ec2types.AttributeBooleanValue{Value: aws.Bool(v.EnableDNSSupport)},
	}); err != nil {
		return fmt.Errorf("failed to set DNS support on %s: %w", vpcID, err)
	}

	if _, err := p.ec2.ModifyVpcAttribute(ctx, &ec2.ModifyVpcAttributeInput{
		VpcId:              aws.String(vpcID),
		EnableDnsHostnames: &ec2types.AttributeBooleanValue{Value: aws.Bool(v.EnableDNSHostnames)},
	}); err != nil {
		return fmt.Errorf("failed to set DNS hostnames on %s: %w", vpcID, err)
	}

	return nil
}

func (p *Provisioner) createGateway(ctx context.Context, st *applyState) error {
	gw := st.plan.InternetGateway
	if gw == nil {
		return nil
	}

	output, err := p.ec2.CreateInternetGateway(ctx, &ec2.CreateInternetGatewayInput{
		TagSpecifications: p.tagSpec(ec2types.ResourceTypeInternetGateway, gw.Name, st.plan.Tags),
	})
	if err != nil {
		return fmt.Errorf("failed to create internet gateway %s: %w", gw.Name, err)
	}
	igwID := deref(output.InternetGateway.InternetGatewayId)
	st.ids[gw.Ref] = igwID
	st.out.InternetGatewayID = igwID

	if _, err := p.ec2.AttachInternetGateway(ctx, &ec2.AttachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(st.ids[gw.VPCRef]),
	}); err != nil {
		return fmt.Errorf("failed to attach internet gateway %s: %w", igwID, err)
	}
	log.Debug("created internet gateway", "id", igwID)

	return nil
}

func (p *Provisioner) createSubnets(ctx context.Context, st *applyState) error {
	for _, s := range st.plan.Subnets() {
		output, err := p.ec2.CreateSubnet(ctx, &ec2.CreateSubnetInput{
			VpcId:             aws.String(st.ids[st.plan.VPC.Ref]),
			CidrBlock:         aws.String(s.CIDR),
			AvailabilityZone:  aws.String(s.AvailabilityZone),
			TagSpecifications: p.tagSpec(ec2types.ResourceTypeSubnet, s.Name, st.plan.Tags),
		})
		if err != nil {
			return fmt.Errorf("failed to create subnet %s: %w", s.Name, err)
		}
		subnetID := deref(output.Subnet.SubnetId)
		st.ids[s.Ref] = subnetID
		if s.IsPublic {
			st.out.PublicSubnetIDs = append(st.out.PublicSubnetIDs, subnetID)
		} else {
			st.out.PrivateSubnetIDs = append(st.out.PrivateSubnetIDs, subnetID)
		}

		if s.MapPublicIPOnLaunch {
			if _, err := p.ec2.ModifySubnetAttribute(ctx, &ec2.ModifySubnetAttributeInput{
				SubnetId:            aws.String(subnetID),
				MapPublicIpOnLaunch: &ec2types.AttributeBooleanValue{Value: aws.Bool(true)},
			}); err != nil {
				return fmt.Errorf("failed to enable public IPs on %s: %w", subnetID, err)
			}
		}
		log.Debug("created subnet", "id", subnetID, "cidr", s.CIDR, "az", s.AvailabilityZone)
	}

	return nil
}

func (p *Provisioner) createRouteTables(ctx context.Context, st *applyState) error {
	public := make(map[string]bool, len(st.plan.PublicRouteTables))
	for _, rt := range st.plan.PublicRouteTables {
		public[rt.Ref] = true
	}

	for _, rt := range st.plan.RouteTables() {
		output, err := p.ec2.CreateRouteTable(ctx, &ec2.CreateRouteTableInput{
			VpcId:             aws.String(st.ids[st.plan.VPC.Ref]),
			TagSpecifications: p.tagSpec(ec2types.ResourceTypeRouteTable, rt.Name, st.plan.Tags),
		})
		if err != nil {
			return fmt.Errorf("failed to create route table %s: %w", rt.Name, err)
		}
		rtID := deref(output.RouteTable.RouteTableId)
		st.ids[rt.Ref] = rtID
		if public[rt.Ref] {
			st.out.PublicRouteTableIDs = append(st.out.PublicRouteTableIDs, rtID)
		} else {
			st.out.PrivateRouteTableIDs = append(st.out.PrivateRouteTableIDs, rtID)
		}

		for _, route := range rt.Routes {
			gwID, ok := st.ids[route.GatewayRef]
			if !ok {
				return fmt.Errorf("route table %s references unknown gateway %q", rt.Name, route.GatewayRef)
			}
			if _, err := p.ec2.CreateRoute(ctx, &ec2.CreateRouteInput{
				RouteTableId:         aws.String(rtID),
				DestinationCidrBlock: aws.String(route.DestinationCIDR),
				GatewayId:            aws.String(gwID),
			}); err != nil {
				return fmt.Errorf("failed to create route %s in %s: %w", route.DestinationCIDR, rtID, err)
			}
		}

		if _, err := p.ec2.AssociateRouteTable(ctx, &ec2.AssociateRouteTableInput{
			RouteTableId: aws.String(rtID),
			SubnetId:     aws.String(st.ids[rt.SubnetRef]),
		}); err != nil {
			return fmt.Errorf("failed to associate route table %s: %w", rtID, err)
		}
		log.Debug("created route table", "id", rtID, "routes", len(rt.Routes))
	}

	return nil
}

func (p *Provisioner) createNetworkACL(ctx context.Context, st *applyState) error {
	acl := st.plan.NetworkACL

	output, err := p.ec2.CreateNetworkAcl(ctx, &ec2.CreateNetworkAclInput{
		VpcId:             aws.String(st.ids[st.plan.VPC.Ref]),
		TagSpecifications: p.tagSpec(ec2types.ResourceTypeNetworkAcl, acl.Name, st.plan.Tags),
	})
	if err != nil {
		return fmt.Errorf("failed to create network ACL %s: %w", acl.Name, err)
	}
	aclID := deref(output.NetworkAcl.NetworkAclId)
	st.ids[acl.Ref] = aclID
	st.out.NetworkACLID = aclID

	rules := append(append([]netplan.ACLRule{}, acl.Ingress...), acl.Egress...)
	for _, rule := range rules {
		if _, err := p.ec2.CreateNetworkAclEntry(ctx, &ec2.CreateNetworkAclEntryInput{
			NetworkAclId: aws.String(aclID),
			RuleNumber:   aws.Int32(rule.RuleNumber),
			Protocol:     aws.String(rule.Protocol),
			RuleAction:   ec2types.RuleAction(rule.Action),
			Egress:       aws.Bool(rule.Egress),
			CidrBlock:    aws.String(rule.CIDR),
			PortRange: &ec2types.PortRange{
				From: aws.Int32(rule.FromPort),
				To:   aws.Int32(rule.ToPort),
			},
		}); err != nil {
			return fmt.Errorf("failed to create ACL entry %d (egress=%t): %w", rule.RuleNumber, rule.Egress, err)
		}
	}

	public := make(map[string]bool, len(st.plan.PublicSubnets))
	for _, s := range st.plan.PublicSubnets {
		public[s.Ref] = true
	}

	for _, assoc := range acl.Associations {
		subnetID := st.ids[assoc.SubnetRef]
		newID, err := p.replaceACLAssociation(ctx, subnetID, aclID)
		if err != nil {
			return err
		}
		st.ids[assoc.Ref] = newID
		if public[assoc.SubnetRef] {
			st.out.PublicNACLAssociationIDs = append(st.out.PublicNACLAssociationIDs, newID)
		} else {
			st.out.PrivateNACLAssociationIDs = append(st.out.PrivateNACLAssociationIDs, newID)
		}
	}
	log.Debug("created network acl", "id", aclID, "associations", len(acl.Associations))

	return nil
}

// replaceACLAssociation moves subnetID from the VPC default ACL to aclID
func (p *Provisioner) replaceACLAssociation(ctx context.Context, subnetID, aclID string) (string, error) {
	output, err := p.ec2.DescribeNetworkAcls(ctx, &ec2.DescribeNetworkAclsInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("association.subnet-id"),
				Values: []string{subnetID},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up ACL association for %s: %w", subnetID, err)
	}

	var current string
	for _, acl := range output.NetworkAcls {
		for _, a := range acl.Associations {
			if deref(a.SubnetId) == subnetID {
				current = deref(a.NetworkAclAssociationId)
			}
		}
	}
	if current == "" {
		return "", fmt.Errorf("no ACL association found for subnet %s", subnetID)
	}

	replaced, err := p.ec2.ReplaceNetworkAclAssociation(ctx, &ec2.ReplaceNetworkAclAssociationInput{
		AssociationId: aws.String(current),
		NetworkAclId:  aws.String(aclID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to associate %s with ACL %s: %w", subnetID, aclID, err)
	}

	return deref(replaced.NewAssociationId), nil
}

// tagSpec builds the Name, plan and run-id tags for a new resource
func (p *Provisioner) tagSpec(rt ec2types.ResourceType, name string, planTags map[string]string) []ec2types.TagSpecification {
	keys := make([]string, 0, len(planTags))
	for k := range planTags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := []ec2types.Tag{{Key: aws.String(TagName), Value: aws.String(name)}}
	for _, k := range keys {
		tags = append(tags, ec2types.Tag{Key: aws.String(k), Value: aws.String(planTags[k])})
	}
	tags = append(tags, ec2types.Tag{Key: aws.String(TagRunID), Value: aws.String(p.runID)})

	return []ec2types.TagSpecification{{ResourceType: rt, Tags: tags}}
}
