// Package netplan derives a validated AWS VPC topology from a small network
// configuration. Build is pure: the same config and zone pool always yield
// the same plan, and nothing here talks to AWS.
package netplan

import (
	"fmt"
	"strings"
)

// Default route and permissive ACL values
const (
	DefaultRouteCIDR = "0.0.0.0/0"

	aclRuleNumber  int32 = 100
	aclProtocolAll       = "-1"
	aclActionAllow       = "allow"
	aclFromPort    int32 = 0
	aclToPort      int32 = 65535
)

// ZoneCount returns how many distinct availability zones cfg needs
func ZoneCount(cfg NetworkConfig) int {
	return max(len(cfg.PublicSubnetCIDRs), len(cfg.PrivateSubnetCIDRs))
}

// ValidateConfig checks cfg against azPool without building a plan
func ValidateConfig(cfg NetworkConfig, azPool []string) error {
	return validate(cfg, azPool)
}

// Build validates cfg and expands it into a NetworkPlan.
//
// Public subnet i is placed in azPool[i] and private subnet i in
// azPool[len(public)+i], both wrapping around the pool. The pool is not
// truncated to ZoneCount, so private subnets may use zones past that count
// when the pool is larger. azPool is expected to be shuffled already; Build
// never introduces randomness.
func Build(cfg NetworkConfig, azPool []string) (*NetworkPlan, error) {
	if err := validate(cfg, azPool); err != nil {
		return nil, err
	}

	project, suffix := cfg.ProjectName, cfg.CIBuildSuffix

	plan := &NetworkPlan{
		VPC: VPCPlan{
			Ref:                VPCRef,
			Name:               VPCName(project, suffix),
			CIDR:               cfg.VPCCIDR,
			EnableDNSHostnames: cfg.EnableDNSHostnames,
			EnableDNSSupport:   cfg.EnableDNSSupport,
		},
		PublicSubnets:      []SubnetPlan{},
		PrivateSubnets:     []SubnetPlan{},
		PublicRouteTables:  []RouteTablePlan{},
		PrivateRouteTables: []RouteTablePlan{},
		NetworkACL: ACLPlan{
			Ref:          ACLRef,
			Name:         ACLName(project, suffix),
			Ingress:      []ACLRule{allowAllRule(false)},
			Egress:       []ACLRule{allowAllRule(true)},
			Associations: []ACLAssociation{},
		},
		Tags: map[string]string{
			"Project": project,
		},
	}

	hasPublic := len(cfg.PublicSubnetCIDRs) > 0
	if hasPublic {
		plan.InternetGateway = &GatewayPlan{
			Ref:    GatewayRef,
			Name:   GatewayName(project, suffix),
			VPCRef: VPCRef,
		}
	}

	for i, cidr := range cfg.PublicSubnetCIDRs {
		zone := azPool[i%len(azPool)]
		subnet, rt := buildTier(project, suffix, true, i, cidr, zone)
		if plan.InternetGateway != nil {
			rt.Routes = []RoutePlan{{
				DestinationCIDR: DefaultRouteCIDR,
				GatewayRef:      plan.InternetGateway.Ref,
			}}
		}
		plan.PublicSubnets = append(plan.PublicSubnets, subnet)
		plan.PublicRouteTables = append(plan.PublicRouteTables, rt)
	}

	offset := len(cfg.PublicSubnetCIDRs)
	for i, cidr := range cfg.PrivateSubnetCIDRs {
		zone := azPool[(offset+i)%len(azPool)]
		subnet, rt := buildTier(project, suffix, false, i, cidr, zone)
		plan.PrivateSubnets = append(plan.PrivateSubnets, subnet)
		plan.PrivateRouteTables = append(plan.PrivateRouteTables, rt)
	}

	for _, s := range plan.Subnets() {
		plan.NetworkACL.Associations = append(plan.NetworkACL.Associations, ACLAssociation{
			Ref:       s.NACLAssociationRef,
			SubnetRef: s.Ref,
			ACLRef:    plan.NetworkACL.Ref,
		})
	}

	return plan, nil
}

func buildTier(project, suffix string, public bool, i int, cidr, zone string) (SubnetPlan, RouteTablePlan) {
	subnet := SubnetPlan{
		Ref:                 subnetRef(public, i),
		Name:                SubnetName(project, public, i+1, suffix),
		Index:               i,
		CIDR:                cidr,
		AvailabilityZone:    zone,
		IsPublic:            public,
		MapPublicIPOnLaunch: public,
		RouteTableRef:       routeTableRef(public, i),
		NACLAssociationRef:  aclAssociationRef(public, i),
	}
	rt := RouteTablePlan{
		Ref:       subnet.RouteTableRef,
		Name:      RouteTableName(project, public, i+1, suffix),
		SubnetRef: subnet.Ref,
	}
	return subnet, rt
}

func allowAllRule(egress bool) ACLRule {
	return ACLRule{
		RuleNumber: aclRuleNumber,
		Protocol:   aclProtocolAll,
		Action:     aclActionAllow,
		CIDR:       DefaultRouteCIDR,
		FromPort:   aclFromPort,
		ToPort:     aclToPort,
		Egress:     egress,
	}
}

// validate runs every config check before anything is built
func validate(cfg NetworkConfig, azPool []string) error {
	if strings.TrimSpace(cfg.ProjectName) == "" {
		return invalid("project_name", cfg.ProjectName, "must not be empty")
	}

	vpc, err := parseCIDR("vpc_cidr", cfg.VPCCIDR)
	if err != nil {
		return err
	}

	var subnets []labeledPrefix
	collect := func(public bool, cidrs []string) error {
		for i, raw := range cidrs {
			field := fmt.Sprintf("subnet_configuration.%s[%d]", visibility(public), i)
			p, err := parseCIDR(field, raw)
			if err != nil {
				return err
			}
			if !containsPrefix(vpc, p) {
				return invalid(field, raw, fmt.Sprintf("is not contained in vpc_cidr %s", cfg.VPCCIDR))
			}
			subnets = append(subnets, labeledPrefix{field: field, raw: raw, prefix: p})
		}
		return nil
	}
	if err := collect(true, cfg.PublicSubnetCIDRs); err != nil {
		return err
	}
	if err := collect(false, cfg.PrivateSubnetCIDRs); err != nil {
		return err
	}

	if a, b, found := findOverlap(subnets); found {
		return &ValidationError{
			Kind:  ErrOverlappingSubnets,
			Field: a.field,
			Value: a.raw,
			Rule:  fmt.Sprintf("overlaps %s %q", b.field, b.raw),
		}
	}

	seen := make(map[string]bool, len(azPool))
	for i, zone := range azPool {
		field := fmt.Sprintf("availability_zones[%d]", i)
		if strings.TrimSpace(zone) == "" {
			return invalid(field, zone, "must not be empty")
		}
		if seen[zone] {
			return invalid(field, zone, "is listed more than once")
		}
		seen[zone] = true
	}

	if need := ZoneCount(cfg); len(azPool) < need {
		return &ValidationError{
			Kind:  ErrInsufficientAvailabilityZones,
			Field: "availability_zones",
			Value: strings.Join(azPool, ","),
			Rule:  fmt.Sprintf("has %d zones, need %d", len(azPool), need),
		}
	}

	return nil
}
