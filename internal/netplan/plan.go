package netplan

// NetworkConfig is the input record for Build
type NetworkConfig struct {
	ProjectName        string
	VPCCIDR            string
	EnableDNSHostnames bool
	EnableDNSSupport   bool
	PublicSubnetCIDRs  []string
	PrivateSubnetCIDRs []string
	CIBuildSuffix      string

	// AvailabilityZones pins the zone pool. When empty the caller supplies
	// a shuffled pool from the region instead.
	AvailabilityZones []string
}

// DefaultNetworkConfig returns a config with DNS hostnames and support enabled
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		EnableDNSHostnames: true,
		EnableDNSSupport:   true,
	}
}

// NetworkPlan is the fully resolved topology handed to a provisioner
type NetworkPlan struct {
	VPC                VPCPlan           `yaml:"vpc" json:"vpc"`
	InternetGateway    *GatewayPlan      `yaml:"internet_gateway,omitempty" json:"internet_gateway,omitempty"`
	PublicSubnets      []SubnetPlan      `yaml:"public_subnets" json:"public_subnets"`
	PrivateSubnets     []SubnetPlan      `yaml:"private_subnets" json:"private_subnets"`
	PublicRouteTables  []RouteTablePlan  `yaml:"public_route_tables" json:"public_route_tables"`
	PrivateRouteTables []RouteTablePlan  `yaml:"private_route_tables" json:"private_route_tables"`
	NetworkACL         ACLPlan           `yaml:"network_acl" json:"network_acl"`
	Tags               map[string]string `yaml:"tags" json:"tags"`
}

// VPCPlan describes the VPC itself
type VPCPlan struct {
	Ref                string `yaml:"ref" json:"ref"`
	Name               string `yaml:"name" json:"name"`
	CIDR               string `yaml:"cidr" json:"cidr"`
	EnableDNSHostnames bool   `yaml:"enable_dns_hostnames" json:"enable_dns_hostnames"`
	EnableDNSSupport   bool   `yaml:"enable_dns_support" json:"enable_dns_support"`
}

// GatewayPlan describes the Internet Gateway and its attachment to the VPC
type GatewayPlan struct {
	Ref    string `yaml:"ref" json:"ref"`
	Name   string `yaml:"name" json:"name"`
	VPCRef string `yaml:"vpc_ref" json:"vpc_ref"`
}

// SubnetPlan describes a single subnet. Each subnet owns exactly one route
// table and one NACL association.
type SubnetPlan struct {
	Ref                 string `yaml:"ref" json:"ref"`
	Name                string `yaml:"name" json:"name"`
	Index               int    `yaml:"index" json:"index"`
	CIDR                string `yaml:"cidr" json:"cidr"`
	AvailabilityZone    string `yaml:"availability_zone" json:"availability_zone"`
	IsPublic            bool   `yaml:"is_public" json:"is_public"`
	MapPublicIPOnLaunch bool   `yaml:"map_public_ip_on_launch" json:"map_public_ip_on_launch"`
	RouteTableRef       string `yaml:"route_table_ref" json:"route_table_ref"`
	NACLAssociationRef  string `yaml:"nacl_association_ref" json:"nacl_association_ref"`
}

// RouteTablePlan describes a route table bound 1:1 to a subnet
type RouteTablePlan struct {
	Ref       string      `yaml:"ref" json:"ref"`
	Name      string      `yaml:"name" json:"name"`
	SubnetRef string      `yaml:"subnet_ref" json:"subnet_ref"`
	Routes    []RoutePlan `yaml:"routes,omitempty" json:"routes,omitempty"`
}

// RoutePlan is a non-local route
type RoutePlan struct {
	DestinationCIDR string `yaml:"destination_cidr" json:"destination_cidr"`
	GatewayRef      string `yaml:"gateway_ref" json:"gateway_ref"`
}

// ACLPlan describes the Network ACL shared by every subnet
type ACLPlan struct {
	Ref          string           `yaml:"ref" json:"ref"`
	Name         string           `yaml:"name" json:"name"`
	Ingress      []ACLRule        `yaml:"ingress" json:"ingress"`
	Egress       []ACLRule        `yaml:"egress" json:"egress"`
	Associations []ACLAssociation `yaml:"associations" json:"associations"`
}

// ACLRule is a single stateless NACL entry
type ACLRule struct {
	RuleNumber int32  `yaml:"rule_number" json:"rule_number"`
	Protocol   string `yaml:"protocol" json:"protocol"` // "-1" means all protocols
	Action     string `yaml:"action" json:"action"`
	CIDR       string `yaml:"cidr" json:"cidr"`
	FromPort   int32  `yaml:"from_port" json:"from_port"`
	ToPort     int32  `yaml:"to_port" json:"to_port"`
	Egress     bool   `yaml:"egress" json:"egress"`
}

// ACLAssociation binds one subnet to the shared ACL
type ACLAssociation struct {
	Ref       string `yaml:"ref" json:"ref"`
	SubnetRef string `yaml:"subnet_ref" json:"subnet_ref"`
	ACLRef    string `yaml:"acl_ref" json:"acl_ref"`
}

// Counts summarizes the number of resources of each kind in a plan
type Counts struct {
	Subnets         int
	RouteTables     int
	Routes          int
	Gateways        int
	ACLs            int
	ACLAssociations int
}

// Empty reports whether the plan has no subnets at all
func (p *NetworkPlan) Empty() bool {
	return len(p.PublicSubnets) == 0 && len(p.PrivateSubnets) == 0
}

// Subnets returns public subnets followed by private subnets
func (p *NetworkPlan) Subnets() []SubnetPlan {
	out := make([]SubnetPlan, 0, len(p.PublicSubnets)+len(p.PrivateSubnets))
	out = append(out, p.PublicSubnets...)
	return append(out, p.PrivateSubnets...)
}

// RouteTables returns public route tables followed by private route tables
func (p *NetworkPlan) RouteTables() []RouteTablePlan {
	out := make([]RouteTablePlan, 0, len(p.PublicRouteTables)+len(p.PrivateRouteTables))
	out = append(out, p.PublicRouteTables...)
	return append(out, p.PrivateRouteTables...)
}

// Counts returns resource counts for summaries
func (p *NetworkPlan) Counts() Counts {
	c := Counts{
		Subnets:         len(p.PublicSubnets) + len(p.PrivateSubnets),
		RouteTables:     len(p.PublicRouteTables) + len(p.PrivateRouteTables),
		ACLs:            1,
		ACLAssociations: len(p.NetworkACL.Associations),
	}
	if p.InternetGateway != nil {
		c.Gateways = 1
	}
	for _, rt := range p.RouteTables() {
		c.Routes += len(rt.Routes)
	}
	return c
}
