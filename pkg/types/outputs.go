package types

// NetworkOutputs holds the identifiers AWS assigned when a plan was applied.
// Slices follow the plan's subnet order.
type NetworkOutputs struct {
	RunID                     string   `yaml:"run_id" json:"run_id"`
	VPCID                     string   `yaml:"vpc_id" json:"vpc_id"`
	InternetGatewayID         string   `yaml:"internet_gateway_id,omitempty" json:"internet_gateway_id,omitempty"`
	PublicSubnetIDs           []string `yaml:"public_subnet_ids" json:"public_subnet_ids"`
	PrivateSubnetIDs          []string `yaml:"private_subnet_ids" json:"private_subnet_ids"`
	PublicRouteTableIDs       []string `yaml:"public_route_table_ids" json:"public_route_table_ids"`
	PrivateRouteTableIDs      []string `yaml:"private_route_table_ids" json:"private_route_table_ids"`
	NetworkACLID              string   `yaml:"network_acl_id" json:"network_acl_id"`
	PublicNACLAssociationIDs  []string `yaml:"public_nacl_association_ids" json:"public_nacl_association_ids"`
	PrivateNACLAssociationIDs []string `yaml:"private_nacl_association_ids" json:"private_nacl_association_ids"`
}

// OutputValue is a single named output, list values are kept separate
type OutputValue struct {
	Name   string
	Value  string
	Values []string
	IsList bool
}

// Values flattens the outputs into named entries in a stable order
func (o *NetworkOutputs) Values() []OutputValue {
	return []OutputValue{
		{Name: "vpc_id", Value: o.VPCID},
		{Name: "internet_gateway_id", Value: o.InternetGatewayID},
		{Name: "public_subnet_ids", Values: o.PublicSubnetIDs, IsList: true},
		{Name: "private_subnet_ids", Values: o.PrivateSubnetIDs, IsList: true},
		{Name: "public_route_table_ids", Values: o.PublicRouteTableIDs, IsList: true},
		{Name: "private_route_table_ids", Values: o.PrivateRouteTableIDs, IsList: true},
		{Name: "network_acl_id", Value: o.NetworkACLID},
		{Name: "public_nacl_association_ids", Values: o.PublicNACLAssociationIDs, IsList: true},
		{Name: "private_nacl_association_ids", Values: o.PrivateNACLAssociationIDs, IsList: true},
	}
}
