package types

// VPC represents an AWS VPC as realized in the account
type VPC struct {
	ID        string
	Name      string
	Project   string
	RunID     string
	CIDR      string
	State     string
	IsDefault bool
}

// Subnet represents an AWS VPC Subnet as realized in the account
type Subnet struct {
	ID           string
	Name         string
	VPCID        string
	CIDR         string
	AZ           string
	AvailableIPs int
	State        string
	Public       bool // MapPublicIpOnLaunch
}
