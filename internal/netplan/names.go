package netplan

import "fmt"

// Tier markers used in resource names
const (
	tierPublic  = "pub"
	tierPrivate = "pvt"
)

// VPCName returns "{project}-vpc{suffix}"
func VPCName(project, suffix string) string {
	return project + "-vpc" + suffix
}

// GatewayName returns "{project}-igw{suffix}"
func GatewayName(project, suffix string) string {
	return project + "-igw" + suffix
}

// ACLName returns "{project}-nacl{suffix}"
func ACLName(project, suffix string) string {
	return project + "-nacl" + suffix
}

// SubnetName returns "{project}-{pub|pvt}-sn-az-{n}{suffix}" where n is 1-based
func SubnetName(project string, public bool, n int, suffix string) string {
	return fmt.Sprintf("%s-%s-sn-az-%d%s", project, tier(public), n, suffix)
}

// RouteTableName returns "{project}-{pub|pvt}-rt-{n}{suffix}" where n is 1-based
func RouteTableName(project string, public bool, n int, suffix string) string {
	return fmt.Sprintf("%s-%s-rt-%d%s", project, tier(public), n, suffix)
}

func tier(public bool) string {
	if public {
		return tierPublic
	}
	return tierPrivate
}

// Symbolic references between plan resources
const (
	VPCRef     = "vpc"
	GatewayRef = "igw"
	ACLRef     = "nacl"
)

func visibility(public bool) string {
	if public {
		return "public"
	}
	return "private"
}

func subnetRef(public bool, i int) string {
	return fmt.Sprintf("subnet.%s.%d", visibility(public), i)
}

func routeTableRef(public bool, i int) string {
	return fmt.Sprintf("rtb.%s.%d", visibility(public), i)
}

func aclAssociationRef(public bool, i int) string {
	return fmt.Sprintf("nacl-assoc.%s.%d", visibility(public), i)
}
