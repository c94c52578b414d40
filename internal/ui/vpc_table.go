package ui

import (
	"fmt"
	"io"

	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

// VPC table column widths
var vpcColumnWidths = []int{24, 30, 18, 16, 12, 36}

// Subnet table column widths
var subnetColumnWidths = []int{26, 30, 18, 14, 8, 12, 8}

// RenderVPCTable renders VPCs in a styled box table
func RenderVPCTable(vpcs []pkgtypes.VPC) string {
	t := newTable(vpcColumnWidths, "ID", "Name", "CIDR", "Project", "State", "Run ID")
	for _, vpc := range vpcs {
		t.add(
			cell{vpc.ID, IDStyle},
			cell{vpc.Name, NameStyle},
			cell{vpc.CIDR, CIDRStyle},
			cell{vpc.Project, MutedStyle},
			formatState(vpc.State),
			cell{vpc.RunID, MutedStyle},
		)
	}
	return t.render() + fmt.Sprintf("  %d VPCs\n", len(vpcs))
}

// PrintVPCTable writes the VPC table to w
func PrintVPCTable(w io.Writer, vpcs []pkgtypes.VPC) {
	fmt.Fprint(w, RenderVPCTable(vpcs))
}

// RenderSubnetTable renders subnets in a styled box table
func RenderSubnetTable(subnets []pkgtypes.Subnet) string {
	t := newTable(subnetColumnWidths, "ID", "Name", "CIDR", "AZ", "IPs", "State", "Public")
	for _, s := range subnets {
		t.add(
			cell{s.ID, IDStyle},
			cell{s.Name, NameStyle},
			cell{s.CIDR, CIDRStyle},
			cell{s.AZ, AZStyle},
			cell{fmt.Sprintf("%d", s.AvailableIPs), MutedStyle},
			formatState(s.State),
			cell{yesNo(s.Public), tierStyle(s.Public)},
		)
	}
	return t.render() + fmt.Sprintf("  %d subnets\n", len(subnets))
}

// PrintSubnetTable writes the subnet table to w
func PrintSubnetTable(w io.Writer, subnets []pkgtypes.Subnet) {
	fmt.Fprint(w, RenderSubnetTable(subnets))
}

func formatState(state string) cell {
	switch state {
	case "available":
		return cell{"● " + state, PublicStyle}
	case "pending":
		return cell{"◐ " + state, PendingStyle}
	default:
		return cell{"○ " + state, MutedStyle}
	}
}
