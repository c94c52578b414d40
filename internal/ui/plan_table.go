package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/vietdv277/vpcplan/internal/netplan"
	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

// Subnet plan columns: Name, Tier, CIDR, AZ, Route Table, Default Route
var planColumnWidths = []int{30, 8, 18, 14, 28, 14}

// RenderPlan renders a plan as a header block followed by a subnet table
func RenderPlan(plan *netplan.NetworkPlan) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "VPC: %s\n", NameStyle.Render(plan.VPC.Name))
	fmt.Fprintf(&sb, "  CIDR:           %s\n", plan.VPC.CIDR)
	fmt.Fprintf(&sb, "  DNS hostnames:  %s\n", yesNo(plan.VPC.EnableDNSHostnames))
	fmt.Fprintf(&sb, "  DNS support:    %s\n", yesNo(plan.VPC.EnableDNSSupport))
	if plan.InternetGateway != nil {
		fmt.Fprintf(&sb, "  Gateway:        %s\n", plan.InternetGateway.Name)
	} else {
		fmt.Fprintf(&sb, "  Gateway:        %s\n", MutedStyle.Render("(none)"))
	}
	fmt.Fprintf(&sb, "  Network ACL:    %s (%d associations)\n", plan.NetworkACL.Name, len(plan.NetworkACL.Associations))
	sb.WriteString("\n")

	if plan.Empty() {
		sb.WriteString(PendingStyle.Render("No subnets planned"))
		sb.WriteString("\n")
		return sb.String()
	}

	routeTables := make(map[string]netplan.RouteTablePlan)
	for _, rt := range plan.RouteTables() {
		routeTables[rt.Ref] = rt
	}

	t := newTable(planColumnWidths, "Name", "Tier", "CIDR", "AZ", "Route Table", "Default Route")
	for _, s := range plan.Subnets() {
		rt := routeTables[s.RouteTableRef]
		tier := "private"
		if s.IsPublic {
			tier = "public"
		}
		defaultRoute := "-"
		for _, r := range rt.Routes {
			if r.DestinationCIDR == netplan.DefaultRouteCIDR {
				defaultRoute = "→ " + r.GatewayRef
			}
		}
		t.add(
			cell{s.Name, NameStyle},
			cell{tier, tierStyle(s.IsPublic)},
			cell{s.CIDR, CIDRStyle},
			cell{s.AvailabilityZone, AZStyle},
			cell{rt.Name, MutedStyle},
			cell{defaultRoute, MutedStyle},
		)
	}
	sb.WriteString(t.render())

	c := plan.Counts()
	fmt.Fprintf(&sb, "  %d subnets (%s, %s), %d route tables, %d routes\n",
		c.Subnets,
		PublicStyle.Render(fmt.Sprintf("%d public", len(plan.PublicSubnets))),
		PrivateStyle.Render(fmt.Sprintf("%d private", len(plan.PrivateSubnets))),
		c.RouteTables, c.Routes)

	return sb.String()
}

// PrintPlan writes the rendered plan to w
func PrintPlan(w io.Writer, plan *netplan.NetworkPlan) {
	fmt.Fprint(w, RenderPlan(plan))
}

// Output columns: Output, Value
var outputColumnWidths = []int{30, 60}

// RenderOutputs renders applied identifiers
func RenderOutputs(out *pkgtypes.NetworkOutputs) string {
	t := newTable(outputColumnWidths, "Output", "Value")
	for _, v := range out.Values() {
		value := v.Value
		if v.IsList {
			value = strings.Join(v.Values, ", ")
		}
		if value == "" {
			t.add(cell{v.Name, NameStyle}, cell{"(none)", MutedStyle})
			continue
		}
		t.add(cell{v.Name, NameStyle}, cell{value, IDStyle})
	}
	return t.render() + fmt.Sprintf("  run id %s\n", MutedStyle.Render(out.RunID))
}
