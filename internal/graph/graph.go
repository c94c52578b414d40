// Package graph renders a network plan as a DOT or Mermaid dependency graph.
package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/emicklei/dot"

	"github.com/vietdv277/vpcplan/internal/netplan"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for GitHub/markdown rendering.
	FormatMermaid Format = "mermaid"
)

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatDOT:
		return FormatDOT, nil
	case FormatMermaid:
		return FormatMermaid, nil
	default:
		return "", fmt.Errorf("unknown graph format %q (want dot or mermaid)", s)
	}
}

// Generator creates resource graphs from plans.
type Generator struct {
	// Format specifies the output format. Defaults to dot.
	Format Format

	// ClusterByTier groups public and private resources.
	ClusterByTier bool
}

// Generate writes the plan graph to w.
func (g *Generator) Generate(plan *netplan.NetworkPlan, w io.Writer) error {
	graph := g.buildGraph(plan)

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := io.WriteString(w, output)
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(plan *netplan.NetworkPlan) (string, error) {
	var sb strings.Builder
	if err := g.Generate(plan, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(plan *netplan.NetworkPlan) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "TB")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})

	public, private := graph, graph
	if g.ClusterByTier {
		public = graph.Subgraph("cluster_public", dot.ClusterOption{})
		private = graph.Subgraph("cluster_private", dot.ClusterOption{})
	}

	vpc := graph.Node(plan.VPC.Ref).Label(plan.VPC.Name + "\\n" + plan.VPC.CIDR)
	vpc.Attr("style", "bold")

	acl := graph.Node(plan.NetworkACL.Ref).Label(plan.NetworkACL.Name)
	acl.Attr("shape", "octagon")
	graph.Edge(acl, vpc)

	var igw dot.Node
	if plan.InternetGateway != nil {
		igw = graph.Node(plan.InternetGateway.Ref).Label(plan.InternetGateway.Name)
		igw.Attr("shape", "diamond")
		graph.Edge(igw, vpc, "attached")
	}

	subnets := make(map[string]dot.Node)
	for _, s := range plan.Subnets() {
		parent := private
		if s.IsPublic {
			parent = public
		}
		n := parent.Node(s.Ref).Label(fmt.Sprintf("%s\\n%s\\n%s", s.Name, s.CIDR, s.AvailabilityZone))
		graph.Edge(n, vpc)
		subnets[s.Ref] = n
	}

	for _, rt := range plan.RouteTables() {
		parent := private
		if strings.HasPrefix(rt.SubnetRef, "subnet.public") {
			parent = public
		}
		n := parent.Node(rt.Ref).Label(rt.Name)
		n.Attr("shape", "note")
		graph.Edge(n, subnets[rt.SubnetRef])

		for _, r := range rt.Routes {
			if plan.InternetGateway != nil && r.GatewayRef == plan.InternetGateway.Ref {
				e := graph.Edge(n, igw, r.DestinationCIDR)
				e.Attr("color", "blue")
			}
		}
	}

	for _, a := range plan.NetworkACL.Associations {
		e := graph.Edge(subnets[a.SubnetRef], acl)
		e.Attr("style", "dashed")
	}

	return graph
}
