package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/graph"
)

var (
	graphFormat  string
	graphCluster bool
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the plan as a dependency graph",
	Long: `Render the planned resources and their references as Graphviz DOT or Mermaid.

Examples:
  vpcplan graph -f network.yaml | dot -Tpng > network.png
  vpcplan graph -f network.yaml --format mermaid`,
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	addNetworkFlags(graphCmd)
	graphCmd.Flags().StringVar(&graphFormat, "format", "dot", "graph format (dot, mermaid)")
	graphCmd.Flags().BoolVar(&graphCluster, "cluster", true, "group subnets by tier")
}

func runGraph(cmd *cobra.Command, args []string) error {
	format, err := graph.ParseFormat(graphFormat)
	if err != nil {
		return err
	}

	plan, err := buildPlan(cmd.Context(), cmd)
	if err != nil {
		return describeValidation(err)
	}

	gen := &graph.Generator{Format: format, ClusterByTier: graphCluster}
	return gen.Generate(plan, cmd.OutOrStdout())
}
