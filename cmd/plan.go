package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vietdv277/vpcplan/internal/config"
	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/internal/ui"
)

var outputFormat string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the resources a network file produces",
	Long: `Validate a network file and print the VPC, gateway, subnets, route tables
and network ACL it would create. Nothing is created.

Availability zones come from availability_zones when set, otherwise the
region's zones are fetched and shuffled. Use --seed to reproduce an order.

Examples:
  vpcplan plan -f network.yaml
  vpcplan plan -f network.yaml --suffix -042 -o yaml
  vpcplan plan -f network.yaml --seed 7 -o json`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	addNetworkFlags(planCmd)
	planCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format (table, yaml, json)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	plan, err := buildPlan(cmd.Context(), cmd)
	if err != nil {
		return describeValidation(err)
	}

	format := outputFormat
	if format == "" {
		if cfg, err := config.LoadConfig(); err == nil && cfg.Output != "" {
			format = cfg.Output
		} else {
			format = "table"
		}
	}

	return writePlan(cmd.OutOrStdout(), plan, format)
}

func writePlan(w io.Writer, plan *netplan.NetworkPlan, format string) error {
	switch format {
	case "table":
		ui.PrintPlan(w, plan)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", format)
	}
}
