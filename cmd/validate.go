package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a network file",
	Long: `Check a network file without printing the plan: CIDR syntax and
containment, subnet overlap and availability zone capacity.

Examples:
  vpcplan validate -f network.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	addNetworkFlags(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadNetwork(cmd)
	if err != nil {
		return err
	}

	pool, err := zonePool(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}

	if err := netplan.ValidateConfig(cfg, pool); err != nil {
		return describeValidation(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s is valid\n", ui.PublicStyle.Render("✓"), networkFile)
	fmt.Fprintf(out, "  %d public, %d private subnets across %d zones\n",
		len(cfg.PublicSubnetCIDRs), len(cfg.PrivateSubnetCIDRs), netplan.ZoneCount(cfg))
	return nil
}
