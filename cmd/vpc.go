package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/ui"
)

var vpcProject string

var vpcCmd = &cobra.Command{
	Use:   "vpc",
	Short: "Inspect VPCs created by vpcplan",
	Long:  `List VPCs carrying the vpcplan:run-id tag and the subnets inside them.`,
}

var vpcLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List managed VPCs",
	Long: `List VPCs created by vpcplan with their CIDR, state, project and run ID.

Examples:
  vpcplan vpc ls                  # All managed VPCs
  vpcplan vpc ls --project demo   # Only VPCs tagged Project=demo`,
	RunE: runVPCList,
}

var vpcSubnetsCmd = &cobra.Command{
	Use:   "subnets <vpc-id>",
	Short: "List subnets in a VPC",
	Long: `List all subnets in a VPC with their CIDR, AZ, and availability.

Examples:
  vpcplan vpc subnets vpc-12345678`,
	Args: cobra.ExactArgs(1),
	RunE: runVPCSubnets,
}

func init() {
	rootCmd.AddCommand(vpcCmd)

	vpcCmd.AddCommand(vpcLsCmd)
	vpcCmd.AddCommand(vpcSubnetsCmd)

	vpcLsCmd.Flags().StringVar(&vpcProject, "project", "", "filter by Project tag")
}

func runVPCList(cmd *cobra.Command, args []string) error {
	client, err := newAWSClient(cmd.Context())
	if err != nil {
		return err
	}

	vpcs, err := client.ListManagedVPCs(cmd.Context(), vpcProject)
	if err != nil {
		return fmt.Errorf("failed to list VPCs: %w", err)
	}

	if len(vpcs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No VPCs found")
		return nil
	}

	ui.PrintVPCTable(cmd.OutOrStdout(), vpcs)
	return nil
}

func runVPCSubnets(cmd *cobra.Command, args []string) error {
	client, err := newAWSClient(cmd.Context())
	if err != nil {
		return err
	}

	subnets, err := client.ListSubnets(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list subnets: %w", err)
	}

	if len(subnets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subnets found in this VPC")
		return nil
	}

	ui.PrintSubnetTable(cmd.OutOrStdout(), subnets)
	return nil
}
