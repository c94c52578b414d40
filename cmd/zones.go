package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/ui"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List availability zones in the region",
	Long: `List the available zones plans may be placed in.

Examples:
  vpcplan zones
  vpcplan zones -r eu-west-1`,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	client, err := newAWSClient(cmd.Context())
	if err != nil {
		return err
	}

	zones, err := client.AvailabilityZones(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list availability zones: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(zones) == 0 {
		fmt.Fprintln(out, "No availability zones found")
		return nil
	}

	fmt.Fprintf(out, "Region: %s\n", ui.HeaderStyle.Render(client.Region()))
	for _, z := range zones {
		fmt.Fprintf(out, "  %s\n", ui.AZStyle.Render(z))
	}
	return nil
}
