package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vietdv277/vpcplan/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use <profile>",
	Short: "Set the default AWS profile",
	Long: `Save the AWS profile (and optionally region) used when --profile and
--region are not given. Settings are stored in ~/.vpcplan/config.yaml.

Examples:
  vpcplan use prod
  vpcplan use dev --region eu-west-1`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	// The raw --region flag, before the saved region is applied
	useRegion := viper.GetString("region")

	if err := config.SetProfile(args[0], useRegion); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Switched to profile: %s\n", args[0])
	if useRegion != "" {
		fmt.Fprintf(out, "  Region: %s\n", useRegion)
	}
	return nil
}
