package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/aws"
	"github.com/vietdv277/vpcplan/internal/ui"
	"github.com/vietdv277/vpcplan/pkg/provider"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active profile and authentication status",
	Long: `Display the AWS profile and region commands will use and verify the
credentials behind them.

Examples:
  vpcplan status
  vpcplan status -p prod`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Status")
	fmt.Fprintln(out, ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Profile:  %s\n", valueOrUnset(GetProfile()))
	fmt.Fprintf(out, "Region:   %s\n", valueOrUnset(GetRegion()))
	fmt.Fprintln(out)

	fmt.Fprint(out, "Auth:     ")
	client, err := newAWSClient(cmd.Context())
	if err == nil {
		var identity *aws.CallerIdentity
		identity, err = client.CallerIdentity(cmd.Context())
		if err == nil {
			fmt.Fprintln(out, ui.PublicStyle.Render("✓ Authenticated"))
			fmt.Fprintf(out, "Account:  %s\n", identity.Account)
			fmt.Fprintf(out, "User:     %s\n", identity.UserID)
			if identity.Arn != "" {
				fmt.Fprintf(out, "ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
			}
			return nil
		}
	}

	fmt.Fprintln(out, ui.ErrorStyle.Render("✗ Not authenticated"))
	fmt.Fprintf(out, "          %s\n", ui.MutedStyle.Render(err.Error()))
	fmt.Fprintln(out)
	if errors.Is(err, provider.ErrNotConfigured) {
		fmt.Fprintln(out, "To configure a region:")
		fmt.Fprintln(out, "  vpcplan use <profile> --region <region>")
		return nil
	}
	fmt.Fprintln(out, "To authenticate:")
	if p := GetProfile(); p != "" {
		fmt.Fprintf(out, "  aws sso login --profile %s\n", p)
	} else {
		fmt.Fprintln(out, "  aws configure")
	}
	return nil
}

func valueOrUnset(s string) string {
	if s == "" {
		return ui.MutedStyle.Render("(not set)")
	}
	return ui.HeaderStyle.Render(s)
}
