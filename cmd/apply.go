package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/aws"
	"github.com/vietdv277/vpcplan/internal/log"
	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/internal/ui"
)

var (
	applyYes       bool
	applySSMPrefix string
	applyRunID     string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the planned network in AWS",
	Long: `Build the plan for a network file and create its resources in the
current profile and region. Resources are created in dependency order in a
single pass. A failure stops the run and prints what was created so far;
nothing is rolled back.

Every resource is tagged with Name, Project and vpcplan:run-id.

Examples:
  vpcplan apply -f network.yaml
  vpcplan apply -f network.yaml --yes --ssm-prefix /network/demo`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	addNetworkFlags(applyCmd)
	applyCmd.Flags().BoolVarP(&applyYes, "yes", "y", false, "skip the confirmation prompt")
	applyCmd.Flags().StringVar(&applySSMPrefix, "ssm-prefix", "", "publish outputs to SSM Parameter Store under this path")
	applyCmd.Flags().StringVar(&applyRunID, "run-id", "", "run ID tag value (default: random UUID)")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := loadNetwork(cmd)
	if err != nil {
		return err
	}

	client, err := newAWSClient(ctx)
	if err != nil {
		return err
	}

	pool := netplan.ZonePool(cfg, nil, nil)
	if len(cfg.AvailabilityZones) == 0 && netplan.ZoneCount(cfg) > 0 {
		if pool, err = fetchZonePool(ctx, cmd, cfg, client); err != nil {
			return err
		}
	}

	plan, err := netplan.Build(cfg, pool)
	if err != nil {
		return describeValidation(err)
	}
	if plan.Empty() {
		log.Info(netplan.ErrEmptyTopology.Error(), "vpc", plan.VPC.Name)
	}

	ui.PrintPlan(out, plan)
	fmt.Fprintln(out)

	if !applyYes {
		ok, err := ui.Confirm(fmt.Sprintf("Create %s in %s?", plan.VPC.Name, client.Region()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Apply cancelled")
			return nil
		}
	}

	provisioner := aws.NewProvisioner(client.EC2, applyRunID)
	outputs, applyErr := provisioner.Apply(ctx, plan)
	if outputs != nil {
		fmt.Fprint(out, ui.RenderOutputs(outputs))
	}
	if applyErr != nil {
		return fmt.Errorf("apply stopped, created resources are listed above: %w", applyErr)
	}

	if applySSMPrefix != "" {
		publisher := aws.NewOutputPublisher(client.SSM)
		if err := publisher.Publish(ctx, applySSMPrefix, outputs); err != nil {
			return fmt.Errorf("failed to publish outputs: %w", err)
		}
		fmt.Fprintf(out, "Outputs published under %s\n", applySSMPrefix)
	}

	return nil
}
