package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/vpcplan/internal/config"
	"github.com/vietdv277/vpcplan/internal/log"
	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/pkg/provider"
)

// Flags shared by commands reading a network file
var (
	networkFile string
	buildSuffix string
	zoneSeed    uint64
)

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&networkFile, "file", "f", "network.yaml", "network config file")
	cmd.Flags().StringVar(&buildSuffix, "suffix", "", "override ci_build_suffix")
	cmd.Flags().Uint64Var(&zoneSeed, "seed", 0, "seed for availability zone shuffling (0 picks a random order)")
}

// loadNetwork reads the network file, applying command line overrides
func loadNetwork(cmd *cobra.Command) (netplan.NetworkConfig, error) {
	overrides := map[string]any{}
	if cmd.Flags().Changed("suffix") {
		overrides[config.KeyCIBuildSuffix] = buildSuffix
	}

	cfg, err := config.LoadNetworkConfig(networkFile, overrides)
	if err != nil {
		return netplan.NetworkConfig{}, err
	}

	log.Debug("loaded network config", "file", networkFile, "project", cfg.ProjectName)
	return cfg, nil
}

// zonePool returns the pinned zones, or asks AWS for the region's zones and
// shuffles them. Nothing is fetched when the config needs no zones.
func zonePool(ctx context.Context, cmd *cobra.Command, cfg netplan.NetworkConfig) ([]string, error) {
	if len(cfg.AvailabilityZones) > 0 || netplan.ZoneCount(cfg) == 0 {
		return netplan.ZonePool(cfg, nil, nil), nil
	}

	client, err := newAWSClient(ctx)
	if err != nil {
		return nil, err
	}
	return fetchZonePool(ctx, cmd, cfg, client)
}

func fetchZonePool(ctx context.Context, cmd *cobra.Command, cfg netplan.NetworkConfig, src provider.ZoneSource) ([]string, error) {
	zones, err := src.AvailabilityZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability zones: %w", err)
	}

	pool := netplan.ZonePool(cfg, zones, nil)
	if cmd.Flags().Changed("seed") {
		pool = netplan.ZonePool(cfg, zones, netplan.SeededRand(zoneSeed))
	}

	log.Debug("selected zone pool", "zones", pool)
	return pool, nil
}

// buildPlan loads the network file and builds its plan
func buildPlan(ctx context.Context, cmd *cobra.Command) (*netplan.NetworkPlan, error) {
	cfg, err := loadNetwork(cmd)
	if err != nil {
		return nil, err
	}

	pool, err := zonePool(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	plan, err := netplan.Build(cfg, pool)
	if err != nil {
		return nil, err
	}

	if plan.Empty() {
		log.Info(netplan.ErrEmptyTopology.Error(), "vpc", plan.VPC.Name)
	}
	return plan, nil
}

// describeValidation adds a hint for the common validation failures
func describeValidation(err error) error {
	var verr *netplan.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	switch {
	case errors.Is(err, netplan.ErrInsufficientAvailabilityZones):
		return fmt.Errorf("%w (pin more availability_zones or use fewer subnets)", err)
	case errors.Is(err, netplan.ErrOverlappingSubnets):
		return fmt.Errorf("%w (subnet CIDRs must be disjoint)", err)
	default:
		return err
	}
}
