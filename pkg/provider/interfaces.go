package provider

import (
	"context"
	"errors"

	"github.com/vietdv277/vpcplan/internal/netplan"
	"github.com/vietdv277/vpcplan/pkg/types"
)

// Common errors
var (
	ErrNotConfigured    = errors.New("provider not configured")
	ErrPermissionDenied = errors.New("permission denied")
)

// ZoneSource lists the availability zones a plan may be placed in
type ZoneSource interface {
	// AvailabilityZones returns the available zone names, sorted
	AvailabilityZones(ctx context.Context) ([]string, error)
}

// Provisioner realizes a plan against a cloud API
type Provisioner interface {
	// Apply creates every resource in the plan and returns their identifiers.
	// On failure the identifiers created so far are returned with the error.
	Apply(ctx context.Context, plan *netplan.NetworkPlan) (*types.NetworkOutputs, error)
}

// OutputPublisher exposes applied outputs to other tooling
type OutputPublisher interface {
	// Publish writes outputs under prefix
	Publish(ctx context.Context, prefix string, outputs *types.NetworkOutputs) error
}
