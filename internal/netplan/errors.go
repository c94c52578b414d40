package netplan

import (
	"errors"
	"fmt"
)

// Validation error kinds
var (
	ErrInvalidConfig                 = errors.New("invalid config")
	ErrOverlappingSubnets            = errors.New("overlapping subnets")
	ErrInsufficientAvailabilityZones = errors.New("insufficient availability zones")

	// ErrEmptyTopology is informational. Build never returns it.
	ErrEmptyTopology = errors.New("empty topology: no public or private subnets")
)

// ValidationError reports a rejected configuration value and the rule it broke
type ValidationError struct {
	Kind  error
	Field string
	Value string
	Rule  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %q %s", e.Kind, e.Value, e.Rule)
	}
	return fmt.Sprintf("%s: %s %q %s", e.Kind, e.Field, e.Value, e.Rule)
}

// Unwrap lets errors.Is match the kind sentinel
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(field, value, rule string) error {
	return &ValidationError{Kind: ErrInvalidConfig, Field: field, Value: value, Rule: rule}
}
