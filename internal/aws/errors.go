package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/vietdv277/vpcplan/pkg/provider"
)

// Error codes AWS returns when the caller lacks a permission
var deniedCodes = map[string]bool{
	"AccessDenied":          true,
	"AccessDeniedException": true,
	"UnauthorizedOperation": true,
	"UnauthorizedAccess":    true,
}

// classifyError marks permission failures with provider.ErrPermissionDenied
// while keeping the original error in the chain
func classifyError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && deniedCodes[apiErr.ErrorCode()] {
		return fmt.Errorf("%w: %w", provider.ErrPermissionDenied, err)
	}
	return err
}
