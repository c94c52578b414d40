package aws

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/vietdv277/vpcplan/internal/log"
	"github.com/vietdv277/vpcplan/pkg/provider"
	pkgtypes "github.com/vietdv277/vpcplan/pkg/types"
)

var _ provider.OutputPublisher = (*OutputPublisher)(nil)

// OutputPublisher writes applied outputs to SSM Parameter Store
type OutputPublisher struct {
	ssm SSMAPI
}

// NewOutputPublisher returns a publisher backed by api
func NewOutputPublisher(api SSMAPI) *OutputPublisher {
	return &OutputPublisher{ssm: api}
}

// Publish writes each non-empty output as {prefix}/{name}. Lists are stored
// as StringList parameters.
func (p *OutputPublisher) Publish(ctx context.Context, prefix string, outputs *pkgtypes.NetworkOutputs) error {
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("SSM prefix %q must start with /", prefix)
	}

	written := 0
	for _, v := range outputs.Values() {
		input := &ssm.PutParameterInput{
			Name:      aws.String(path.Join(prefix, v.Name)),
			Overwrite: aws.Bool(true),
		}

		if v.IsList {
			if len(v.Values) == 0 {
				continue
			}
			input.Type = ssmtypes.ParameterTypeStringList
			input.Value = aws.String(strings.Join(v.Values, ","))
		} else {
			if v.Value == "" {
				continue
			}
			input.Type = ssmtypes.ParameterTypeString
			input.Value = aws.String(v.Value)
		}

		if _, err := p.ssm.PutParameter(ctx, input); err != nil {
			return fmt.Errorf("failed to put parameter %s: %w", deref(input.Name), err)
		}
		written++
	}

	log.Info("published outputs", "prefix", prefix, "parameters", written)
	return nil
}
