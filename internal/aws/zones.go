package aws

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// AvailabilityZones returns the names of available zones in the client's region, sorted
func (c *Client) AvailabilityZones(ctx context.Context) ([]string, error) {
	output, err := c.EC2.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{"available"},
			},
			{
				Name:   aws.String("zone-type"),
				Values: []string{"availability-zone"},
			},
		},
	})
	if err != nil {
		return nil, classifyError(err)
	}

	zones := make([]string, 0, len(output.AvailabilityZones))
	for _, z := range output.AvailabilityZones {
		if name := deref(z.ZoneName); name != "" {
			zones = append(zones, name)
		}
	}
	sort.Strings(zones)

	return zones, nil
}
