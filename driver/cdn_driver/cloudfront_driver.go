// Package cdn_driver requests CloudFront invalidations after cached content changes.
package cdn_driver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// InvalidationAPI is the part of the CloudFront client used here.
type InvalidationAPI interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

type CloudFrontDriver struct {
	client         InvalidationAPI
	distributionID string
	now            func() time.Time
}

func NewCloudFrontDriver(client InvalidationAPI, distributionID string) *CloudFrontDriver {
	return &CloudFrontDriver{client: client, distributionID: distributionID, now: time.Now}
}

// NewFromRegion loads AWS credentials from the default chain.
func NewFromRegion(ctx context.Context, region, distributionID string) (*CloudFrontDriver, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewCloudFrontDriver(cloudfront.NewFromConfig(awsCfg), distributionID), nil
}

// Name identifies the CDN in metrics.
func (d *CloudFrontDriver) Name() string {
	return "cloudfront"
}

// Invalidate requests invalidation of paths and returns the invalidation ID.
func (d *CloudFrontDriver) Invalidate(ctx context.Context, paths []string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}

	out, err := d.client.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(d.distributionID),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String("gameshub-" + strconv.FormatInt(d.now().UnixNano(), 10)),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(paths))),
				Items:    paths,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create invalidation: %w", err)
	}

	id := ""
	if out.Invalidation != nil {
		id = aws.ToString(out.Invalidation.Id)
	}
	slog.InfoContext(ctx, "cdn invalidation requested", "distribution", d.distributionID, "invalidation_id", id, "paths", paths)
	return id, nil
}
