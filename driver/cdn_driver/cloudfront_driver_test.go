package cdn_driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudFront struct {
	input *cloudfront.CreateInvalidationInput
	err   error
}

func (f *fakeCloudFront) CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &cloudfront.CreateInvalidationOutput{Invalidation: &types.Invalidation{Id: aws.String("I123")}}, nil
}

func TestInvalidate(t *testing.T) {
	fake := &fakeCloudFront{}
	d := NewCloudFrontDriver(fake, "E1ABC")
	d.now = func() time.Time { return time.Unix(0, 42) }

	id, err := d.Invalidate(context.Background(), []string{"/dev/v1/config*"})
	require.NoError(t, err)
	assert.Equal(t, "I123", id)

	require.NotNil(t, fake.input)
	assert.Equal(t, "E1ABC", aws.ToString(fake.input.DistributionId))
	assert.Equal(t, "gameshub-42", aws.ToString(fake.input.InvalidationBatch.CallerReference))
	assert.Equal(t, int32(1), aws.ToInt32(fake.input.InvalidationBatch.Paths.Quantity))
	assert.Equal(t, []string{"/dev/v1/config*"}, fake.input.InvalidationBatch.Paths.Items)
}

func TestInvalidate_NoPaths(t *testing.T) {
	fake := &fakeCloudFront{}
	id, err := NewCloudFrontDriver(fake, "E1ABC").Invalidate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Nil(t, fake.input)
}

func TestInvalidate_Error(t *testing.T) {
	fake := &fakeCloudFront{err: errors.New("AccessDenied")}
	_, err := NewCloudFrontDriver(fake, "E1ABC").Invalidate(context.Background(), []string{"/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccessDenied")
}
