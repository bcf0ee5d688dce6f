package cdn_gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/driver/cdn_driver"
	apperrors "gameshub/utils/errors"
)

type stubCloudFront struct {
	calls int
	err   error
}

func (s *stubCloudFront) CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &cloudfront.CreateInvalidationOutput{Invalidation: &types.Invalidation{Id: aws.String("INV1")}}, nil
}

func TestInvalidate_Disabled(t *testing.T) {
	g := NewCDNGateway(nil)
	assert.False(t, g.Enabled())

	id, err := g.Invalidate(context.Background(), []string{"/dev/v1/config*"})
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestInvalidate(t *testing.T) {
	stub := &stubCloudFront{}
	g := NewCDNGateway(cdn_driver.NewCloudFrontDriver(stub, "E1"))
	assert.True(t, g.Enabled())

	id, err := g.Invalidate(context.Background(), []string{"/dev/v1/config*"})
	require.NoError(t, err)
	assert.Equal(t, "INV1", id)
	assert.Equal(t, 1, stub.calls)
}

func TestInvalidate_Error(t *testing.T) {
	g := NewCDNGateway(cdn_driver.NewCloudFrontDriver(&stubCloudFront{err: errors.New("throttled")}, "E1"))

	_, err := g.Invalidate(context.Background(), []string{"/x"})
	var appErr *apperrors.AppContextError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeExternalAPI, appErr.Code)
}
