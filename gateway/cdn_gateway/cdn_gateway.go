package cdn_gateway

import (
	"context"
	"log/slog"

	"gameshub/driver/cdn_driver"
	apperrors "gameshub/utils/errors"
)

// CDNGateway requests invalidations when a distribution is configured and
// does nothing otherwise.
type CDNGateway struct {
	driver *cdn_driver.CloudFrontDriver
}

func NewCDNGateway(driver *cdn_driver.CloudFrontDriver) *CDNGateway {
	return &CDNGateway{driver: driver}
}

func (g *CDNGateway) Enabled() bool {
	return g.driver != nil
}

func (g *CDNGateway) Invalidate(ctx context.Context, paths []string) (string, error) {
	if g.driver == nil || len(paths) == 0 {
		return "", nil
	}

	id, err := g.driver.Invalidate(ctx, paths)
	if err != nil {
		return "", apperrors.NewExternalAPIContextError("cdn invalidation failed", "gateway", "CDNGateway", "Invalidate", err,
			map[string]interface{}{"cdn": g.driver.Name(), "paths": paths})
	}
	slog.InfoContext(ctx, "cdn invalidation requested", "cdn", g.driver.Name(), "invalidation_id", id, "paths", paths)
	return id, nil
}
