package geocode

import (
	"context"

	"weatherwear/pkg/models"
)

// Cache defines a TTL-bound side cache of geocoding results. Weather data
// itself is never cached; only the place-name to coordinates mapping is,
// since it changes on a far slower timescale.
type Cache interface {
	// Get returns the cached point for a place name. The boolean
	// indicates presence of a live entry.
	Get(ctx context.Context, place string) (models.GeoPoint, bool)
	// Put stores a geocoded point under the normalized place name.
	Put(ctx context.Context, place string, pt models.GeoPoint)
	// Forget removes an entry before its TTL expires.
	Forget(ctx context.Context, place string)
}
