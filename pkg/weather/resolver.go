// Package weather resolves a lexical location token and time target into
// concrete weather readings via an external provider.
package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"weatherwear/pkg/models"
	"weatherwear/pkg/repository/geocode"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (models.GeoPoint, error)
}

// ForecastProvider fetches ordered intraday samples for coordinates.
type ForecastProvider interface {
	Forecast(ctx context.Context, coords models.Coordinates) ([]models.WeatherSnapshot, error)
}

// Resolver maps a query to a weather snapshot and, on request, a daily
// forecast series. Provider calls are retried at most once, with no
// backoff; a second failure propagates.
type Resolver struct {
	geocoder Geocoder
	provider ForecastProvider
	cache    geocode.Cache // optional
	clock    func() time.Time
}

func NewResolver(g Geocoder, p ForecastProvider, cache geocode.Cache) *Resolver {
	return &Resolver{
		geocoder: g,
		provider: p,
		cache:    cache,
		clock:    time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (r *Resolver) WithClock(clock func() time.Time) *Resolver {
	r.clock = clock
	return r
}

// Resolve executes the locality-or-geocode step, fetches the forecast and
// selects the snapshot the time target asks for. coords supplies the
// caller's position for locality queries.
func (r *Resolver) Resolve(ctx context.Context, q models.Query, coords models.Coordinates, wantSeries bool) (models.WeatherSnapshot, models.ForecastSeries, error) {
	point, err := r.locate(ctx, q, coords)
	if err != nil {
		return models.WeatherSnapshot{}, nil, err
	}

	samples, err := retryOnce(func() ([]models.WeatherSnapshot, error) {
		return r.provider.Forecast(ctx, point.Coordinates)
	})
	if err != nil {
		return models.WeatherSnapshot{}, nil, fmt.Errorf("fetch forecast: %w", err)
	}
	if len(samples) == 0 {
		return models.WeatherSnapshot{}, nil, fmt.Errorf("fetch forecast: empty sample list: %w", models.ErrWeatherProviderUnavailable)
	}

	// Work in the provider's local zone so day boundaries follow the
	// target location, not the server.
	loc := samples[0].Timestamp.Location()
	now := r.clock().In(loc)

	snap := selectSnapshot(samples, q.Target, now)

	var series models.ForecastSeries
	if wantSeries {
		series = buildSeries(samples, now)
	}
	return snap, series, nil
}

func (r *Resolver) locate(ctx context.Context, q models.Query, coords models.Coordinates) (models.GeoPoint, error) {
	if q.UseCurrentLocation {
		return models.GeoPoint{Coordinates: coords}, nil
	}

	if r.cache != nil {
		if pt, ok := r.cache.Get(ctx, q.LocationToken); ok {
			return pt, nil
		}
	}

	pt, err := retryOnce(func() (models.GeoPoint, error) {
		return r.geocoder.Geocode(ctx, q.LocationToken)
	})
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			return models.GeoPoint{}, err
		}
		return models.GeoPoint{}, fmt.Errorf("geocode %q: %w", q.LocationToken, err)
	}

	if r.cache != nil {
		r.cache.Put(ctx, q.LocationToken, pt)
	}
	log.Ctx(ctx).Debug().Str("token", q.LocationToken).Str("resolved", pt.DisplayName()).Msg("location geocoded")
	return pt, nil
}

// retryOnce reruns f a single time when it fails with a transient
// provider error. Not-found results are final.
func retryOnce[T any](f func() (T, error)) (T, error) {
	v, err := f()
	if err != nil && errors.Is(err, models.ErrWeatherProviderUnavailable) {
		return f()
	}
	return v, err
}
