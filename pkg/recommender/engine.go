// Package recommender sequences the pipeline: interpret the query,
// resolve the weather, build the outfit, compose the narrative.
package recommender

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"weatherwear/pkg/metrics"
	"weatherwear/pkg/models"
	"weatherwear/pkg/outfit"
	"weatherwear/pkg/query"
)

// Resolver is the weather resolution step.
type Resolver interface {
	Resolve(ctx context.Context, q models.Query, coords models.Coordinates, wantSeries bool) (models.WeatherSnapshot, models.ForecastSeries, error)
}

// Composer is the narrative enrichment step. It never fails.
type Composer interface {
	Compose(ctx context.Context, o models.OutfitRecommendation, w models.WeatherSnapshot) (string, bool)
}

// Request is one recommendation call.
type Request struct {
	RawText      string
	Style        models.Style
	WantForecast bool
	// Coordinates is the caller's position for locality queries;
	// nil falls back to the configured default.
	Coordinates *models.Coordinates
}

// Engine owns the request-scoped pipeline. It keeps no per-request
// state, so a single Engine serves concurrent requests.
type Engine struct {
	resolver      Resolver
	composer      Composer
	catalog       outfit.Catalog
	reg           *metrics.Registry
	defaultCoords models.Coordinates
	clock         func() time.Time
}

func New(resolver Resolver, composer Composer, catalog outfit.Catalog, reg *metrics.Registry, defaultCoords models.Coordinates) *Engine {
	return &Engine{
		resolver:      resolver,
		composer:      composer,
		catalog:       catalog,
		reg:           reg,
		defaultCoords: defaultCoords,
		clock:         time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// Generate runs the pipeline. Only parse, location-not-found and
// weather-provider failures propagate; narrative failure degrades to the
// deterministic template and is absorbed here.
func (e *Engine) Generate(ctx context.Context, req Request) (*models.RecommendationResult, error) {
	q, err := query.Interpret(req.RawText, e.clock())
	if err != nil {
		e.countError(ctx, "parse")
		return nil, err
	}

	style, _ := models.ParseStyle(string(req.Style))

	coords := e.defaultCoords
	if req.Coordinates != nil {
		coords = *req.Coordinates
	}

	snap, series, err := e.resolver.Resolve(ctx, q, coords, req.WantForecast)
	if err != nil {
		e.countError(ctx, errorKind(err))
		return nil, err
	}

	rec := e.catalog.Recommend(snap, style)

	narrative, fromProvider := e.composer.Compose(ctx, rec, snap)
	if !fromProvider && e.reg != nil {
		e.reg.Inc(ctx, "narrative_fallback_total", map[string]string{}, 1)
	}

	if e.reg != nil {
		e.reg.Inc(ctx, "recommendations_total", map[string]string{"style": string(style)}, 1)
	}
	log.Ctx(ctx).Info().
		Str("location", snap.LocationName).
		Str("style", string(style)).
		Bool("forecast", req.WantForecast).
		Bool("narrative_generated", fromProvider).
		Msg("recommendation produced")

	result := &models.RecommendationResult{
		Weather:   snap,
		Outfit:    rec,
		Narrative: narrative,
	}
	if req.WantForecast {
		result.Forecast = series
	}
	return result, nil
}

func (e *Engine) countError(ctx context.Context, kind string) {
	if e.reg != nil {
		e.reg.Inc(ctx, "recommendation_errors_total", map[string]string{"kind": kind}, 1)
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrLocationNotFound):
		return "location_not_found"
	case errors.Is(err, models.ErrWeatherProviderUnavailable):
		return "weather_provider"
	default:
		return "other"
	}
}
