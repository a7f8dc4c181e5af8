package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"weatherwear/pkg/api"
	"weatherwear/pkg/clients/openai"
	"weatherwear/pkg/clients/openweather"
	"weatherwear/pkg/config"
	"weatherwear/pkg/logging"
	"weatherwear/pkg/metrics"
	"weatherwear/pkg/middleware"
	"weatherwear/pkg/models"
	"weatherwear/pkg/narrative"
	"weatherwear/pkg/outfit"
	"weatherwear/pkg/recommender"
	"weatherwear/pkg/repository/geocode"
	"weatherwear/pkg/weather"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config failed")
	}

	reg := metrics.NewRegistry()

	owm := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
	cache := geocode.NewMemoryCache(cfg.GeocodeCacheTTL, reg)
	resolver := weather.NewResolver(owm, owm, cache)

	// The narrative provider is best-effort end to end: when the client
	// cannot even be constructed, the composer runs on its template.
	var gen narrative.TextGenerator
	if cfg.Narrative.APIKey != "" {
		llm, err := openai.NewClient(context.Background(), cfg.Narrative.APIKey, cfg.Narrative.BaseURL, cfg.Narrative.Model)
		if err != nil {
			log.Warn().Err(err).Msg("narrative provider unavailable, falling back to templates")
		} else {
			gen = llm
		}
	} else {
		log.Warn().Msg("LLM_API_KEY not set, narratives use the deterministic template")
	}
	composer := narrative.NewComposer(gen, cfg.Narrative.Timeout)

	engine := recommender.New(resolver, composer, outfit.DefaultCatalog(), reg, models.Coordinates{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	})
	log.Info().
		Str("default_location", cfg.DefaultLocationName).
		Float64("default_lat", cfg.DefaultLatitude).
		Float64("default_lon", cfg.DefaultLongitude).
		Msg("locality fallback configured")

	server := echo.New()
	server.HideBanner = true
	server.Use(echomw.Recover())
	server.Use(middleware.RequestLogger(reg))

	api.NewHandlers(engine).Register(server)
	server.GET("/metrics", reg.EchoHandlerText)
	server.GET("/metrics.json", reg.EchoHandlerJSON)

	go func() {
		log.Info().Str("address", cfg.Address).Msg("server starting")
		if err := server.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
