package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP listen address, e.g. ":8080"
	Address string `env:"ADDRESS" envDefault:":8080"`

	Weather   WeatherConfig
	Narrative NarrativeConfig

	// Side cache for geocoding results; weather itself is never cached.
	GeocodeCacheTTL time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"10m"`

	// Fallback position for "here" queries when the caller supplies no
	// coordinates.
	DefaultLocationName string  `env:"DEFAULT_LOCATION_NAME" envDefault:"New York"`
	DefaultLatitude     float64 `env:"DEFAULT_LATITUDE" envDefault:"40.7128"`
	DefaultLongitude    float64 `env:"DEFAULT_LONGITUDE" envDefault:"-74.0060"`
}

// WeatherConfig covers the OpenWeather geocoding and forecast endpoints.
type WeatherConfig struct {
	APIKey  string        `env:"OPENWEATHERMAP_API_KEY"`
	BaseURL string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	Timeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
}

// NarrativeConfig covers the OpenAI-compatible text-generation endpoint.
// The defaults target Groq, which speaks the same protocol.
type NarrativeConfig struct {
	APIKey  string        `env:"LLM_API_KEY"`
	BaseURL string        `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model   string        `env:"LLM_MODEL" envDefault:"llama-3.1-70b-versatile"`
	Timeout time.Duration `env:"NARRATIVE_TIMEOUT" envDefault:"6s"`
}

// Load loads .env (if present) and parses environment variables into Config.
func Load() (Config, error) {
	// Load .env if available; ignore error if file does not exist
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
