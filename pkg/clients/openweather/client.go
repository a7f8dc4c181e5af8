// Package openweather is a thin typed client for the OpenWeather
// geocoding and 5-day/3-hour forecast endpoints. It normalizes provider
// payloads into the domain snapshot type; selection and aggregation
// happen in the resolver.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weatherwear/pkg/models"
)

const (
	geocodePath  = "/geo/1.0/direct"
	forecastPath = "/data/2.5/forecast"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a client for the given base URL and API key.
// timeout bounds every request issued through the client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type geocodeEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"` // shift from UTC in seconds
	} `json:"city"`
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Pop float64 `json:"pop"`
}

// Geocode resolves a place name to coordinates.
// Returns models.ErrLocationNotFound when the provider has no match.
func (c *Client) Geocode(ctx context.Context, place string) (models.GeoPoint, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var entries []geocodeEntry
	if err := c.getJSON(ctx, geocodePath, q, &entries); err != nil {
		return models.GeoPoint{}, err
	}
	if len(entries) == 0 {
		return models.GeoPoint{}, fmt.Errorf("geocode %q: %w", place, models.ErrLocationNotFound)
	}

	e := entries[0]
	return models.GeoPoint{
		Coordinates: models.Coordinates{Latitude: e.Lat, Longitude: e.Lon},
		Name:        e.Name,
		Country:     e.Country,
	}, nil
}

// Forecast fetches the 5-day/3-hour forecast for the given coordinates.
// Sample timestamps are shifted into the city's local zone so that day
// grouping downstream follows local calendar days.
func (c *Client) Forecast(ctx context.Context, coords models.Coordinates) ([]models.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", coords.Latitude))
	q.Set("lon", fmt.Sprintf("%.4f", coords.Longitude))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	var resp forecastResponse
	if err := c.getJSON(ctx, forecastPath, q, &resp); err != nil {
		return nil, err
	}

	zone := time.FixedZone("local", resp.City.Timezone)
	name := resp.City.Name
	if resp.City.Country != "" {
		name += ", " + resp.City.Country
	}

	samples := make([]models.WeatherSnapshot, 0, len(resp.List))
	for _, e := range resp.List {
		condition := models.ConditionUnknown
		if len(e.Weather) > 0 {
			condition = models.ConditionFromProvider(e.Weather[0].Main)
		}
		samples = append(samples, models.WeatherSnapshot{
			LocationName:      name,
			Timestamp:         time.Unix(e.Dt, 0).In(zone),
			TemperatureC:      e.Main.Temp,
			FeelsLikeC:        e.Main.FeelsLike,
			TempMinC:          e.Main.TempMin,
			TempMaxC:          e.Main.TempMax,
			Condition:         condition,
			HumidityPct:       e.Main.Humidity,
			WindSpeedMS:       e.Wind.Speed,
			PrecipProbability: e.Pop,
		})
	}
	return samples, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrWeatherProviderUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The forecast endpoint answers 404 for unknown places when
		// queried by name; treat it as no geocoding match.
		return models.ErrLocationNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: status %d: %s", models.ErrWeatherProviderUnavailable, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", models.ErrWeatherProviderUnavailable, err)
	}
	return nil
}
