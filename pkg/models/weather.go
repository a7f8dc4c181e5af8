package models

import (
	"strings"
	"time"
)

// Condition is the closed set of weather conditions the rule tables know about.
// Provider-specific condition strings are normalized through ConditionFromProvider.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionDrizzle      Condition = "drizzle"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionSnow         Condition = "snow"
	ConditionFog          Condition = "fog"
	ConditionUnknown      Condition = "unknown"
)

// ConditionFromProvider maps an OpenWeather condition group
// (the "main" field, e.g. "Rain", "Mist") to a Condition.
func ConditionFromProvider(main string) Condition {
	switch strings.ToLower(strings.TrimSpace(main)) {
	case "clear":
		return ConditionClear
	case "clouds":
		return ConditionClouds
	case "rain":
		return ConditionRain
	case "drizzle":
		return ConditionDrizzle
	case "thunderstorm":
		return ConditionThunderstorm
	case "snow":
		return ConditionSnow
	case "mist", "fog", "haze", "smoke", "dust", "sand", "ash", "squall", "tornado":
		return ConditionFog
	}
	return ConditionUnknown
}

// Precipitating reports whether the condition itself implies falling water.
func (c Condition) Precipitating() bool {
	switch c {
	case ConditionRain, ConditionDrizzle, ConditionThunderstorm:
		return true
	}
	return false
}

// Coordinates is a geographic point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeoPoint is a geocoded place: coordinates plus the name the
// provider resolved the query to.
type GeoPoint struct {
	Coordinates
	Name    string
	Country string
}

// DisplayName returns "Name, Country" or just the name when the
// country code is missing.
func (p GeoPoint) DisplayName() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}

// WeatherSnapshot is a single weather reading, either an intraday sample
// or a daily aggregate. Immutable once fetched.
type WeatherSnapshot struct {
	LocationName      string
	Timestamp         time.Time
	TemperatureC      float64
	FeelsLikeC        float64
	TempMinC          float64
	TempMaxC          float64
	Condition         Condition
	HumidityPct       int
	WindSpeedMS       float64
	PrecipProbability float64 // 0..1
}

// ForecastSeries is an ordered run of daily aggregates, soonest day first,
// at most five entries.
type ForecastSeries []WeatherSnapshot
