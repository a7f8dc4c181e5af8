package models

import "errors"

// Sentinel errors for the fatal failure modes of the pipeline.
// Callers check them with errors.Is; the narrative provider has no
// sentinel because its failures are absorbed, never surfaced.
var (
	// ErrLocationNotFound means geocoding produced no match.
	ErrLocationNotFound = errors.New("location not found")

	// ErrWeatherProviderUnavailable means the weather provider failed
	// after the single in-layer retry.
	ErrWeatherProviderUnavailable = errors.New("weather provider unavailable")
)

// ParseError reports malformed query input. User-correctable.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse query: " + e.Reason
}
