package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"weatherwear/pkg/models"
	"weatherwear/pkg/recommender"
)

// RecommendationEngine is the core pipeline as the HTTP layer sees it.
type RecommendationEngine interface {
	Generate(ctx context.Context, req recommender.Request) (*models.RecommendationResult, error)
}

// Handlers serves the form page and the recommendation endpoint.
type Handlers struct {
	engine RecommendationEngine
}

func NewHandlers(engine RecommendationEngine) *Handlers {
	return &Handlers{engine: engine}
}

// Register attaches routes to the echo instance.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.POST("/recommend", h.Recommend)
}

// recommendResponse mirrors the contract the form page consumes.
// Errors travel in-band: the endpoint always answers 200 with a JSON
// envelope, matching the form's fetch handling.
type recommendResponse struct {
	Success  bool   `json:"success"`
	Weather  string `json:"weather,omitempty"`
	Outfit   string `json:"outfit,omitempty"`
	Forecast string `json:"forecast,omitempty"`
	Location string `json:"location,omitempty"`
	Style    string `json:"style,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Index serves the query form.
func (h *Handlers) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}

// Recommend handles the form submission.
func (h *Handlers) Recommend(c echo.Context) error {
	ctx := c.Request().Context()

	rawQuery := c.FormValue("location")
	style := normalizeStyle(ctx, c.FormValue("style"))
	wantForecast := c.FormValue("forecast") == "on"

	req := recommender.Request{
		RawText:      rawQuery,
		Style:        style,
		WantForecast: wantForecast,
		Coordinates:  parseCoordinates(c),
	}

	result, err := h.engine.Generate(ctx, req)
	if err != nil {
		return c.JSON(http.StatusOK, recommendResponse{
			Success: false,
			Error:   userMessage(err),
		})
	}

	resp := recommendResponse{
		Success:  true,
		Weather:  renderWeather(result.Weather),
		Outfit:   renderOutfit(result.Outfit, result.Narrative),
		Location: result.Weather.LocationName,
		Style:    string(style),
	}
	if len(result.Forecast) > 0 {
		resp.Forecast = renderForecast(result.Forecast)
	}
	return c.JSON(http.StatusOK, resp)
}

// normalizeStyle validates the style preference, defaulting to casual
// with a log line for unknown values.
func normalizeStyle(ctx context.Context, raw string) models.Style {
	style, known := models.ParseStyle(raw)
	if !known && raw != "" {
		log.Ctx(ctx).Warn().Str("style", raw).Msg("unknown style preference, using casual")
	}
	return style
}

// parseCoordinates reads optional caller coordinates from the form.
// Both fields must parse for the pair to count.
func parseCoordinates(c echo.Context) *models.Coordinates {
	lat, errLat := strconv.ParseFloat(c.FormValue("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.FormValue("lon"), 64)
	if errLat != nil || errLon != nil {
		return nil
	}
	return &models.Coordinates{Latitude: lat, Longitude: lon}
}

// userMessage maps pipeline errors to human-readable text without
// leaking provider internals.
func userMessage(err error) string {
	var parseErr *models.ParseError
	switch {
	case errors.As(err, &parseErr):
		return "Please enter a location."
	case errors.Is(err, models.ErrLocationNotFound):
		return "Location not found. Please check the spelling and try again."
	case errors.Is(err, models.ErrWeatherProviderUnavailable):
		return "The weather service is temporarily unavailable. Please try again."
	}
	return "An unexpected error occurred. Please try again."
}
