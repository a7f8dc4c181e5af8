package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"weatherwear/pkg/api"
	"weatherwear/pkg/models"
	"weatherwear/pkg/recommender"
)

type stubEngine struct {
	lastReq recommender.Request
	result  *models.RecommendationResult
	err     error
}

func (s *stubEngine) Generate(_ context.Context, req recommender.Request) (*models.RecommendationResult, error) {
	s.lastReq = req
	return s.result, s.err
}

func stubResult(withForecast bool) *models.RecommendationResult {
	snap := models.WeatherSnapshot{
		LocationName: "Tokyo, JP",
		Timestamp:    time.Date(2025, 6, 19, 12, 0, 0, 0, time.UTC),
		TemperatureC: 26,
		FeelsLikeC:   27,
		Condition:    models.ConditionClear,
		HumidityPct:  55,
		WindSpeedMS:  3,
	}
	result := &models.RecommendationResult{
		Weather: snap,
		Outfit: models.OutfitRecommendation{
			Style: models.StyleCasual,
			Layers: []models.Garment{
				{Slot: models.SlotTop, Item: "cotton t-shirt"},
				{Slot: models.SlotBottom, Item: "light jeans"},
			},
			Footwear:    "canvas sneakers",
			Accessories: []string{"sunglasses"},
		},
		Narrative: "A bright day: keep it light and comfortable.",
	}
	if withForecast {
		result.Forecast = models.ForecastSeries{snap}
	}
	return result
}

func postForm(t *testing.T, engine api.RecommendationEngine, form url.Values) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	api.NewHandlers(engine).Register(e)

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRecommend_Success(t *testing.T) {
	engine := &stubEngine{result: stubResult(false)}

	rec, body := postForm(t, engine, url.Values{
		"location": {"Tokyo tomorrow"},
		"style":    {"casual"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["success"])
	require.Contains(t, body["weather"], "Tokyo, JP")
	require.Contains(t, body["outfit"], "cotton t-shirt")
	require.Contains(t, body["outfit"], "A bright day")
	require.NotContains(t, body, "forecast")
	require.NotContains(t, body, "error")
}

func TestRecommend_ForecastIncluded(t *testing.T) {
	engine := &stubEngine{result: stubResult(true)}

	_, body := postForm(t, engine, url.Values{
		"location": {"Tokyo"},
		"style":    {"casual"},
		"forecast": {"on"},
	})

	require.Equal(t, true, engine.lastReq.WantForecast)
	require.Contains(t, body["forecast"], "5-Day Forecast")
}

func TestRecommend_UnknownStyleNormalized(t *testing.T) {
	engine := &stubEngine{result: stubResult(false)}

	_, _ = postForm(t, engine, url.Values{
		"location": {"Tokyo"},
		"style":    {"steampunk"},
	})

	require.Equal(t, models.StyleCasual, engine.lastReq.Style)
}

func TestRecommend_CoordinatesParsed(t *testing.T) {
	engine := &stubEngine{result: stubResult(false)}

	_, _ = postForm(t, engine, url.Values{
		"location": {"here"},
		"style":    {"sporty"},
		"lat":      {"35.68"},
		"lon":      {"139.69"},
	})

	require.NotNil(t, engine.lastReq.Coordinates)
	require.InDelta(t, 35.68, engine.lastReq.Coordinates.Latitude, 0.001)
	require.InDelta(t, 139.69, engine.lastReq.Coordinates.Longitude, 0.001)
}

func TestRecommend_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"parse", &models.ParseError{Reason: "empty query"}, "Please enter a location."},
		{"not_found", models.ErrLocationNotFound, "Location not found"},
		{"provider", models.ErrWeatherProviderUnavailable, "temporarily unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := &stubEngine{err: tc.err}
			rec, body := postForm(t, engine, url.Values{"location": {"x"}})

			require.Equal(t, http.StatusOK, rec.Code, "errors travel in-band")
			require.Equal(t, false, body["success"])
			require.Contains(t, body["error"], tc.want)
			require.NotContains(t, body, "weather", "no partial result on fatal errors")
			require.NotContains(t, body, "outfit")
		})
	}
}

func TestIndex_ServesForm(t *testing.T) {
	e := echo.New()
	api.NewHandlers(&stubEngine{}).Register(e)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/recommend")
}
