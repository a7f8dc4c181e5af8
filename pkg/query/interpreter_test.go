package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"weatherwear/pkg/models"
	"weatherwear/pkg/query"
)

// A Wednesday, so weekday offsets are predictable.
var wednesday = time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)

func TestInterpret_LocationAndTomorrow(t *testing.T) {
	q, err := query.Interpret("Tokyo tomorrow", wednesday)
	require.NoError(t, err)
	require.Equal(t, "Tokyo", q.LocationToken)
	require.Equal(t, models.RelativeDay(1), q.Target)
	require.False(t, q.UseCurrentLocation)
}

func TestInterpret_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := query.Interpret(raw, wednesday)
		var parseErr *models.ParseError
		require.ErrorAs(t, err, &parseErr, "input %q", raw)
	}
}

func TestInterpret_NoTemporalCueDefaultsToNow(t *testing.T) {
	for _, raw := range []string{"New York", "paris", "Rio de Janeiro", "London please"} {
		q, err := query.Interpret(raw, wednesday)
		require.NoError(t, err)
		require.Equal(t, models.Now(), q.Target, "input %q", raw)
	}
}

func TestInterpret_LocalityCues(t *testing.T) {
	cases := []string{
		"here",
		"HERE",
		"My Location",
		"current location",
		"what should I wear here tomorrow",
		"where i am",
	}
	for _, raw := range cases {
		q, err := query.Interpret(raw, wednesday)
		require.NoError(t, err)
		require.True(t, q.UseCurrentLocation, "input %q", raw)
	}
}

func TestInterpret_HereDoesNotMatchInsideWords(t *testing.T) {
	q, err := query.Interpret("Atherestone", wednesday)
	require.NoError(t, err)
	require.False(t, q.UseCurrentLocation)
	require.Equal(t, "Atherestone", q.LocationToken)
}

func TestInterpret_RelativeCues(t *testing.T) {
	cases := []struct {
		raw    string
		target models.TimeTarget
	}{
		{"London today", models.RelativeDay(0)},
		{"London tonight", models.RelativeDay(0)},
		{"London tomorrow", models.RelativeDay(1)},
		{"London tomorrow evening", models.RelativeDay(1)},
		{"London day after tomorrow", models.RelativeDay(2)},
	}
	for _, tc := range cases {
		q, err := query.Interpret(tc.raw, wednesday)
		require.NoError(t, err)
		require.Equal(t, tc.target, q.Target, "input %q", tc.raw)
		require.Equal(t, "London", q.LocationToken, "input %q", tc.raw)
	}
}

func TestInterpret_WeekdayNames(t *testing.T) {
	// Reference day is Wednesday: Friday is +2, Saturday +3.
	q, err := query.Interpret("Oslo friday", wednesday)
	require.NoError(t, err)
	require.Equal(t, models.RelativeDay(2), q.Target)
	require.Equal(t, "Oslo", q.LocationToken)

	// Tuesday is 6 days ahead, beyond the forecast window; it clamps.
	q, err = query.Interpret("Oslo tuesday", wednesday)
	require.NoError(t, err)
	require.Equal(t, models.RelativeDay(4), q.Target)
}

func TestInterpret_WeekdayBeatsRelativeTerm(t *testing.T) {
	q, err := query.Interpret("Berlin friday tomorrow", wednesday)
	require.NoError(t, err)
	require.Equal(t, models.RelativeDay(2), q.Target)
	require.Equal(t, "Berlin", q.LocationToken)
}

func TestInterpret_FillerWordsStripped(t *testing.T) {
	q, err := query.Interpret("weather in New York tomorrow", wednesday)
	require.NoError(t, err)
	require.Equal(t, "New York", q.LocationToken)
	require.Equal(t, models.RelativeDay(1), q.Target)
}

func TestInterpret_OnlyTemporalFallsBackToWholeText(t *testing.T) {
	// Nothing is left after stripping and no locality cue matched, so
	// the whole input becomes the location and the target resets to Now.
	q, err := query.Interpret("tomorrow", wednesday)
	require.NoError(t, err)
	require.Equal(t, "tomorrow", q.LocationToken)
	require.Equal(t, models.Now(), q.Target)
	require.False(t, q.UseCurrentLocation)
}

func TestInterpret_LocalityWithTemporal(t *testing.T) {
	q, err := query.Interpret("here tomorrow", wednesday)
	require.NoError(t, err)
	require.True(t, q.UseCurrentLocation)
	require.Equal(t, models.RelativeDay(1), q.Target)
	require.Empty(t, q.LocationToken)
}

func TestInterpret_PunctuationTolerated(t *testing.T) {
	q, err := query.Interpret("Tokyo, tomorrow!", wednesday)
	require.NoError(t, err)
	require.Equal(t, "Tokyo", q.LocationToken)
	require.Equal(t, models.RelativeDay(1), q.Target)
}
