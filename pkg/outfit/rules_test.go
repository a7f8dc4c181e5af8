package outfit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"weatherwear/pkg/models"
	"weatherwear/pkg/outfit"
)

func snapshot(feelsLike float64) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		LocationName: "Testville",
		TemperatureC: feelsLike,
		FeelsLikeC:   feelsLike,
		Condition:    models.ConditionClear,
		HumidityPct:  50,
		WindSpeedMS:  3,
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	snap := snapshot(12)
	snap.Condition = models.ConditionRain
	snap.PrecipProbability = 0.7
	snap.WindSpeedMS = 9

	first := outfit.Recommend(snap, models.StyleSporty)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, outfit.Recommend(snap, models.StyleSporty))
	}
}

func TestBands_ContiguousAndExhaustive(t *testing.T) {
	c := outfit.DefaultCatalog()

	prev := math.Inf(-1)
	for _, b := range c.Bands {
		require.Greater(t, b.Max, prev, "band %s must raise the upper bound", b.Name)
		prev = b.Max
	}
	require.True(t, math.IsInf(c.Bands[len(c.Bands)-1].Max, 1), "last band must be unbounded")

	// Every probe temperature lands in exactly one band.
	for temp := -80.0; temp <= 60.0; temp += 0.5 {
		band := c.BandFor(temp)
		count := 0
		for _, b := range c.Bands {
			if b.Name == band.Name {
				count++
			}
		}
		require.Equal(t, 1, count, "temp %.1f", temp)
	}
}

func TestBandFor_BoundariesAndNaN(t *testing.T) {
	c := outfit.DefaultCatalog()

	require.Equal(t, "freezing", c.BandFor(-0.01).Name)
	require.Equal(t, "cold", c.BandFor(0).Name)
	require.Equal(t, "cool", c.BandFor(10).Name)
	require.Equal(t, "hot", c.BandFor(30).Name)
	require.Equal(t, "hot", c.BandFor(100).Name)
	require.Equal(t, "freezing", c.BandFor(-100).Name)

	// Unknown input degrades to the most conservative bracket.
	require.Equal(t, "freezing", c.BandFor(math.NaN()).Name)
}

func TestRecommend_RainAddsShellAndWarning(t *testing.T) {
	snap := snapshot(15)
	snap.PrecipProbability = 0.8

	rec := outfit.Recommend(snap, models.StyleCasual)

	var hasShell bool
	for _, g := range rec.Layers {
		if g.Slot == models.SlotShell {
			hasShell = true
		}
	}
	require.True(t, hasShell)
	require.Contains(t, rec.Accessories, "compact umbrella")
	require.NotEmpty(t, rec.Warnings)
}

func TestRecommend_LowRainChanceNoShell(t *testing.T) {
	snap := snapshot(15)
	snap.PrecipProbability = 0.3

	rec := outfit.Recommend(snap, models.StyleCasual)
	for _, g := range rec.Layers {
		require.NotEqual(t, models.SlotShell, g.Slot)
	}
	require.NotContains(t, rec.Accessories, "compact umbrella")
}

func TestRecommend_SnowOverridesFootwear(t *testing.T) {
	snap := snapshot(-5)
	snap.Condition = models.ConditionSnow

	for _, style := range []models.Style{models.StyleCasual, models.StyleFormal, models.StyleSporty} {
		rec := outfit.Recommend(snap, style)
		require.Equal(t, "waterproof insulated boots", rec.Footwear, "style %s", style)
		require.Contains(t, rec.Accessories, "warm hat")
		require.Contains(t, rec.Accessories, "insulated gloves")
	}
}

func TestRecommend_WindAdvisory(t *testing.T) {
	snap := snapshot(18)
	snap.WindSpeedMS = 12

	rec := outfit.Recommend(snap, models.StyleCasual)
	require.Contains(t, rec.Accessories, "light windbreaker")

	found := false
	for _, w := range rec.Warnings {
		if len(w) > 0 && w[:4] == "Wind" {
			found = true
		}
	}
	require.True(t, found, "expected a wind warning, got %v", rec.Warnings)
}

func TestRecommend_HumidityAdvisory(t *testing.T) {
	snap := snapshot(27)
	snap.HumidityPct = 85

	rec := outfit.Recommend(snap, models.StyleCasual)
	require.NotEmpty(t, rec.Warnings)
}

func TestRecommend_StyleChangesGarmentsNotWarmth(t *testing.T) {
	snap := snapshot(5)

	casual := outfit.Recommend(snap, models.StyleCasual)
	formal := outfit.Recommend(snap, models.StyleFormal)
	sporty := outfit.Recommend(snap, models.StyleSporty)

	// Same layer structure, different garments.
	require.Equal(t, len(casual.Layers), len(formal.Layers))
	require.Equal(t, len(casual.Layers), len(sporty.Layers))
	require.NotEqual(t, casual.Layers, formal.Layers)
	require.NotEqual(t, casual.Layers, sporty.Layers)

	// Warnings derive from the weather, not the style.
	require.Equal(t, casual.Warnings, formal.Warnings)
	require.Equal(t, casual.Warnings, sporty.Warnings)
}

func TestRecommend_UnknownStyleDegradesToCasual(t *testing.T) {
	snap := snapshot(20)
	rec := outfit.Recommend(snap, models.Style("avant-garde"))
	require.Equal(t, outfit.Recommend(snap, models.StyleCasual).Layers, rec.Layers)
}

func TestRecommend_WarningsInRuleOrder(t *testing.T) {
	snap := snapshot(2)
	snap.Condition = models.ConditionSnow
	snap.PrecipProbability = 0.9
	snap.WindSpeedMS = 10
	snap.HumidityPct = 90

	rec := outfit.Recommend(snap, models.StyleCasual)
	require.Len(t, rec.Warnings, 4)
	require.Contains(t, rec.Warnings[0], "Rain")
	require.Contains(t, rec.Warnings[1], "Snow")
	require.Contains(t, rec.Warnings[2], "Wind")
	require.Contains(t, rec.Warnings[3], "humidity")
}

func TestRecommend_ClearDayDefaultAccessory(t *testing.T) {
	rec := outfit.Recommend(snapshot(22), models.StyleCasual)
	require.Equal(t, []string{"sunglasses"}, rec.Accessories)
	require.Empty(t, rec.Warnings)
}
