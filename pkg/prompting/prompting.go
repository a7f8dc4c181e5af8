// Package prompting holds the prompt text sent to the narrative provider.
package prompting

import (
	"fmt"
	"strings"

	"weatherwear/pkg/models"
)

// SystemPrompt returns the shared stylist instruction. The model gets
// the structured recommendation as ground truth and is asked to narrate
// it, not to invent a different outfit.
func SystemPrompt() string {
	return strings.TrimSpace(`
You are WeatherWear, a fashion stylist who writes short, vivid outfit
narratives. You receive the weather and an already-decided outfit.
Describe the outfit, explain in one or two sentences why it suits the
weather, and add one practical layering or packing tip.

Rules:
1. Keep every garment from the outfit you were given; do not replace items.
2. Mention each warning you were given, rephrased naturally.
3. Plain text only, no markdown, no emoji, at most 120 words.
4. Address the reader directly and keep the tone confident and warm.
`)
}

// UserPrompt serializes the weather context and the structured outfit
// into the request body for the stylist.
func UserPrompt(outfit models.OutfitRecommendation, weather models.WeatherSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Location: %s\n", weather.LocationName)
	fmt.Fprintf(&b, "Weather: %s, %.1f°C (feels like %.1f°C), humidity %d%%, wind %.1f m/s, chance of precipitation %d%%\n",
		weather.Condition, weather.TemperatureC, weather.FeelsLikeC,
		weather.HumidityPct, weather.WindSpeedMS, int(weather.PrecipProbability*100))
	fmt.Fprintf(&b, "Style preference: %s\n", outfit.Style)

	b.WriteString("Outfit:\n")
	for _, g := range outfit.Layers {
		fmt.Fprintf(&b, "- %s: %s\n", g.Slot, g.Item)
	}
	fmt.Fprintf(&b, "- footwear: %s\n", outfit.Footwear)
	if len(outfit.Accessories) > 0 {
		fmt.Fprintf(&b, "- accessories: %s\n", strings.Join(outfit.Accessories, ", "))
	}
	for _, w := range outfit.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", w)
	}

	return b.String()
}
