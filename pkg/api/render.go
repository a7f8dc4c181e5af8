package api

import (
	"fmt"
	"strings"

	"weatherwear/pkg/models"
)

// renderWeather formats a snapshot as the plain-text block the form
// page displays.
func renderWeather(s models.WeatherSnapshot) string {
	lines := []string{
		fmt.Sprintf("Weather in %s:", s.LocationName),
		fmt.Sprintf("Temperature: %.1f°C (feels like %.1f°C)", s.TemperatureC, s.FeelsLikeC),
		fmt.Sprintf("Humidity: %d%%", s.HumidityPct),
		fmt.Sprintf("Wind: %.1f m/s", s.WindSpeedMS),
		fmt.Sprintf("Conditions: %s", titleCase(string(s.Condition))),
	}
	return strings.Join(lines, "\n")
}

// renderOutfit lists the structured recommendation followed by the
// narrative.
func renderOutfit(rec models.OutfitRecommendation, narrative string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Outfit recommendation (%s):\n", rec.Style)
	for _, g := range rec.Layers {
		fmt.Fprintf(&b, "- %s: %s\n", titleCase(string(g.Slot)), g.Item)
	}
	fmt.Fprintf(&b, "- Footwear: %s\n", rec.Footwear)
	if len(rec.Accessories) > 0 {
		fmt.Fprintf(&b, "- Accessories: %s\n", strings.Join(rec.Accessories, ", "))
	}
	for _, w := range rec.Warnings {
		fmt.Fprintf(&b, "! %s\n", w)
	}

	b.WriteString("\n")
	b.WriteString(narrative)
	return b.String()
}

// renderForecast prints one line per aggregated day, weekday name and
// the representative midday reading.
func renderForecast(series models.ForecastSeries) string {
	var b strings.Builder
	b.WriteString("5-Day Forecast:\n")
	for _, day := range series {
		fmt.Fprintf(&b, "%s (%s): %.1f°C (%.1f°C to %.1f°C), %s\n",
			day.Timestamp.Weekday(),
			day.Timestamp.Format("02 Jan"),
			day.TemperatureC, day.TempMinC, day.TempMaxC,
			titleCase(string(day.Condition)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// titleCase uppercases the first letter. The condition and slot names
// are ASCII identifiers, so a byte swap is enough.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
