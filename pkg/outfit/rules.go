package outfit

import (
	"fmt"

	"weatherwear/pkg/models"
)

// Recommend builds an outfit with the default catalog.
func Recommend(snap models.WeatherSnapshot, style models.Style) models.OutfitRecommendation {
	return DefaultCatalog().Recommend(snap, style)
}

// Recommend composes a recommendation in a fixed order: thermal base
// layers from the band table, condition-driven additions, style
// substitution of equivalent-warmth garments, then warnings in the
// order the triggering rules fired. Identical snapshot and style always
// produce an identical recommendation; unknown inputs degrade to the
// conservative bracket instead of failing.
func (c Catalog) Recommend(snap models.WeatherSnapshot, style models.Style) models.OutfitRecommendation {
	if _, known := models.ParseStyle(string(style)); !known {
		style = models.StyleCasual
	}

	band := c.BandFor(snap.FeelsLikeC)

	// Thermal base: the casual wardrobe is the canonical set for the
	// band; style swaps garments later without changing warmth.
	base := band.Wardrobe[models.StyleCasual]
	rec := models.OutfitRecommendation{Style: style}
	rec.Layers = baseLayers(base)
	rec.Footwear = base.Footwear

	// Condition rules, fixed firing order.
	footwearLocked := false

	rainy := snap.Condition.Precipitating() || snap.PrecipProbability > c.RainChanceCutoff
	if rainy {
		rec.Layers = append(rec.Layers, models.Garment{Slot: models.SlotShell, Item: "waterproof rain shell"})
		rec.Accessories = append(rec.Accessories, "compact umbrella")
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("Rain likely (%d%% chance): keep a waterproof layer at hand.", int(snap.PrecipProbability*100)))
	}

	if snap.Condition == models.ConditionSnow {
		rec.Accessories = append(rec.Accessories, "warm hat", "insulated gloves")
		rec.Footwear = "waterproof insulated boots"
		footwearLocked = true
		rec.Warnings = append(rec.Warnings, "Snow on the ground: insulation and dry feet matter most.")
	}

	if snap.WindSpeedMS >= c.WindAdvisoryMS {
		rec.Accessories = append(rec.Accessories, "light windbreaker")
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("Wind around %.0f m/s: a wind-resistant outer layer will keep you comfortable.", snap.WindSpeedMS))
	}

	if snap.HumidityPct > c.HumidityAdvisoryPct {
		rec.Warnings = append(rec.Warnings, fmt.Sprintf("High humidity (%d%%): favor breathable, moisture-wicking fabrics.", snap.HumidityPct))
	}

	if len(rec.Accessories) == 0 {
		rec.Accessories = append(rec.Accessories, "sunglasses")
	}

	// Style substitution: same slots, same warmth, different garments.
	// Condition overrides (snow boots, rain shell) survive untouched.
	styled := band.Wardrobe[style]
	for i, g := range rec.Layers {
		switch g.Slot {
		case models.SlotTop:
			rec.Layers[i].Item = styled.Top
		case models.SlotMid:
			rec.Layers[i].Item = styled.Mid
		case models.SlotBottom:
			rec.Layers[i].Item = styled.Bottom
		}
	}
	if !footwearLocked {
		rec.Footwear = styled.Footwear
	}

	rec.Accessories = dedupe(rec.Accessories)
	return rec
}

// baseLayers orders the band garments top, mid, bottom, skipping slots
// the band leaves empty.
func baseLayers(g Garments) []models.Garment {
	layers := make([]models.Garment, 0, 3)
	if g.Top != "" {
		layers = append(layers, models.Garment{Slot: models.SlotTop, Item: g.Top})
	}
	if g.Mid != "" {
		layers = append(layers, models.Garment{Slot: models.SlotMid, Item: g.Mid})
	}
	if g.Bottom != "" {
		layers = append(layers, models.Garment{Slot: models.SlotBottom, Item: g.Bottom})
	}
	return layers
}

// dedupe removes repeated accessories, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
