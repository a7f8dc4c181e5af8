package models

// LayerSlot identifies where a garment sits in the layering order.
type LayerSlot string

const (
	SlotShell  LayerSlot = "shell"
	SlotTop    LayerSlot = "top"
	SlotMid    LayerSlot = "mid"
	SlotBottom LayerSlot = "bottom"
)

// Garment is a single recommended clothing item.
type Garment struct {
	Slot LayerSlot `json:"slot"`
	Item string    `json:"item"`
}

// OutfitRecommendation is the structured result of the rule engine.
// Built deterministically from one WeatherSnapshot and a style;
// never mutated after construction.
type OutfitRecommendation struct {
	Style       Style     `json:"style"`
	Layers      []Garment `json:"layers"`
	Footwear    string    `json:"footwear"`
	Accessories []string  `json:"accessories"`
	Warnings    []string  `json:"warnings"`
}

// RecommendationResult is the top-level response of the pipeline.
// Forecast is nil unless the caller asked for it. Narrative is always
// non-empty: the composer falls back to a deterministic template when
// the generative provider is unavailable.
type RecommendationResult struct {
	Weather   WeatherSnapshot
	Outfit    OutfitRecommendation
	Forecast  ForecastSeries
	Narrative string
}
