// Package outfit maps a weather snapshot and style preference to a
// structured outfit recommendation. Pure data-driven rules, no I/O.
package outfit

import (
	"math"

	"weatherwear/pkg/models"
)

// Garments is one band's clothing set for a single style. Mid may be
// empty in warm bands.
type Garments struct {
	Top      string
	Mid      string
	Bottom   string
	Footwear string
}

// Band is a feels-like temperature bracket. Max is the exclusive upper
// bound in Celsius; bands are contiguous and the last one is unbounded,
// so every real temperature lands in exactly one band.
type Band struct {
	Name     string
	Max      float64
	Wardrobe map[models.Style]Garments
}

// Catalog bundles the band table and the condition-rule thresholds.
// Treated as configuration, not logic: products can swap cut points and
// garment names without touching the engine.
type Catalog struct {
	Bands               []Band
	RainChanceCutoff    float64 // precipitation probability, 0..1
	WindAdvisoryMS      float64 // meters per second
	HumidityAdvisoryPct int
}

// BandFor returns the band covering the given feels-like temperature.
// NaN degrades to the coldest band, the most conservative choice.
func (c Catalog) BandFor(feelsLikeC float64) Band {
	if math.IsNaN(feelsLikeC) {
		return c.Bands[0]
	}
	for _, b := range c.Bands {
		if feelsLikeC < b.Max {
			return b
		}
	}
	return c.Bands[len(c.Bands)-1]
}

// DefaultCatalog returns the stock band table.
func DefaultCatalog() Catalog {
	return Catalog{
		RainChanceCutoff:    0.5,
		WindAdvisoryMS:      8,
		HumidityAdvisoryPct: 70,
		Bands: []Band{
			{
				Name: "freezing",
				Max:  0,
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"insulated parka", "thick wool sweater", "thermal-lined pants", "insulated winter boots"},
					models.StyleFormal: {"wool overcoat", "heavy knit over a dress shirt", "flannel-lined dress trousers", "leather winter boots"},
					models.StyleSporty: {"insulated running jacket", "thermal base layer", "fleece-lined track pants", "winter trail shoes"},
				},
			},
			{
				Name: "cold",
				Max:  10,
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"warm coat", "thick sweater or hoodie", "warm pants or dark jeans", "insulated boots"},
					models.StyleFormal: {"tailored wool coat", "blazer over a button-down shirt", "dress pants", "oxford shoes"},
					models.StyleSporty: {"athletic shell jacket", "long-sleeve training top", "track pants", "cross-training shoes"},
				},
			},
			{
				Name: "cool",
				Max:  18,
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"light jacket", "warm sweater or fleece", "jeans or comfortable trousers", "closed-toe shoes or ankle boots"},
					models.StyleFormal: {"blazer or structured cardigan", "button-down shirt", "dress pants or pencil skirt", "oxford shoes or low heels"},
					models.StyleSporty: {"zip-up hoodie", "athletic long-sleeve", "athletic leggings or joggers", "running shoes"},
				},
			},
			{
				Name: "mild",
				Max:  24,
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"long-sleeve shirt", "light denim jacket", "jeans", "sneakers"},
					models.StyleFormal: {"button-down shirt or tailored blouse", "light blazer", "chinos or a midi skirt", "loafers"},
					models.StyleSporty: {"breathable training tee", "light track jacket", "joggers or training shorts", "running shoes"},
				},
			},
			{
				Name: "warm",
				Max:  30,
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"cotton t-shirt or light blouse", "", "comfortable chinos or light jeans", "canvas sneakers or loafers"},
					models.StyleFormal: {"lightweight dress shirt or silk blouse", "", "dress pants or a midi skirt", "leather loafers or heeled sandals"},
					models.StyleSporty: {"moisture-wicking athletic top", "", "athletic shorts or leggings", "running shoes"},
				},
			},
			{
				Name: "hot",
				Max:  math.Inf(1),
				Wardrobe: map[models.Style]Garments{
					models.StyleCasual: {"light cotton shirt or breathable tank top", "", "lightweight shorts or linen pants", "breathable sneakers or sandals"},
					models.StyleFormal: {"breathable linen shirt or sleeveless blouse", "", "linen trousers or a light skirt", "leather sandals or perforated loafers"},
					models.StyleSporty: {"breathable mesh tank", "", "running shorts", "ventilated training shoes"},
				},
			},
		},
	}
}
