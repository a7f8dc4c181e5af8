// Package narrative turns a structured recommendation into prose,
// preferring a generative provider and falling back to a deterministic
// template when the provider is unavailable, slow or returns nothing.
package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"weatherwear/pkg/models"
	"weatherwear/pkg/prompting"
)

// TextGenerator is the narrow view of the generative provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// Composer enriches recommendations with prose. A nil generator is
// valid and means the fallback template is used for every request.
type Composer struct {
	gen     TextGenerator
	timeout time.Duration
}

func NewComposer(gen TextGenerator, timeout time.Duration) *Composer {
	return &Composer{gen: gen, timeout: timeout}
}

// Compose returns a non-empty narrative for the outfit. It never fails:
// provider errors, timeouts and empty output all degrade to the
// template. The boolean reports whether the provider's text was used.
func (c *Composer) Compose(ctx context.Context, outfit models.OutfitRecommendation, weather models.WeatherSnapshot) (string, bool) {
	if c.gen == nil {
		return Fallback(outfit, weather), false
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := c.gen.GenerateText(callCtx, prompting.SystemPrompt(), prompting.UserPrompt(outfit, weather))
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("narrative provider failed, using template")
		return Fallback(outfit, weather), false
	}
	if strings.TrimSpace(text) == "" {
		log.Ctx(ctx).Warn().Msg("narrative provider returned empty text, using template")
		return Fallback(outfit, weather), false
	}
	return text, true
}

// Fallback renders the deterministic narrative from the structured
// fields alone, enumerating layers, footwear, accessories and warnings
// in their existing order.
func Fallback(outfit models.OutfitRecommendation, weather models.WeatherSnapshot) string {
	var b strings.Builder

	items := make([]string, 0, len(outfit.Layers)+1)
	for _, g := range outfit.Layers {
		items = append(items, g.Item)
	}
	items = append(items, outfit.Footwear)

	fmt.Fprintf(&b, "For %s at %.0f°C (feels like %.0f°C, %s), wear: %s.",
		weather.LocationName, weather.TemperatureC, weather.FeelsLikeC,
		weather.Condition, strings.Join(items, ", "))

	if len(outfit.Accessories) > 0 {
		fmt.Fprintf(&b, " Bring along: %s.", strings.Join(outfit.Accessories, ", "))
	}
	for _, w := range outfit.Warnings {
		b.WriteString(" " + w)
	}

	b.WriteString(" " + layeringTip(weather))
	return b.String()
}

func layeringTip(weather models.WeatherSnapshot) string {
	switch {
	case weather.FeelsLikeC < 10:
		return "Layers you can add as the temperature drops are your best friend today."
	case weather.FeelsLikeC >= 25:
		return "Breathable fabrics will keep you comfortable through the warmest hours."
	default:
		return "Light layers you can add or remove will carry you through the day."
	}
}
