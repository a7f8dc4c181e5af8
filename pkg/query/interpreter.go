// Package query turns free-text requests like "Tokyo tomorrow" or "here"
// into a structured location token plus time target. Extraction is purely
// lexical; geocoding happens downstream.
package query

import (
	"strings"
	"time"

	"weatherwear/pkg/models"
)

// localityCues mark the query as referring to the caller's own position.
// Longer phrases first so "current location" wins over a bare "here".
var localityCues = [][]string{
	{"current", "location"},
	{"current", "position"},
	{"where", "i", "am"},
	{"my", "location"},
	{"my", "city"},
	{"my", "area"},
	{"here"},
}

// relativeCues map temporal phrases to day offsets. Checked in order
// after weekday names; qualified phrases come before their bare forms.
var relativeCues = []struct {
	phrase []string
	offset int
}{
	{[]string{"day", "after", "tomorrow"}, 2},
	{[]string{"tomorrow", "morning"}, 1},
	{[]string{"tomorrow", "afternoon"}, 1},
	{[]string{"tomorrow", "evening"}, 1},
	{[]string{"tomorrow", "night"}, 1},
	{[]string{"tomorrow"}, 1},
	{[]string{"tonight"}, 0},
	{[]string{"this", "evening"}, 0},
	{[]string{"this", "afternoon"}, 0},
	{[]string{"this", "morning"}, 0},
	{[]string{"in", "the", "morning"}, 0},
	{[]string{"today"}, 0},
}

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// fillerWords are dropped from the remainder before it becomes the
// location token.
var fillerWords = map[string]bool{
	"in": true, "at": true, "for": true, "on": true,
	"the": true, "a": true, "an": true,
	"weather": true,
}

// maxForecastOffset is the furthest day the 5-day forecast can serve.
const maxForecastOffset = 4

// words keeps the original spelling alongside a lowercased, punctuation
// stripped form used for cue matching, so the location token preserves
// the caller's casing.
type words struct {
	orig []string
	low  []string
}

// Interpret parses raw text into a Query. now anchors weekday resolution.
// It fails only when the input is empty or whitespace.
//
// Cue priority: weekday names, then relative terms, then default Now.
// Locality cues are recognized regardless of surrounding words. If
// stripping cues leaves nothing and no locality cue matched, the whole
// original text is taken as the location and the target defaults to Now.
func Interpret(raw string, now time.Time) (models.Query, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Query{}, &models.ParseError{Reason: "empty query"}
	}

	w := split(trimmed)
	target, w := extractTimeTarget(w, now)
	local, w := extractLocality(w)

	token := w.token()
	if token == "" && !local {
		// Favor producing a result over failing: take the whole
		// input as a place name and fall back to current conditions.
		token = trimmed
		target = models.Now()
	}

	return models.Query{
		RawText:            raw,
		LocationToken:      token,
		UseCurrentLocation: local,
		Target:             target,
	}, nil
}

func extractTimeTarget(w words, now time.Time) (models.TimeTarget, words) {
	for _, wd := range weekdays {
		if i := w.find([]string{wd.name}); i >= 0 {
			offset := int(wd.day-now.Weekday()+7) % 7
			if offset > maxForecastOffset {
				offset = maxForecastOffset
			}
			// Residual cues like "friday tomorrow" add nothing and
			// would pollute the location token.
			return models.RelativeDay(offset), stripRelativeCues(w.remove(i, 1))
		}
	}
	for _, cue := range relativeCues {
		if i := w.find(cue.phrase); i >= 0 {
			return models.RelativeDay(cue.offset), w.remove(i, len(cue.phrase))
		}
	}
	return models.Now(), w
}

func stripRelativeCues(w words) words {
	for _, cue := range relativeCues {
		for {
			i := w.find(cue.phrase)
			if i < 0 {
				break
			}
			w = w.remove(i, len(cue.phrase))
		}
	}
	return w
}

func extractLocality(w words) (bool, words) {
	for _, cue := range localityCues {
		if i := w.find(cue); i >= 0 {
			return true, w.remove(i, len(cue))
		}
	}
	return false, w
}

func split(s string) words {
	orig := strings.Fields(s)
	w := words{orig: make([]string, 0, len(orig)), low: make([]string, 0, len(orig))}
	for _, o := range orig {
		o = strings.Trim(o, ",.!?")
		if o == "" {
			continue
		}
		w.orig = append(w.orig, o)
		w.low = append(w.low, strings.ToLower(o))
	}
	return w
}

// find returns the index of the first occurrence of phrase as a run of
// whole words, or -1.
func (w words) find(phrase []string) int {
	for i := 0; i+len(phrase) <= len(w.low); i++ {
		match := true
		for j, p := range phrase {
			if w.low[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func (w words) remove(i, n int) words {
	return words{
		orig: append(append([]string{}, w.orig[:i]...), w.orig[i+n:]...),
		low:  append(append([]string{}, w.low[:i]...), w.low[i+n:]...),
	}
}

// token drops filler words and joins what remains in original casing.
func (w words) token() string {
	var kept []string
	for i, lw := range w.low {
		if fillerWords[lw] {
			continue
		}
		kept = append(kept, w.orig[i])
	}
	return strings.Join(kept, " ")
}
