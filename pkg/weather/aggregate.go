package weather

import (
	"time"

	"weatherwear/pkg/models"
)

// maxSeriesDays caps the forecast series length.
const maxSeriesDays = 5

// selectSnapshot picks the sample or daily aggregate the time target
// refers to. Today and Now use the intraday sample nearest to the
// present; future days use that day's aggregate. A target beyond the
// available data degrades to the last day with samples.
func selectSnapshot(samples []models.WeatherSnapshot, target models.TimeTarget, now time.Time) models.WeatherSnapshot {
	if target.Kind == models.TimeNow || target.DayOffset == 0 {
		return nearestSample(samples, now)
	}

	day := civilDate(now).AddDate(0, 0, target.DayOffset)
	for d := day; !d.Before(civilDate(now)); d = d.AddDate(0, 0, -1) {
		if agg, ok := aggregateDay(samples, d); ok {
			return agg
		}
	}
	// No sample shares a calendar day with the request window.
	return nearestSample(samples, now)
}

// nearestSample returns the latest past-or-present sample, or the
// earliest sample when everything lies in the future.
func nearestSample(samples []models.WeatherSnapshot, now time.Time) models.WeatherSnapshot {
	best := samples[0]
	for _, s := range samples[1:] {
		if s.Timestamp.After(now) {
			break
		}
		best = s
	}
	return best
}

// buildSeries aggregates each of the next maxSeriesDays local calendar
// days, soonest first. Days without samples are skipped, so the series
// can be shorter than the cap but never longer.
func buildSeries(samples []models.WeatherSnapshot, now time.Time) models.ForecastSeries {
	today := civilDate(now)
	series := make(models.ForecastSeries, 0, maxSeriesDays)
	for offset := 0; offset < maxSeriesDays; offset++ {
		if agg, ok := aggregateDay(samples, today.AddDate(0, 0, offset)); ok {
			series = append(series, agg)
		}
	}
	return series
}

// aggregateDay folds one local calendar day of intraday samples into a
// single snapshot: min/max temperature across the day, the midday sample
// as representative, the modal daytime condition (ties broken by the
// earliest occurrence) and the day's highest precipitation probability.
func aggregateDay(samples []models.WeatherSnapshot, day time.Time) (models.WeatherSnapshot, bool) {
	var daySamples []models.WeatherSnapshot
	for _, s := range samples {
		if sameDay(s.Timestamp, day) {
			daySamples = append(daySamples, s)
		}
	}
	if len(daySamples) == 0 {
		return models.WeatherSnapshot{}, false
	}

	rep := representative(daySamples)
	agg := rep
	agg.TempMinC = daySamples[0].TemperatureC
	agg.TempMaxC = daySamples[0].TemperatureC
	agg.PrecipProbability = 0
	for _, s := range daySamples {
		if s.TemperatureC < agg.TempMinC {
			agg.TempMinC = s.TemperatureC
		}
		if s.TemperatureC > agg.TempMaxC {
			agg.TempMaxC = s.TemperatureC
		}
		if s.PrecipProbability > agg.PrecipProbability {
			agg.PrecipProbability = s.PrecipProbability
		}
	}
	agg.Condition = modalCondition(daySamples)
	return agg, true
}

// representative prefers a midday sample (11:00-14:59), otherwise the
// one closest to noon.
func representative(daySamples []models.WeatherSnapshot) models.WeatherSnapshot {
	for _, s := range daySamples {
		if h := s.Timestamp.Hour(); h >= 11 && h < 15 {
			return s
		}
	}
	best := daySamples[0]
	bestDist := noonDistance(best.Timestamp)
	for _, s := range daySamples[1:] {
		if d := noonDistance(s.Timestamp); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// modalCondition counts daytime samples (08:00-19:59) and returns the
// most frequent condition; when no sample is daytime, all samples count.
func modalCondition(daySamples []models.WeatherSnapshot) models.Condition {
	daytime := make([]models.WeatherSnapshot, 0, len(daySamples))
	for _, s := range daySamples {
		if h := s.Timestamp.Hour(); h >= 8 && h < 20 {
			daytime = append(daytime, s)
		}
	}
	if len(daytime) == 0 {
		daytime = daySamples
	}

	counts := make(map[models.Condition]int)
	firstIdx := make(map[models.Condition]int)
	for i, s := range daytime {
		if _, seen := firstIdx[s.Condition]; !seen {
			firstIdx[s.Condition] = i
		}
		counts[s.Condition]++
	}

	best := daytime[0].Condition
	for cond, n := range counts {
		// Ties go to the condition that occurred first.
		if n > counts[best] || (n == counts[best] && firstIdx[cond] < firstIdx[best]) {
			best = cond
		}
	}
	return best
}

// noonDistance measures how far a timestamp sits from 12:00 on its own day.
func noonDistance(t time.Time) time.Duration {
	y, m, d := t.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, t.Location())
	if t.Before(noon) {
		return noon.Sub(t)
	}
	return t.Sub(noon)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(t, day time.Time) bool {
	ty, tm, td := t.Date()
	dy, dm, dd := day.Date()
	return ty == dy && tm == dm && td == dd
}
