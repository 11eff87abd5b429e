package synth

import (
	"math"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// Half-day boundaries in local hours: the day half covers [06:00, 18:00) of
// the calendar day, the night half [18:00, 06:00) of the following morning.
const (
	dayHalfStartHour = 6
	dayHalfEndHour   = 18
)

// CompleteHalfDays returns a copy of the daily list with every missing
// half-day field filled from the hourly series restricted to that half.
// Already-populated fields are left untouched, so the operation is
// idempotent. Inputs are never mutated.
func CompleteHalfDays(dailies []entity.Daily, hourlies []entity.Hourly, zone *time.Location) []entity.Daily {
	if len(dailies) == 0 {
		return nil
	}
	out := make([]entity.Daily, len(dailies))
	for i, daily := range dailies {
		dayStart := localDayStart(daily.Date, zone)
		dayHours := hoursBetween(hourlies, dayStart.Add(dayHalfStartHour*time.Hour), dayStart.Add(dayHalfEndHour*time.Hour))
		nightHours := hoursBetween(hourlies, dayStart.Add(dayHalfEndHour*time.Hour), dayStart.Add((24+dayHalfStartHour)*time.Hour))

		daily.Day = completeHalfDay(daily.Day, dayHours, dayStart.Add(12*time.Hour), true)
		daily.Night = completeHalfDay(daily.Night, nightHours, dayStart.Add(24*time.Hour), false)
		out[i] = daily
	}
	return out
}

func localDayStart(date time.Time, zone *time.Location) time.Time {
	y, m, d := date.In(zone).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, zone)
}

func hoursBetween(hourlies []entity.Hourly, from, to time.Time) []entity.Hourly {
	var out []entity.Hourly
	for _, h := range hourlies {
		if !h.Time.Before(from) && h.Time.Before(to) {
			out = append(out, h)
		}
	}
	return out
}

func completeHalfDay(existing *entity.HalfDay, hours []entity.Hourly, representative time.Time, isDay bool) *entity.HalfDay {
	if len(hours) == 0 {
		return existing
	}
	var halfDay entity.HalfDay
	if existing != nil {
		halfDay = *existing
	}

	if halfDay.WeatherCode == nil || halfDay.WeatherText == nil {
		nearest := nearestHour(hours, representative)
		if halfDay.WeatherCode == nil {
			halfDay.WeatherCode = nearest.WeatherCode
		}
		if halfDay.WeatherText == nil {
			halfDay.WeatherText = nearest.WeatherText
		}
		if halfDay.WeatherPhrase == nil && halfDay.WeatherCode != nil {
			phrase := halfDay.WeatherCode.Description()
			halfDay.WeatherPhrase = &phrase
		}
	}

	halfDay.Temperature = completeTemperature(halfDay.Temperature, hours, isDay)
	halfDay.Precipitation = completePrecipitation(halfDay.Precipitation, hours)
	halfDay.PrecipitationProbability = completeProbability(halfDay.PrecipitationProbability, hours)
	if halfDay.Wind == nil {
		halfDay.Wind = strongestWind(hours)
	}
	return &halfDay
}

func nearestHour(hours []entity.Hourly, target time.Time) entity.Hourly {
	best := hours[0]
	bestDistance := math.Abs(hours[0].Time.Sub(target).Hours())
	for _, h := range hours[1:] {
		distance := math.Abs(h.Time.Sub(target).Hours())
		if distance < bestDistance {
			best = h
			bestDistance = distance
		}
	}
	return best
}

// completeTemperature fills the actual temperature with the half's maximum
// (day) or minimum (night), and the wind chill independently by the same
// rule.
func completeTemperature(existing *entity.Temperature, hours []entity.Hourly, isDay bool) *entity.Temperature {
	var temperature entity.Temperature
	if existing != nil {
		temperature = *existing
	}
	if temperature.Temperature == nil {
		temperature.Temperature = extremum(hours, isDay, func(t entity.Temperature) *float64 { return t.Temperature })
	}
	if temperature.WindChill == nil {
		temperature.WindChill = extremum(hours, isDay, func(t entity.Temperature) *float64 { return t.WindChill })
	}
	if temperature.IsEmpty() {
		return existing
	}
	return &temperature
}

func extremum(hours []entity.Hourly, wantMax bool, pick func(entity.Temperature) *float64) *float64 {
	var result *float64
	for _, h := range hours {
		if h.Temperature == nil {
			continue
		}
		v := pick(*h.Temperature)
		if v == nil {
			continue
		}
		if result == nil || (wantMax && *v > *result) || (!wantMax && *v < *result) {
			value := *v
			result = &value
		}
	}
	return result
}

// completePrecipitation fills each missing quantity with the sum of the
// present hourly values for that category.
func completePrecipitation(existing *entity.Precipitation, hours []entity.Hourly) *entity.Precipitation {
	var precipitation entity.Precipitation
	if existing != nil {
		precipitation = *existing
	}
	fill := func(target **float64, pick func(entity.Precipitation) *float64) {
		if *target != nil {
			return
		}
		var sum float64
		var found bool
		for _, h := range hours {
			if h.Precipitation == nil {
				continue
			}
			if v := pick(*h.Precipitation); v != nil {
				sum += *v
				found = true
			}
		}
		if found {
			*target = &sum
		}
	}
	fill(&precipitation.Total, func(p entity.Precipitation) *float64 { return p.Total })
	fill(&precipitation.Thunderstorm, func(p entity.Precipitation) *float64 { return p.Thunderstorm })
	fill(&precipitation.Rain, func(p entity.Precipitation) *float64 { return p.Rain })
	fill(&precipitation.Snow, func(p entity.Precipitation) *float64 { return p.Snow })
	fill(&precipitation.Ice, func(p entity.Precipitation) *float64 { return p.Ice })
	if precipitation == (entity.Precipitation{}) {
		return existing
	}
	return &precipitation
}

// completeProbability fills each missing probability with the maximum of the
// present hourly values for that category.
func completeProbability(existing *entity.PrecipitationProbability, hours []entity.Hourly) *entity.PrecipitationProbability {
	var probability entity.PrecipitationProbability
	if existing != nil {
		probability = *existing
	}
	fill := func(target **float64, pick func(entity.PrecipitationProbability) *float64) {
		if *target != nil {
			return
		}
		var result *float64
		for _, h := range hours {
			if h.PrecipitationProbability == nil {
				continue
			}
			if v := pick(*h.PrecipitationProbability); v != nil && (result == nil || *v > *result) {
				value := *v
				result = &value
			}
		}
		*target = result
	}
	fill(&probability.Total, func(p entity.PrecipitationProbability) *float64 { return p.Total })
	fill(&probability.Thunderstorm, func(p entity.PrecipitationProbability) *float64 { return p.Thunderstorm })
	fill(&probability.Rain, func(p entity.PrecipitationProbability) *float64 { return p.Rain })
	fill(&probability.Snow, func(p entity.PrecipitationProbability) *float64 { return p.Snow })
	fill(&probability.Ice, func(p entity.PrecipitationProbability) *float64 { return p.Ice })
	if probability == (entity.PrecipitationProbability{}) {
		return existing
	}
	return &probability
}

func strongestWind(hours []entity.Hourly) *entity.Wind {
	var strongest *entity.Wind
	for _, h := range hours {
		if h.Wind == nil || h.Wind.Speed == nil {
			continue
		}
		if strongest == nil || *h.Wind.Speed > *strongest.Speed {
			wind := *h.Wind
			strongest = &wind
		}
	}
	return strongest
}
