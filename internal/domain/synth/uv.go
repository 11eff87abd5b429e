package synth

import (
	"math"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// InterpolateUV estimates the instantaneous UV index at t from the day's
// maximum UV and its sunrise/sunset, assuming a half-sine daylight curve:
// maxUV * sin(pi/D * (t - sunrise)) with D the daylight duration in hours.
// Outside [sunrise, sunset] the result is nil; negative values clamp to 0.
func InterpolateUV(maxUV float64, sunrise, sunset, t time.Time) *float64 {
	if t.Before(sunrise) || t.After(sunset) {
		return nil
	}
	daylightHours := sunset.Sub(sunrise).Hours()
	if daylightHours <= 0 {
		return nil
	}
	uv := maxUV * math.Sin(math.Pi/daylightHours*t.Sub(sunrise).Hours())
	if uv < 0 {
		uv = 0
	}
	return &uv
}

// BackfillHourlyDaylightAndUV returns a copy of the hourly series where each
// hour missing a daylight flag or a UV value gets it derived from the
// matching day's sun events. Hours whose day lacks valid astro data are left
// untouched. Inputs are never mutated.
func BackfillHourlyDaylightAndUV(dailies []entity.Daily, hourlies []entity.Hourly, zone *time.Location) []entity.Hourly {
	if len(hourlies) == 0 {
		return nil
	}
	byDay := make(map[string]entity.Daily, len(dailies))
	for _, d := range dailies {
		byDay[localDayStart(d.Date, zone).Format("2006-01-02")] = d
	}

	out := make([]entity.Hourly, len(hourlies))
	for i, hour := range hourlies {
		day, ok := byDay[hour.Time.In(zone).Format("2006-01-02")]
		if !ok || day.Sun == nil || !day.Sun.IsValid() {
			out[i] = hour
			continue
		}

		if hour.IsDaylight == nil {
			daylight := isDaylightAt(hour.Time, *day.Sun.RiseTime, *day.Sun.SetTime, zone)
			hour.IsDaylight = &daylight
		}
		if hour.UV == nil && day.UV != nil && day.UV.Index != nil {
			hour.UV = entity.NewUV(InterpolateUV(*day.UV.Index, *day.Sun.RiseTime, *day.Sun.SetTime, hour.Time))
		}
		out[i] = hour
	}
	return out
}

// isDaylightAt compares minute-of-day against the sunrise/sunset
// minute-of-day window [sunrise, sunset).
func isDaylightAt(t, sunrise, sunset time.Time, zone *time.Location) bool {
	minute := minuteOfDay(t, zone)
	return minute >= minuteOfDay(sunrise, zone) && minute < minuteOfDay(sunset, zone)
}

func minuteOfDay(t time.Time, zone *time.Location) int {
	local := t.In(zone)
	return local.Hour()*60 + local.Minute()
}
