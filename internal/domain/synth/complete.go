package synth

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// Complete fills every derivable gap in the merged weather: half-day
// summaries, daily air quality and UV from the hourly series, hourly
// daylight flags and UV, the current UV, and precipitation totals from
// category sums. It returns a new value; the input is never mutated.
func Complete(weather entity.Weather, zone *time.Location, now time.Time) entity.Weather {
	weather.Hourly = fillHourlyPrecipitationTotals(weather.Hourly)
	weather.Daily = CompleteHalfDays(weather.Daily, weather.Hourly, zone)

	for i := range weather.Daily {
		daily := &weather.Daily[i]
		daily.Day = fillHalfDayPrecipitationTotal(daily.Day)
		daily.Night = fillHalfDayPrecipitationTotal(daily.Night)
	}

	for i := range weather.Daily {
		daily := &weather.Daily[i]
		if daily.AirQuality == nil {
			daily.AirQuality = DailyAirQualityFromHourly(daily.Date, weather.Hourly, zone)
		}
		if daily.UV == nil {
			daily.UV = DailyUVFromHourly(daily.Date, weather.Hourly, zone)
		}
		if daily.HoursOfSun == nil && daily.Sun != nil && daily.Sun.IsValid() {
			hours := daily.Sun.SetTime.Sub(*daily.Sun.RiseTime).Hours()
			daily.HoursOfSun = &hours
		}
	}

	weather.Hourly = BackfillHourlyDaylightAndUV(weather.Daily, weather.Hourly, zone)
	weather.Current = completeCurrentUV(weather.Current, weather.Daily, zone, now)
	return weather
}

// fillHourlyPrecipitationTotals fills a missing precipitation total with the
// sum of its categories. A present total is never reconciled against the
// category sums; providers disagree on whether the categories are exhaustive.
func fillHourlyPrecipitationTotals(hourlies []entity.Hourly) []entity.Hourly {
	if len(hourlies) == 0 {
		return nil
	}
	out := make([]entity.Hourly, len(hourlies))
	for i, hour := range hourlies {
		if hour.Precipitation != nil && hour.Precipitation.Total == nil {
			precipitation := *hour.Precipitation
			precipitation.Total = precipitation.CategorySum()
			hour.Precipitation = &precipitation
		}
		out[i] = hour
	}
	return out
}

func fillHalfDayPrecipitationTotal(halfDay *entity.HalfDay) *entity.HalfDay {
	if halfDay == nil || halfDay.Precipitation == nil || halfDay.Precipitation.Total != nil {
		return halfDay
	}
	updated := *halfDay
	precipitation := *halfDay.Precipitation
	precipitation.Total = precipitation.CategorySum()
	updated.Precipitation = &precipitation
	return &updated
}

// completeCurrentUV interpolates the instantaneous UV for the current
// snapshot from today's max UV and sun events when the provider left it out.
func completeCurrentUV(current *entity.Current, dailies []entity.Daily, zone *time.Location, now time.Time) *entity.Current {
	if current == nil || current.UV != nil {
		return current
	}
	today := (entity.Weather{Daily: dailies}).DailyAt(now, zone)
	if today == nil || today.Sun == nil || !today.Sun.IsValid() || today.UV == nil || today.UV.Index == nil {
		return current
	}
	snapshot := *current
	snapshot.UV = entity.NewUV(InterpolateUV(*today.UV.Index, *today.Sun.RiseTime, *today.Sun.SetTime, now))
	return &snapshot
}
