package synth

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// minHoursForDailyAirQuality is the minimum number of hourly air-quality
// samples a day must carry before a daily aggregate is derived from them.
const minHoursForDailyAirQuality = 18

// DailyAirQualityFromHourly derives a day's air quality as the arithmetic
// mean per pollutant of the day's hourly values. It returns nil unless at
// least 18 of the day's hours carry air-quality data. Pollutants with no
// hourly value stay nil; they are never averaged as zero.
func DailyAirQualityFromHourly(date time.Time, hourlies []entity.Hourly, zone *time.Location) *entity.AirQuality {
	dayStart := localDayStart(date, zone)
	hours := hoursBetween(hourlies, dayStart, dayStart.Add(24*time.Hour))

	measured := 0
	for _, h := range hours {
		if h.AirQuality != nil && h.AirQuality.IsValid() {
			measured++
		}
	}
	if measured < minHoursForDailyAirQuality {
		return nil
	}

	mean := func(pick func(entity.AirQuality) *float64) *float64 {
		var sum float64
		var count int
		for _, h := range hours {
			if h.AirQuality == nil {
				continue
			}
			if v := pick(*h.AirQuality); v != nil {
				sum += *v
				count++
			}
		}
		if count == 0 {
			return nil
		}
		value := sum / float64(count)
		return &value
	}

	aggregate := entity.AirQuality{
		PM25: mean(func(aq entity.AirQuality) *float64 { return aq.PM25 }),
		PM10: mean(func(aq entity.AirQuality) *float64 { return aq.PM10 }),
		SO2:  mean(func(aq entity.AirQuality) *float64 { return aq.SO2 }),
		NO2:  mean(func(aq entity.AirQuality) *float64 { return aq.NO2 }),
		O3:   mean(func(aq entity.AirQuality) *float64 { return aq.O3 }),
		CO:   mean(func(aq entity.AirQuality) *float64 { return aq.CO }),
	}
	if !aggregate.IsValid() {
		return nil
	}
	return &aggregate
}

// DailyUVFromHourly derives a day's UV as the maximum of the present hourly
// UV indices, or nil when none is present.
func DailyUVFromHourly(date time.Time, hourlies []entity.Hourly, zone *time.Location) *entity.UV {
	dayStart := localDayStart(date, zone)
	hours := hoursBetween(hourlies, dayStart, dayStart.Add(24*time.Hour))

	var max *float64
	for _, h := range hours {
		if h.UV == nil || h.UV.Index == nil {
			continue
		}
		if max == nil || *h.UV.Index > *max {
			value := *h.UV.Index
			max = &value
		}
	}
	return entity.NewUV(max)
}
