package refresh

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

// mergeWeather builds the new aggregate from the per-feature wrappers, keeping
// cached sub-collections for features that failed or were not requested. A
// feature's update time only advances when its fetch succeeded.
func mergeWeather(cached *entity.Weather, wrappers map[entity.Feature]*model.WeatherWrapper, failed map[entity.Feature]error, now time.Time) entity.Weather {
	var weather entity.Weather
	if cached != nil {
		weather.Base = cached.Base
	}
	refreshTime := now
	weather.Base.RefreshTime = &refreshTime

	if wrapper, ok := wrappers[entity.FeatureForecast]; ok {
		weather.Daily = entity.SortDaily(wrapper.Dailies)
		weather.Hourly = entity.SortHourly(wrapper.Hourlies)
		weather.Base.ForecastUpdateTime = &refreshTime
	} else if cached != nil {
		weather.Daily = cached.Daily
		weather.Hourly = cached.Hourly
	}

	if wrapper, ok := wrappers[entity.FeatureCurrent]; ok {
		weather.Current = wrapper.Current
		weather.Base.CurrentUpdateTime = &refreshTime
	} else if cached != nil {
		weather.Current = cached.Current
	}

	if wrapper, ok := wrappers[entity.FeatureAirQuality]; ok && wrapper.AirQuality != nil {
		mergeHourlyAirQuality(weather.Hourly, wrapper.AirQuality.Hourly)
		if wrapper.AirQuality.Current != nil && weather.Current != nil {
			snapshot := *weather.Current
			snapshot.AirQuality = wrapper.AirQuality.Current
			weather.Current = &snapshot
		}
		weather.Base.AirQualityUpdateTime = &refreshTime
	} else if cached != nil {
		// The fresh hourly rows do not carry air quality; keep the cached
		// per-hour values where the instants still line up.
		mergeHourlyAirQuality(weather.Hourly, cachedHourlyAirQuality(cached.Hourly))
	}

	if wrapper, ok := wrappers[entity.FeaturePollen]; ok && wrapper.Pollen != nil {
		mergeDailyPollen(weather.Daily, wrapper.Pollen.Daily)
		weather.Base.PollenUpdateTime = &refreshTime
	} else if cached != nil {
		mergeDailyPollen(weather.Daily, cachedDailyPollen(cached.Daily))
	}

	if wrapper, ok := wrappers[entity.FeatureMinutely]; ok {
		weather.Minutely = wrapper.Minutely
		weather.Base.MinutelyUpdateTime = &refreshTime
	} else if cached != nil {
		weather.Minutely = cached.Minutely
	}

	if wrapper, ok := wrappers[entity.FeatureAlert]; ok {
		weather.Alerts = wrapper.Alerts
		weather.Base.AlertsUpdateTime = &refreshTime
	} else if cached != nil {
		weather.Alerts = cached.Alerts
	}

	if wrapper, ok := wrappers[entity.FeatureNormals]; ok {
		weather.Normals = wrapper.Normals
		weather.Base.NormalsUpdateTime = &refreshTime
	} else if cached != nil {
		weather.Normals = cached.Normals
	}

	return weather
}

func mergeHourlyAirQuality(hourlies []entity.Hourly, byHour map[time.Time]entity.AirQuality) {
	if len(hourlies) == 0 || len(byHour) == 0 {
		return
	}
	for i := range hourlies {
		if hourlies[i].AirQuality != nil {
			continue
		}
		if aq, ok := byHour[hourlies[i].Time.UTC().Truncate(time.Hour)]; ok {
			value := aq
			hourlies[i].AirQuality = &value
		}
	}
}

func cachedHourlyAirQuality(hourlies []entity.Hourly) map[time.Time]entity.AirQuality {
	byHour := make(map[time.Time]entity.AirQuality)
	for _, hour := range hourlies {
		if hour.AirQuality != nil {
			byHour[hour.Time.UTC().Truncate(time.Hour)] = *hour.AirQuality
		}
	}
	return byHour
}

func mergeDailyPollen(dailies []entity.Daily, byDay map[time.Time]entity.Pollen) {
	if len(dailies) == 0 || len(byDay) == 0 {
		return
	}
	for i := range dailies {
		if dailies[i].Pollen != nil {
			continue
		}
		if pollen, ok := byDay[dailies[i].Date]; ok {
			value := pollen
			dailies[i].Pollen = &value
			continue
		}
		// Pollen wrappers key by local midnight; fall back to calendar-day
		// equality when the instants differ.
		for day, pollen := range byDay {
			if sameCalendarDay(day, dailies[i].Date) {
				value := pollen
				dailies[i].Pollen = &value
				break
			}
		}
	}
}

func cachedDailyPollen(dailies []entity.Daily) map[time.Time]entity.Pollen {
	byDay := make(map[time.Time]entity.Pollen)
	for _, daily := range dailies {
		if daily.Pollen != nil {
			byDay[daily.Date] = *daily.Pollen
		}
	}
	return byDay
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
