package refresh

import (
	"testing"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

func fptr(v float64) *float64 { return &v }

func TestMergeWeatherFullRefresh(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	wrappers := map[entity.Feature]*model.WeatherWrapper{
		entity.FeatureForecast: {
			Dailies: []entity.Daily{
				{Date: day.Add(24 * time.Hour)},
				{Date: day},
			},
			Hourlies: []entity.Hourly{
				{Time: day.Add(13 * time.Hour)},
				{Time: day.Add(12 * time.Hour)},
			},
		},
		entity.FeatureCurrent: {
			Current: &entity.Current{Temperature: &entity.Temperature{Temperature: fptr(14)}},
		},
	}

	weather := mergeWeather(nil, wrappers, nil, now)

	if weather.Base.RefreshTime == nil || !weather.Base.RefreshTime.Equal(now) {
		t.Errorf("refresh time = %v, want %v", weather.Base.RefreshTime, now)
	}
	if weather.Base.ForecastUpdateTime == nil || !weather.Base.ForecastUpdateTime.Equal(now) {
		t.Errorf("forecast update time = %v, want %v", weather.Base.ForecastUpdateTime, now)
	}
	if weather.Base.CurrentUpdateTime == nil || !weather.Base.CurrentUpdateTime.Equal(now) {
		t.Errorf("current update time = %v, want %v", weather.Base.CurrentUpdateTime, now)
	}
	if len(weather.Daily) != 2 || !weather.Daily[0].Date.Equal(day) {
		t.Errorf("dailies not sorted: %+v", weather.Daily)
	}
	if len(weather.Hourly) != 2 || !weather.Hourly[0].Time.Equal(day.Add(12*time.Hour)) {
		t.Errorf("hourlies not sorted: %+v", weather.Hourly)
	}
	if weather.Current == nil || *weather.Current.Temperature.Temperature != 14 {
		t.Errorf("current = %+v", weather.Current)
	}
}

func TestMergeWeatherKeepsCachedOnFailure(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-6 * time.Hour)
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	cached := &entity.Weather{
		Base: entity.Base{
			RefreshTime:       &earlier,
			CurrentUpdateTime: &earlier,
			AlertsUpdateTime:  &earlier,
		},
		Daily:   []entity.Daily{{Date: day}},
		Hourly:  []entity.Hourly{{Time: day.Add(9 * time.Hour)}},
		Current: &entity.Current{Temperature: &entity.Temperature{Temperature: fptr(10)}},
		Alerts:  []entity.Alert{{AlertID: "a1"}},
	}

	wrappers := map[entity.Feature]*model.WeatherWrapper{
		entity.FeatureForecast: {
			Dailies:  []entity.Daily{{Date: day}, {Date: day.Add(24 * time.Hour)}},
			Hourlies: []entity.Hourly{{Time: day.Add(9 * time.Hour)}},
		},
	}
	failed := map[entity.Feature]error{
		entity.FeatureCurrent: model.ErrApiUnauthorized,
	}

	weather := mergeWeather(cached, wrappers, failed, now)

	if weather.Current == nil || *weather.Current.Temperature.Temperature != 10 {
		t.Errorf("cached current not preserved: %+v", weather.Current)
	}
	if weather.Base.CurrentUpdateTime == nil || !weather.Base.CurrentUpdateTime.Equal(earlier) {
		t.Errorf("current update time advanced on failure: %v", weather.Base.CurrentUpdateTime)
	}
	if weather.Base.ForecastUpdateTime == nil || !weather.Base.ForecastUpdateTime.Equal(now) {
		t.Errorf("forecast update time = %v, want %v", weather.Base.ForecastUpdateTime, now)
	}
	if len(weather.Alerts) != 1 || weather.Alerts[0].AlertID != "a1" {
		t.Errorf("cached alerts not preserved: %+v", weather.Alerts)
	}
	if len(weather.Daily) != 2 {
		t.Errorf("fresh forecast not applied: %d dailies", len(weather.Daily))
	}
}

func TestMergeWeatherAirQuality(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	hour := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	wrappers := map[entity.Feature]*model.WeatherWrapper{
		entity.FeatureForecast: {
			Hourlies: []entity.Hourly{{Time: hour}, {Time: hour.Add(time.Hour)}},
		},
		entity.FeatureCurrent: {Current: &entity.Current{}},
		entity.FeatureAirQuality: {
			AirQuality: &model.AirQualityWrapper{
				Current: &entity.AirQuality{PM25: fptr(18)},
				Hourly: map[time.Time]entity.AirQuality{
					hour: {PM25: fptr(14)},
				},
			},
		},
	}

	weather := mergeWeather(nil, wrappers, nil, now)

	if weather.Hourly[0].AirQuality == nil || *weather.Hourly[0].AirQuality.PM25 != 14 {
		t.Errorf("hourly air quality not merged: %+v", weather.Hourly[0].AirQuality)
	}
	if weather.Hourly[1].AirQuality != nil {
		t.Errorf("hour without a sample got air quality: %+v", weather.Hourly[1].AirQuality)
	}
	if weather.Current.AirQuality == nil || *weather.Current.AirQuality.PM25 != 18 {
		t.Errorf("current air quality not attached: %+v", weather.Current.AirQuality)
	}
	if weather.Base.AirQualityUpdateTime == nil || !weather.Base.AirQualityUpdateTime.Equal(now) {
		t.Errorf("air quality update time = %v", weather.Base.AirQualityUpdateTime)
	}
}

func TestMergeWeatherCarriesCachedAirQuality(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	hour := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	cached := &entity.Weather{
		Hourly: []entity.Hourly{{
			Time:       hour,
			AirQuality: &entity.AirQuality{PM25: fptr(22)},
		}},
	}
	wrappers := map[entity.Feature]*model.WeatherWrapper{
		entity.FeatureForecast: {
			Hourlies: []entity.Hourly{{Time: hour}, {Time: hour.Add(time.Hour)}},
		},
	}

	weather := mergeWeather(cached, wrappers, nil, now)

	if weather.Hourly[0].AirQuality == nil || *weather.Hourly[0].AirQuality.PM25 != 22 {
		t.Errorf("cached hourly air quality not carried over: %+v", weather.Hourly[0].AirQuality)
	}
	if weather.Hourly[1].AirQuality != nil {
		t.Errorf("hour absent from the cache got air quality: %+v", weather.Hourly[1].AirQuality)
	}
	if weather.Base.AirQualityUpdateTime != nil {
		t.Errorf("air quality update time advanced without a fetch: %v", weather.Base.AirQualityUpdateTime)
	}
}

func TestMergeWeatherPollenCalendarDayFallback(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	zone := time.FixedZone("CET", 3600)
	// Dailies carry UTC midnight while the pollen wrapper keys by local
	// midnight. The instants differ but name the same calendar day.
	utcDay := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	localDay := time.Date(2026, 4, 10, 0, 0, 0, 0, zone)

	wrappers := map[entity.Feature]*model.WeatherWrapper{
		entity.FeatureForecast: {
			Dailies: []entity.Daily{{Date: utcDay}},
		},
		entity.FeaturePollen: {
			Pollen: &model.PollenWrapper{
				Daily: map[time.Time]entity.Pollen{
					localDay: {Grass: fptr(40)},
				},
			},
		},
	}

	weather := mergeWeather(nil, wrappers, nil, now)

	if weather.Daily[0].Pollen == nil || *weather.Daily[0].Pollen.Grass != 40 {
		t.Errorf("pollen not matched by calendar day: %+v", weather.Daily[0].Pollen)
	}
	if weather.Base.PollenUpdateTime == nil || !weather.Base.PollenUpdateTime.Equal(now) {
		t.Errorf("pollen update time = %v", weather.Base.PollenUpdateTime)
	}
}
