package db

import (
	"testing"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

func fptr(v float64) *float64 { return &v }

func TestDailyRecordRoundTrip(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	rise := date.Add(6 * time.Hour)
	set := date.Add(18 * time.Hour)
	code := entity.WeatherCodeRain

	daily := entity.Daily{
		Date: date,
		Day: &entity.HalfDay{
			WeatherCode: &code,
			Temperature: &entity.Temperature{Temperature: fptr(17), RealFeel: fptr(15)},
			Precipitation: &entity.Precipitation{
				Total: fptr(4),
				Rain:  fptr(4),
			},
			PrecipitationProbability: &entity.PrecipitationProbability{Total: fptr(70)},
			Wind:                     &entity.Wind{Speed: fptr(6), Degree: fptr(230)},
		},
		Sun:        &entity.Astro{RiseTime: &rise, SetTime: &set},
		AirQuality: &entity.AirQuality{PM25: fptr(14)},
		Pollen:     &entity.Pollen{Grass: fptr(12)},
		UV:         entity.NewUV(fptr(6)),
		HoursOfSun: fptr(9.5),
	}

	got := newDailyRecord("loc-1", daily).toEntity()

	if !got.Date.Equal(date) {
		t.Errorf("date = %v, want %v", got.Date, date)
	}
	if got.Day == nil || got.Day.WeatherCode == nil || *got.Day.WeatherCode != entity.WeatherCodeRain {
		t.Errorf("day code = %+v", got.Day)
	}
	if *got.Day.Temperature.Temperature != 17 || *got.Day.Temperature.RealFeel != 15 {
		t.Errorf("day temperature = %+v", got.Day.Temperature)
	}
	if got.Day.Precipitation == nil || *got.Day.Precipitation.Total != 4 {
		t.Errorf("day precipitation = %+v", got.Day.Precipitation)
	}
	if got.Day.PrecipitationProbability == nil || *got.Day.PrecipitationProbability.Total != 70 {
		t.Errorf("day probability = %+v", got.Day.PrecipitationProbability)
	}
	if got.Day.Wind == nil || *got.Day.Wind.Speed != 6 || *got.Day.Wind.Degree != 230 {
		t.Errorf("day wind = %+v", got.Day.Wind)
	}
	if got.Night != nil {
		t.Errorf("absent night half reconstructed: %+v", got.Night)
	}
	if got.Sun == nil || !got.Sun.RiseTime.Equal(rise) || !got.Sun.SetTime.Equal(set) {
		t.Errorf("sun = %+v", got.Sun)
	}
	if got.Moon != nil {
		t.Errorf("absent moon reconstructed: %+v", got.Moon)
	}
	if got.AirQuality == nil || *got.AirQuality.PM25 != 14 {
		t.Errorf("air quality = %+v", got.AirQuality)
	}
	if got.Pollen == nil || *got.Pollen.Grass != 12 {
		t.Errorf("pollen = %+v", got.Pollen)
	}
	if got.UV == nil || *got.UV.Index != 6 || got.UV.Level == nil || *got.UV.Level != "High" {
		t.Errorf("UV = %+v", got.UV)
	}
	if got.HoursOfSun == nil || *got.HoursOfSun != 9.5 {
		t.Errorf("hours of sun = %v", got.HoursOfSun)
	}
}

func TestHourlyRecordRoundTrip(t *testing.T) {
	at := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	daylight := true
	code := entity.WeatherCodePartlyCloudy

	hourly := entity.Hourly{
		Time:             at,
		IsDaylight:       &daylight,
		WeatherCode:      &code,
		Temperature:      &entity.Temperature{Temperature: fptr(12)},
		Precipitation:    &entity.Precipitation{Rain: fptr(0.6)},
		Wind:             &entity.Wind{Speed: fptr(5)},
		AirQuality:       &entity.AirQuality{PM25: fptr(14), CO: fptr(0.32)},
		UV:               entity.NewUV(fptr(3)),
		RelativeHumidity: fptr(62),
		Pressure:         fptr(1013.2),
	}

	got := newHourlyRecord("loc-1", hourly).toEntity()

	if !got.Time.Equal(at) {
		t.Errorf("time = %v, want %v", got.Time, at)
	}
	if got.IsDaylight == nil || !*got.IsDaylight {
		t.Error("daylight flag lost")
	}
	if got.WeatherCode == nil || *got.WeatherCode != entity.WeatherCodePartlyCloudy {
		t.Errorf("code = %v", got.WeatherCode)
	}
	if got.Precipitation == nil || *got.Precipitation.Rain != 0.6 {
		t.Errorf("precipitation = %+v", got.Precipitation)
	}
	if got.PrecipitationProbability != nil {
		t.Errorf("absent probability reconstructed: %+v", got.PrecipitationProbability)
	}
	if got.AirQuality == nil || *got.AirQuality.CO != 0.32 {
		t.Errorf("air quality = %+v", got.AirQuality)
	}
	if got.RelativeHumidity == nil || *got.RelativeHumidity != 62 {
		t.Errorf("humidity = %v", got.RelativeHumidity)
	}
	if *got.Pressure != 1013.2 {
		t.Errorf("pressure = %v", got.Pressure)
	}
}

func TestWeatherRecordRoundTrip(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-6 * time.Hour)
	observed := now.Add(-20 * time.Minute)
	code := entity.WeatherCodeClear

	weather := entity.Weather{
		Base: entity.Base{
			RefreshTime:        &now,
			ForecastUpdateTime: &now,
			CurrentUpdateTime:  &earlier,
		},
		Current: &entity.Current{
			WeatherCode:     &code,
			Temperature:     &entity.Temperature{Temperature: fptr(18.2)},
			Wind:            &entity.Wind{Speed: fptr(5), Degree: fptr(90)},
			UV:              entity.NewUV(fptr(6)),
			AirQuality:      &entity.AirQuality{PM25: fptr(18)},
			Pressure:        fptr(1016),
			ObservationTime: &observed,
		},
		Normals: &entity.Normals{Month: 4, DaytimeTemperature: fptr(13), NighttimeTemperature: fptr(3)},
	}

	got := newWeatherRecord("loc-1", weather).toEntity()

	if got.Base.RefreshTime == nil || !got.Base.RefreshTime.Equal(now) {
		t.Errorf("refresh time = %v", got.Base.RefreshTime)
	}
	if got.Base.CurrentUpdateTime == nil || !got.Base.CurrentUpdateTime.Equal(earlier) {
		t.Errorf("current update time = %v", got.Base.CurrentUpdateTime)
	}
	if got.Current == nil || *got.Current.WeatherCode != entity.WeatherCodeClear {
		t.Fatalf("current = %+v", got.Current)
	}
	if *got.Current.Temperature.Temperature != 18.2 {
		t.Errorf("temperature = %+v", got.Current.Temperature)
	}
	if got.Current.AirQuality == nil || *got.Current.AirQuality.PM25 != 18 {
		t.Errorf("air quality = %+v", got.Current.AirQuality)
	}
	if got.Normals == nil || got.Normals.Month != 4 || *got.Normals.DaytimeTemperature != 13 {
		t.Errorf("normals = %+v", got.Normals)
	}
}

func TestWeatherRecordWithoutCurrent(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	weather := entity.Weather{Base: entity.Base{RefreshTime: &now}}

	got := newWeatherRecord("loc-1", weather).toEntity()
	if got.Current != nil {
		t.Errorf("all-NULL current columns reconstructed: %+v", got.Current)
	}
	if got.Normals != nil {
		t.Errorf("absent normals reconstructed: %+v", got.Normals)
	}
}

func TestAlertRecordRoundTrip(t *testing.T) {
	start := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	headline := "Flood Warning"
	alert := entity.Alert{
		AlertID:   "4021-0",
		StartTime: &start,
		Headline:  &headline,
		Severity:  entity.AlertSeveritySevere,
	}

	got := newAlertRecord("loc-1", alert).toEntity()
	if got.AlertID != "4021-0" || got.Severity != entity.AlertSeveritySevere {
		t.Errorf("alert = %+v", got)
	}
	if got.StartTime == nil || !got.StartTime.Equal(start) || got.EndTime != nil {
		t.Errorf("window = %v / %v", got.StartTime, got.EndTime)
	}
	if got.Headline == nil || *got.Headline != headline {
		t.Errorf("headline = %v", got.Headline)
	}
}

func TestParseWeatherCode(t *testing.T) {
	rain := "RAIN"
	if got := parseWeatherCode(&rain); got == nil || *got != entity.WeatherCodeRain {
		t.Errorf("parseWeatherCode(RAIN) = %v", got)
	}
	legacy := "DRIZZLE"
	if got := parseWeatherCode(&legacy); got != nil {
		t.Errorf("parseWeatherCode(DRIZZLE) = %v, want nil for unknown values", got)
	}
	if got := parseWeatherCode(nil); got != nil {
		t.Errorf("parseWeatherCode(nil) = %v", got)
	}
}
