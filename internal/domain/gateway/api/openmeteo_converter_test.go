package api

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
)

func TestConvertOpenMeteoWeatherCode(t *testing.T) {
	tests := []struct {
		name string
		code int
		want entity.WeatherCode
	}{
		{name: "clear sky", code: 0, want: entity.WeatherCodeClear},
		{name: "mainly clear", code: 1, want: entity.WeatherCodePartlyCloudy},
		{name: "overcast", code: 3, want: entity.WeatherCodeCloudy},
		{name: "fog", code: 45, want: entity.WeatherCodeFog},
		{name: "drizzle", code: 53, want: entity.WeatherCodeRain},
		{name: "freezing rain", code: 66, want: entity.WeatherCodeSleet},
		{name: "snow grains", code: 77, want: entity.WeatherCodeSnow},
		{name: "rain showers", code: 82, want: entity.WeatherCodeRain},
		{name: "thunderstorm", code: 95, want: entity.WeatherCodeThunderstorm},
		{name: "thunderstorm with hail", code: 99, want: entity.WeatherCodeHail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertOpenMeteoWeatherCode(&tt.code)
			if got == nil || *got != tt.want {
				t.Errorf("convertOpenMeteoWeatherCode(%d) = %v, want %s", tt.code, got, tt.want)
			}
		})
	}

	unknown := 42
	if got := convertOpenMeteoWeatherCode(&unknown); got != nil {
		t.Errorf("convertOpenMeteoWeatherCode(42) = %s, want nil", *got)
	}
	if got := convertOpenMeteoWeatherCode(nil); got != nil {
		t.Errorf("convertOpenMeteoWeatherCode(nil) = %s, want nil", *got)
	}
}

func TestConvertOpenMeteoForecast(t *testing.T) {
	base := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	code := 61
	resp := &external.OpenMeteoForecastResponse{
		Hourly: &external.OpenMeteoHourly{
			Time:          []int64{base.Unix(), base.Add(time.Hour).Unix()},
			Temperature2m: []*float64{floatPtr(11.3), floatPtr(12.1)},
			WeatherCode:   []*int{&code, nil},
			Rain:          []*float64{floatPtr(0.4), nil},
			Showers:       []*float64{floatPtr(0.2), nil},
			Snowfall:      []*float64{floatPtr(1.2), nil}, // cm
			WindSpeed10m:  []*float64{floatPtr(18), nil},  // km/h
			IsDay:         []*int{intPtr(1), intPtr(0)},
		},
		Daily: &external.OpenMeteoDaily{
			Time:             []int64{base.Unix()},
			Temperature2mMax: []*float64{floatPtr(15)},
			Temperature2mMin: []*float64{floatPtr(4)},
			UVIndexMax:       []*float64{floatPtr(6)},
		},
	}

	wrapper, err := convertOpenMeteoForecast(resp)
	if err != nil {
		t.Fatalf("convertOpenMeteoForecast() error = %v", err)
	}
	if len(wrapper.Hourlies) != 2 || len(wrapper.Dailies) != 1 {
		t.Fatalf("got %d hourlies, %d dailies", len(wrapper.Hourlies), len(wrapper.Dailies))
	}

	first := wrapper.Hourlies[0]
	if !first.Time.Equal(base) {
		t.Errorf("hour time = %v, want %v", first.Time, base)
	}
	if first.WeatherCode == nil || *first.WeatherCode != entity.WeatherCodeRain {
		t.Errorf("weather code = %v, want RAIN", first.WeatherCode)
	}
	if first.Precipitation == nil || first.Precipitation.Rain == nil || math.Abs(*first.Precipitation.Rain-0.6) > 1e-9 {
		t.Errorf("rain = %+v, want 0.6 (rain plus showers)", first.Precipitation)
	}
	if first.Precipitation.Snow == nil || math.Abs(*first.Precipitation.Snow-12) > 1e-9 {
		t.Errorf("snow = %+v, want 12 mm from 1.2 cm", first.Precipitation.Snow)
	}
	if first.Wind == nil || first.Wind.Speed == nil || math.Abs(*first.Wind.Speed-5) > 1e-9 {
		t.Errorf("wind speed = %+v, want 5 m/s from 18 km/h", first.Wind)
	}
	if first.IsDaylight == nil || !*first.IsDaylight {
		t.Error("first hour should be daylight")
	}

	second := wrapper.Hourlies[1]
	if second.WeatherCode != nil {
		t.Errorf("second hour weather code = %v, want nil", second.WeatherCode)
	}
	if second.Precipitation != nil {
		t.Errorf("second hour precipitation = %+v, want nil", second.Precipitation)
	}

	day := wrapper.Dailies[0]
	if day.Day == nil || day.Day.Temperature.Temperature == nil || *day.Day.Temperature.Temperature != 15 {
		t.Errorf("day max = %+v, want 15", day.Day)
	}
	if day.Night == nil || day.Night.Temperature.Temperature == nil || *day.Night.Temperature.Temperature != 4 {
		t.Errorf("night min = %+v, want 4", day.Night)
	}
	if day.UV == nil || day.UV.Index == nil || *day.UV.Index != 6 {
		t.Errorf("day UV = %+v, want 6", day.UV)
	}
}

func TestConvertOpenMeteoForecastNoHourly(t *testing.T) {
	for _, resp := range []*external.OpenMeteoForecastResponse{
		nil,
		{},
		{Hourly: &external.OpenMeteoHourly{}},
	} {
		if _, err := convertOpenMeteoForecast(resp); !errors.Is(err, model.ErrNoUsableData) {
			t.Errorf("convertOpenMeteoForecast(%+v) error = %v, want ErrNoUsableData", resp, err)
		}
	}
}

func TestConvertOpenMeteoAirQuality(t *testing.T) {
	base := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	resp := &external.OpenMeteoAirQualityResponse{
		Hourly: &external.OpenMeteoAirQualityHourly{
			Time:           []int64{base.Unix(), base.Add(time.Hour).Unix()},
			PM25:           []*float64{floatPtr(14), nil},
			CarbonMonoxide: []*float64{floatPtr(320), nil}, // µg/m³
		},
	}

	wrapper, err := convertOpenMeteoAirQuality(resp)
	if err != nil {
		t.Fatalf("convertOpenMeteoAirQuality() error = %v", err)
	}

	aq, ok := wrapper.AirQuality.Hourly[base]
	if !ok {
		t.Fatal("first hour missing from air quality map")
	}
	if aq.PM25 == nil || *aq.PM25 != 14 {
		t.Errorf("PM25 = %v, want 14", aq.PM25)
	}
	if aq.CO == nil || math.Abs(*aq.CO-0.32) > 1e-9 {
		t.Errorf("CO = %v, want 0.32 mg/m³", aq.CO)
	}

	// The all-nil hour must be dropped, not stored as an empty sample.
	if _, ok := wrapper.AirQuality.Hourly[base.Add(time.Hour)]; ok {
		t.Error("hour without any measurement stored")
	}

	if _, err := convertOpenMeteoAirQuality(&external.OpenMeteoAirQualityResponse{}); !errors.Is(err, model.ErrNoUsableData) {
		t.Errorf("empty payload error = %v, want ErrNoUsableData", err)
	}
}

func TestConvertOpenMeteoMinutely(t *testing.T) {
	base := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	resp := &external.OpenMeteoForecastResponse{
		Minutely15: &external.OpenMeteoMinutely{
			Time:          []int64{base.Unix(), base.Add(15 * time.Minute).Unix()},
			Precipitation: []*float64{floatPtr(0.5), floatPtr(0)}, // mm per 15 min
		},
	}

	wrapper, err := convertOpenMeteoMinutely(resp)
	if err != nil {
		t.Fatalf("convertOpenMeteoMinutely() error = %v", err)
	}
	if len(wrapper.Minutely) != 2 {
		t.Fatalf("got %d intervals, want 2", len(wrapper.Minutely))
	}

	first := wrapper.Minutely[0]
	if first.IntervalMinutes != 15 {
		t.Errorf("interval = %d, want 15", first.IntervalMinutes)
	}
	// 0.5 mm per 15 minutes is 2 mm/h.
	want := entity.DbzFromIntensity(2)
	if first.Dbz == nil || *first.Dbz != want {
		t.Errorf("dbz = %v, want %d", first.Dbz, want)
	}

	second := wrapper.Minutely[1]
	if second.Dbz == nil || *second.Dbz != 0 {
		t.Errorf("dry interval dbz = %v, want 0", second.Dbz)
	}
}

func TestConvertOpenMeteoPlace(t *testing.T) {
	resp := &external.OpenMeteoGeocodingResponse{
		Results: []external.OpenMeteoGeocodingResult{
			{Name: "Lyon", Country: "France", Admin1: "Auvergne-Rhône-Alpes", Timezone: "Europe/Paris", Latitude: 45.76, Longitude: 4.84},
			{Name: "Lyons", Country: "United States"},
		},
	}

	place, err := convertOpenMeteoPlace(resp)
	if err != nil {
		t.Fatalf("convertOpenMeteoPlace() error = %v", err)
	}
	if place.Name != "Lyon" || place.TimeZone != "Europe/Paris" {
		t.Errorf("place = %+v, want first result", place)
	}

	if _, err := convertOpenMeteoPlace(&external.OpenMeteoGeocodingResponse{}); !errors.Is(err, model.ErrNoUsableData) {
		t.Errorf("empty geocoding error = %v, want ErrNoUsableData", err)
	}
}
