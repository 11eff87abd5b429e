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

func TestConvertNWSForecastPhrase(t *testing.T) {
	tests := []struct {
		phrase string
		want   entity.WeatherCode
	}{
		{phrase: "Chance Showers And Thunderstorms", want: entity.WeatherCodeThunderstorm},
		{phrase: "Rain Showers Likely", want: entity.WeatherCodeRain},
		{phrase: "Freezing Rain", want: entity.WeatherCodeSleet},
		{phrase: "Snow Showers", want: entity.WeatherCodeSnow},
		{phrase: "Patchy Fog", want: entity.WeatherCodeFog},
		{phrase: "Areas Of Smoke", want: entity.WeatherCodeHaze},
		{phrase: "Mostly Cloudy", want: entity.WeatherCodeCloudy},
		{phrase: "Partly Sunny", want: entity.WeatherCodePartlyCloudy},
		{phrase: "Mostly Clear", want: entity.WeatherCodePartlyCloudy},
		{phrase: "Sunny", want: entity.WeatherCodeClear},
		{phrase: "Breezy", want: entity.WeatherCodeWind},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got := convertNWSForecastPhrase(tt.phrase)
			if got == nil || *got != tt.want {
				t.Errorf("convertNWSForecastPhrase(%q) = %v, want %s", tt.phrase, got, tt.want)
			}
		})
	}

	if got := convertNWSForecastPhrase("Aurora Likely"); got != nil {
		t.Errorf("convertNWSForecastPhrase unknown phrase = %s, want nil", *got)
	}
}

func TestParseNWSWindSpeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "plain mph", raw: "10 mph", want: floatPtr(mphToMs(10))},
		{name: "range keeps upper bound", raw: "10 to 20 mph", want: floatPtr(mphToMs(20))},
		{name: "km/h", raw: "15 km/h", want: floatPtr(kmhToMs(15))},
		{name: "knots", raw: "12 kt", want: floatPtr(knotsToMs(12))},
		{name: "empty", raw: "", want: nil},
		{name: "unknown unit", raw: "10 furlongs", want: nil},
		{name: "not a number", raw: "calm mph", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseNWSWindSpeed(tt.raw)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseNWSWindSpeed(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("parseNWSWindSpeed(%q) = %f, want %f", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestConvertNWSDailies(t *testing.T) {
	daily := &external.NWSForecastResponse{
		Properties: external.NWSForecastProperties{
			Periods: []external.NWSForecastPeriod{
				{
					StartTime:       "2026-04-10T06:00:00-04:00",
					IsDaytime:       true,
					Temperature:     floatPtr(68),
					TemperatureUnit: "F",
					WindSpeed:       "5 to 10 mph",
					WindDirection:   "SW",
					ShortForecast:   "Mostly Sunny",
				},
				{
					// Overnight period starting before 06:00 belongs to the
					// previous calendar day.
					StartTime:       "2026-04-11T00:00:00-04:00",
					IsDaytime:       false,
					Temperature:     floatPtr(50),
					TemperatureUnit: "F",
					ShortForecast:   "Partly Cloudy",
				},
			},
		},
	}

	zone := time.FixedZone("EDT", -4*3600)
	wrapper, err := convertNWSForecast(daily, nil, zone)
	if err != nil {
		t.Fatalf("convertNWSForecast() error = %v", err)
	}
	if len(wrapper.Dailies) != 1 {
		t.Fatalf("got %d dailies, want 1 (overnight period merged)", len(wrapper.Dailies))
	}

	day := wrapper.Dailies[0]
	if day.Day == nil || day.Night == nil {
		t.Fatalf("halves = %+v / %+v, want both", day.Day, day.Night)
	}
	if day.Day.Temperature == nil || math.Abs(*day.Day.Temperature.Temperature-20) > 1e-9 {
		t.Errorf("day temperature = %+v, want 20°C from 68°F", day.Day.Temperature)
	}
	if day.Day.Wind == nil || day.Day.Wind.Speed == nil || math.Abs(*day.Day.Wind.Speed-mphToMs(10)) > 1e-9 {
		t.Errorf("day wind = %+v, want upper bound of the range", day.Day.Wind)
	}
	if day.Day.Wind.Degree == nil || *day.Day.Wind.Degree != 225 {
		t.Errorf("day wind degree = %+v, want 225 for SW", day.Day.Wind.Degree)
	}
	if day.Night.WeatherCode == nil || *day.Night.WeatherCode != entity.WeatherCodePartlyCloudy {
		t.Errorf("night code = %v, want PARTLY_CLOUDY", day.Night.WeatherCode)
	}
}

func TestConvertNWSForecastEmpty(t *testing.T) {
	if _, err := convertNWSForecast(nil, nil, time.UTC); !errors.Is(err, model.ErrNoUsableData) {
		t.Errorf("convertNWSForecast(nil, nil) error = %v, want ErrNoUsableData", err)
	}
	empty := &external.NWSForecastResponse{}
	if _, err := convertNWSForecast(empty, empty, time.UTC); !errors.Is(err, model.ErrNoUsableData) {
		t.Errorf("convertNWSForecast(empty) error = %v, want ErrNoUsableData", err)
	}
}

func TestConvertNWSObservation(t *testing.T) {
	now := time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC)

	resp := &external.NWSObservationResponse{
		Properties: external.NWSObservationProperties{
			Timestamp:          "2026-04-10T17:40:00+00:00",
			TextDescription:    "Light Rain",
			Temperature:        &external.NWSQuantity{UnitCode: "wmoUnit:degC", Value: floatPtr(12.5)},
			WindChill:          &external.NWSQuantity{UnitCode: "wmoUnit:degF", Value: floatPtr(50)},
			WindSpeed:          &external.NWSQuantity{UnitCode: "wmoUnit:km_h-1", Value: floatPtr(18)},
			BarometricPressure: &external.NWSQuantity{UnitCode: "wmoUnit:Pa", Value: floatPtr(101320)},
		},
	}

	wrapper, err := convertNWSObservation(resp, now)
	if err != nil {
		t.Fatalf("convertNWSObservation() error = %v", err)
	}
	current := wrapper.Current
	if current.WeatherCode == nil || *current.WeatherCode != entity.WeatherCodeRain {
		t.Errorf("code = %v, want RAIN", current.WeatherCode)
	}
	if current.Temperature == nil || *current.Temperature.Temperature != 12.5 {
		t.Errorf("temperature = %+v, want 12.5 passthrough", current.Temperature)
	}
	if math.Abs(*current.Temperature.WindChill-10) > 1e-9 {
		t.Errorf("wind chill = %f, want 10°C from 50°F", *current.Temperature.WindChill)
	}
	if current.Wind == nil || math.Abs(*current.Wind.Speed-5) > 1e-9 {
		t.Errorf("wind speed = %+v, want 5 m/s from 18 km/h", current.Wind)
	}
	if current.Pressure == nil || math.Abs(*current.Pressure-1013.2) > 1e-9 {
		t.Errorf("pressure = %v, want 1013.2 hPa from Pa", current.Pressure)
	}
}

func TestConvertNWSObservationOutdated(t *testing.T) {
	now := time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC)
	resp := &external.NWSObservationResponse{
		Properties: external.NWSObservationProperties{
			Timestamp: "2026-04-09T17:00:00+00:00",
		},
	}
	if _, err := convertNWSObservation(resp, now); !errors.Is(err, model.ErrOutdatedServerData) {
		t.Errorf("day-old observation error = %v, want ErrOutdatedServerData", err)
	}

	resp.Properties.Timestamp = "not-a-time"
	if _, err := convertNWSObservation(resp, now); !errors.Is(err, model.ErrParsing) {
		t.Errorf("bad timestamp error = %v, want ErrParsing", err)
	}
}

func TestConvertNWSAlerts(t *testing.T) {
	onset := "2026-04-10T12:00:00+00:00"
	resp := &external.NWSAlertsResponse{
		Features: []external.NWSAlertFeature{
			{Properties: external.NWSAlertProperties{
				ID:         "urn:oid:1",
				Event:      "Flood Warning",
				Severity:   "Severe",
				Onset:      &onset,
				SenderName: "NWS Boston",
			}},
			{Properties: external.NWSAlertProperties{
				ID:       "urn:oid:2",
				Severity: "Something Else",
			}},
		},
	}

	wrapper, err := convertNWSAlerts(resp)
	if err != nil {
		t.Fatalf("convertNWSAlerts() error = %v", err)
	}
	if len(wrapper.Alerts) != 2 {
		t.Fatalf("got %d alerts, want 2", len(wrapper.Alerts))
	}

	first := wrapper.Alerts[0]
	if first.Severity != entity.AlertSeveritySevere {
		t.Errorf("severity = %v, want severe", first.Severity)
	}
	if first.Headline == nil || *first.Headline != "Flood Warning" {
		t.Errorf("headline = %v, want event name fallback", first.Headline)
	}
	if first.StartTime == nil || !first.StartTime.Equal(time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("start time = %v", first.StartTime)
	}

	if wrapper.Alerts[1].Severity != entity.AlertSeverityUnknown {
		t.Errorf("unmapped severity = %v, want unknown", wrapper.Alerts[1].Severity)
	}
}
