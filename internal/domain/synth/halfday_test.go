package synth

import (
	"testing"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

func TestCompleteHalfDays(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	code := entity.WeatherCodeRain

	hourlies := []entity.Hourly{
		{
			Time:        date.Add(8 * time.Hour),
			Temperature: &entity.Temperature{Temperature: fptr(12)},
			Wind:        &entity.Wind{Speed: fptr(3)},
			Precipitation: &entity.Precipitation{
				Rain: fptr(1.5),
			},
			PrecipitationProbability: &entity.PrecipitationProbability{Total: fptr(30)},
		},
		{
			Time:        date.Add(12 * time.Hour),
			WeatherCode: &code,
			Temperature: &entity.Temperature{Temperature: fptr(17)},
			Wind:        &entity.Wind{Speed: fptr(6)},
			Precipitation: &entity.Precipitation{
				Rain: fptr(2.5),
			},
			PrecipitationProbability: &entity.PrecipitationProbability{Total: fptr(70)},
		},
		{
			Time:        date.Add(20 * time.Hour),
			Temperature: &entity.Temperature{Temperature: fptr(8)},
			Wind:        &entity.Wind{Speed: fptr(4)},
		},
		{
			Time:        date.Add(26 * time.Hour), // 02:00 next morning, still the night half
			Temperature: &entity.Temperature{Temperature: fptr(5)},
		},
	}

	dailies := CompleteHalfDays([]entity.Daily{{Date: date}}, hourlies, time.UTC)
	if len(dailies) != 1 {
		t.Fatalf("got %d dailies, want 1", len(dailies))
	}
	day := dailies[0].Day
	night := dailies[0].Night

	if day == nil {
		t.Fatal("day half not synthesized")
	}
	if day.WeatherCode == nil || *day.WeatherCode != entity.WeatherCodeRain {
		t.Errorf("day weather code = %v, want RAIN from the hour nearest noon", day.WeatherCode)
	}
	if day.Temperature == nil || day.Temperature.Temperature == nil || *day.Temperature.Temperature != 17 {
		t.Errorf("day temperature = %+v, want max 17", day.Temperature)
	}
	if day.Precipitation == nil || day.Precipitation.Rain == nil || *day.Precipitation.Rain != 4 {
		t.Errorf("day rain = %+v, want sum 4", day.Precipitation)
	}
	if day.PrecipitationProbability == nil || day.PrecipitationProbability.Total == nil || *day.PrecipitationProbability.Total != 70 {
		t.Errorf("day probability = %+v, want max 70", day.PrecipitationProbability)
	}
	if day.Wind == nil || day.Wind.Speed == nil || *day.Wind.Speed != 6 {
		t.Errorf("day wind = %+v, want strongest 6 m/s", day.Wind)
	}

	if night == nil {
		t.Fatal("night half not synthesized")
	}
	if night.Temperature == nil || night.Temperature.Temperature == nil || *night.Temperature.Temperature != 5 {
		t.Errorf("night temperature = %+v, want min 5 including early-morning hours", night.Temperature)
	}
}

func TestCompleteHalfDaysKeepsExistingValues(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	existing := &entity.HalfDay{Temperature: &entity.Temperature{Temperature: fptr(30)}}

	hourlies := []entity.Hourly{
		{Time: date.Add(12 * time.Hour), Temperature: &entity.Temperature{Temperature: fptr(17)}},
	}

	dailies := CompleteHalfDays([]entity.Daily{{Date: date, Day: existing}}, hourlies, time.UTC)
	day := dailies[0].Day
	if day.Temperature == nil || day.Temperature.Temperature == nil || *day.Temperature.Temperature != 30 {
		t.Errorf("existing temperature overwritten: %+v", day.Temperature)
	}
}

func TestCompleteHalfDaysWithoutHours(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	dailies := CompleteHalfDays([]entity.Daily{{Date: date}}, nil, time.UTC)
	if dailies[0].Day != nil || dailies[0].Night != nil {
		t.Errorf("halves synthesized without any hourly data: %+v", dailies[0])
	}
}

func TestBackfillHourlyDaylightAndUV(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	sunrise := date.Add(6 * time.Hour)
	sunset := date.Add(18 * time.Hour)

	dailies := []entity.Daily{{
		Date: date,
		Sun:  &entity.Astro{RiseTime: &sunrise, SetTime: &sunset},
		UV:   entity.NewUV(fptr(8)),
	}}
	hourlies := []entity.Hourly{
		{Time: date.Add(12 * time.Hour)},
		{Time: date.Add(22 * time.Hour)},
	}

	out := BackfillHourlyDaylightAndUV(dailies, hourlies, time.UTC)

	if out[0].IsDaylight == nil || !*out[0].IsDaylight {
		t.Error("noon hour not flagged as daylight")
	}
	if out[0].UV == nil || out[0].UV.Index == nil || *out[0].UV.Index != 8 {
		t.Errorf("noon UV = %+v, want interpolated max 8", out[0].UV)
	}

	if out[1].IsDaylight == nil || *out[1].IsDaylight {
		t.Error("22:00 hour flagged as daylight")
	}
	if out[1].UV != nil {
		t.Errorf("22:00 UV = %+v, want nil outside daylight", out[1].UV)
	}

	// The inputs must not be mutated.
	if hourlies[0].IsDaylight != nil {
		t.Error("input hourly slice was mutated")
	}
}

func TestCompleteFillsPrecipitationTotals(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	weather := entity.Weather{
		Hourly: []entity.Hourly{{
			Time:          date.Add(9 * time.Hour),
			Precipitation: &entity.Precipitation{Rain: fptr(2), Snow: fptr(1)},
		}},
	}

	out := Complete(weather, time.UTC, date.Add(10*time.Hour))
	got := out.Hourly[0].Precipitation
	if got.Total == nil || *got.Total != 3 {
		t.Errorf("hourly precipitation total = %+v, want 3", got.Total)
	}
	if weather.Hourly[0].Precipitation.Total != nil {
		t.Error("input weather was mutated")
	}
}
