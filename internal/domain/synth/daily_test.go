package synth

import (
	"math"
	"testing"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

func fptr(v float64) *float64 { return &v }

func hourlyAQSeries(date time.Time, count int, pm25 float64) []entity.Hourly {
	out := make([]entity.Hourly, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, entity.Hourly{
			Time:       date.Add(time.Duration(i) * time.Hour),
			AirQuality: &entity.AirQuality{PM25: fptr(pm25)},
		})
	}
	return out
}

func TestDailyAirQualityFromHourly(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("seventeen hours is not enough", func(t *testing.T) {
		hourlies := hourlyAQSeries(date, 17, 12)
		if got := DailyAirQualityFromHourly(date, hourlies, time.UTC); got != nil {
			t.Errorf("DailyAirQualityFromHourly with 17 hours = %+v, want nil", got)
		}
	})

	t.Run("eighteen hours produces the mean", func(t *testing.T) {
		hourlies := hourlyAQSeries(date, 18, 12)
		got := DailyAirQualityFromHourly(date, hourlies, time.UTC)
		if got == nil || got.PM25 == nil {
			t.Fatalf("DailyAirQualityFromHourly with 18 hours = %+v, want aggregate", got)
		}
		if math.Abs(*got.PM25-12) > 1e-9 {
			t.Errorf("PM25 mean = %f, want 12", *got.PM25)
		}
	})

	t.Run("unmeasured pollutants stay nil", func(t *testing.T) {
		hourlies := hourlyAQSeries(date, 20, 12)
		got := DailyAirQualityFromHourly(date, hourlies, time.UTC)
		if got == nil {
			t.Fatal("want aggregate, got nil")
		}
		if got.O3 != nil {
			t.Errorf("O3 = %f, want nil", *got.O3)
		}
	})

	t.Run("hours of other days are excluded", func(t *testing.T) {
		hourlies := append(hourlyAQSeries(date.Add(-24*time.Hour), 24, 50), hourlyAQSeries(date, 10, 12)...)
		if got := DailyAirQualityFromHourly(date, hourlies, time.UTC); got != nil {
			t.Errorf("DailyAirQualityFromHourly = %+v, want nil when the day has too few hours", got)
		}
	})
}

func TestDailyUVFromHourly(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	hourlies := []entity.Hourly{
		{Time: date.Add(8 * time.Hour), UV: entity.NewUV(fptr(2))},
		{Time: date.Add(12 * time.Hour), UV: entity.NewUV(fptr(7.4))},
		{Time: date.Add(16 * time.Hour), UV: entity.NewUV(fptr(3))},
	}

	got := DailyUVFromHourly(date, hourlies, time.UTC)
	if got == nil || got.Index == nil || *got.Index != 7.4 {
		t.Fatalf("DailyUVFromHourly = %+v, want index 7.4", got)
	}
	if got.Level == nil || *got.Level != "Very High" {
		t.Errorf("Level = %v, want Very High", got.Level)
	}

	if got := DailyUVFromHourly(date, nil, time.UTC); got != nil {
		t.Errorf("DailyUVFromHourly without hours = %+v, want nil", got)
	}
}
