package entity

import (
	"testing"
	"time"
)

func TestSortDaily(t *testing.T) {
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	hours := fptr(9.5)

	daily := SortDaily([]Daily{
		{Date: day.Add(48 * time.Hour)},
		{Date: day, HoursOfSun: hours},
		{Date: day.Add(24 * time.Hour)},
		{Date: day}, // duplicate, must lose to the first occurrence
	})

	if len(daily) != 3 {
		t.Fatalf("got %d dailies, want 3 after dedupe", len(daily))
	}
	for i := 1; i < len(daily); i++ {
		if !daily[i-1].Date.Before(daily[i].Date) {
			t.Errorf("dailies not ascending at %d: %v >= %v", i, daily[i-1].Date, daily[i].Date)
		}
	}
	if daily[0].HoursOfSun != hours {
		t.Error("dedupe kept the later duplicate")
	}
}

func TestSortHourly(t *testing.T) {
	base := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)

	hourly := SortHourly([]Hourly{
		{Time: base.Add(2 * time.Hour)},
		{Time: base},
		{Time: base.Add(time.Hour)},
		{Time: base.Add(time.Hour)},
	})

	if len(hourly) != 3 {
		t.Fatalf("got %d hourlies, want 3 after dedupe", len(hourly))
	}
	for i := 1; i < len(hourly); i++ {
		if !hourly[i-1].Time.Before(hourly[i].Time) {
			t.Errorf("hourlies not ascending at %d", i)
		}
	}
}

func TestCurrentAlerts(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-2 * time.Hour)
	earlier := now.Add(-3 * time.Hour)
	future := now.Add(2 * time.Hour)

	weather := Weather{Alerts: []Alert{
		{AlertID: "active", StartTime: &past, EndTime: &future},
		{AlertID: "expired", StartTime: &earlier, EndTime: &past},
		{AlertID: "unbounded"},
	}}

	active := weather.CurrentAlerts(now)
	if len(active) != 2 {
		t.Fatalf("got %d active alerts, want 2", len(active))
	}
	if active[0].AlertID != "active" || active[1].AlertID != "unbounded" {
		t.Errorf("active alerts = %s, %s", active[0].AlertID, active[1].AlertID)
	}
}

func TestDailyAt(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, zone)

	weather := Weather{Daily: []Daily{
		{Date: day},
		{Date: day.Add(24 * time.Hour)},
	}}

	got := weather.DailyAt(time.Date(2026, 4, 10, 15, 30, 0, 0, zone), zone)
	if got == nil || !got.Date.Equal(day) {
		t.Fatalf("DailyAt = %+v, want the matching day", got)
	}

	if got := weather.DailyAt(time.Date(2026, 4, 20, 0, 0, 0, 0, zone), zone); got != nil {
		t.Errorf("DailyAt outside the range = %+v, want nil", got)
	}
}
