package entity

import (
	"testing"
	"time"
)

func TestAlertIsActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name  string
		alert Alert
		want  bool
	}{
		{name: "unbounded alert is always active", alert: Alert{}, want: true},
		{name: "inside window", alert: Alert{StartTime: &before, EndTime: &after}, want: true},
		{name: "window starts now", alert: Alert{StartTime: &now, EndTime: &after}, want: true},
		{name: "window already over", alert: Alert{StartTime: &before, EndTime: &now}, want: false},
		{name: "only end, still open", alert: Alert{EndTime: &after}, want: true},
		{name: "only end, expired", alert: Alert{EndTime: &before}, want: false},
		{name: "only start, begun", alert: Alert{StartTime: &before}, want: true},
		{name: "only start, not yet", alert: Alert{StartTime: &after}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.alert.IsActive(now); got != tt.want {
				t.Errorf("IsActive() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestAlertSeverityColor(t *testing.T) {
	if got := AlertSeverityExtreme.Color(); got != "#b71c1c" {
		t.Errorf("AlertSeverityExtreme.Color() = %q", got)
	}
	if got := AlertSeverityUnknown.Color(); got != "#8c8c8c" {
		t.Errorf("AlertSeverityUnknown.Color() = %q", got)
	}
}
