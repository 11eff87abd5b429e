package entity

import "time"

// AlertSeverity ranks an alert for display ordering.
type AlertSeverity int

const (
	AlertSeverityUnknown AlertSeverity = iota
	AlertSeverityMinor
	AlertSeverityModerate
	AlertSeveritySevere
	AlertSeverityExtreme
)

var alertSeverityColors = map[AlertSeverity]string{
	AlertSeverityUnknown:  "#8c8c8c",
	AlertSeverityMinor:    "#ffee58",
	AlertSeverityModerate: "#ff9800",
	AlertSeveritySevere:   "#f44336",
	AlertSeverityExtreme:  "#b71c1c",
}

// Color returns the default display color for the severity.
func (s AlertSeverity) Color() string {
	return alertSeverityColors[s]
}

// Alert is a weather warning. AlertID is provider-scoped and stable across
// refreshes so replaced lists dedupe naturally.
type Alert struct {
	AlertID     string        `json:"alertId"`
	StartTime   *time.Time    `json:"startTime,omitempty"`
	EndTime     *time.Time    `json:"endTime,omitempty"`
	Headline    *string       `json:"headline,omitempty"`
	Description *string       `json:"description,omitempty"`
	Instruction *string       `json:"instruction,omitempty"`
	Source      *string       `json:"source,omitempty"`
	Severity    AlertSeverity `json:"severity"`
	Color       *string       `json:"color,omitempty"`
}

// IsActive reports whether the alert applies at the given instant. Unbounded
// alerts are always active; a missing bound leaves that side open.
func (a Alert) IsActive(now time.Time) bool {
	switch {
	case a.StartTime == nil && a.EndTime == nil:
		return true
	case a.StartTime != nil && a.EndTime != nil:
		return !now.Before(*a.StartTime) && now.Before(*a.EndTime)
	case a.EndTime != nil:
		return now.Before(*a.EndTime)
	default:
		return now.After(*a.StartTime)
	}
}
