package entity

import (
	"sort"
	"time"
)

// Base carries the refresh timestamp plus the per-feature last-update times.
// A feature's timestamp only advances when that feature's refresh succeeds.
type Base struct {
	RefreshTime          *time.Time `json:"refreshTime,omitempty"`
	ForecastUpdateTime   *time.Time `json:"forecastUpdateTime,omitempty"`
	CurrentUpdateTime    *time.Time `json:"currentUpdateTime,omitempty"`
	AirQualityUpdateTime *time.Time `json:"airQualityUpdateTime,omitempty"`
	PollenUpdateTime     *time.Time `json:"pollenUpdateTime,omitempty"`
	MinutelyUpdateTime   *time.Time `json:"minutelyUpdateTime,omitempty"`
	AlertsUpdateTime     *time.Time `json:"alertsUpdateTime,omitempty"`
	NormalsUpdateTime    *time.Time `json:"normalsUpdateTime,omitempty"`
}

// Current is the instantaneous conditions snapshot.
type Current struct {
	WeatherCode      *WeatherCode `json:"weatherCode,omitempty"`
	WeatherText      *string      `json:"weatherText,omitempty"`
	Temperature      *Temperature `json:"temperature,omitempty"`
	Wind             *Wind        `json:"wind,omitempty"`
	UV               *UV          `json:"uv,omitempty"`
	AirQuality       *AirQuality  `json:"airQuality,omitempty"`
	RelativeHumidity *float64     `json:"relativeHumidity,omitempty"`
	DewPoint         *float64     `json:"dewPoint,omitempty"`
	Pressure         *float64     `json:"pressure,omitempty"`
	CloudCover       *int         `json:"cloudCover,omitempty"`
	Visibility       *float64     `json:"visibility,omitempty"`
	ObservationTime  *time.Time   `json:"observationTime,omitempty"`
}

// Normals are the long-term monthly climatological averages for the month of
// the refresh, independent of the current forecast.
type Normals struct {
	Month                int      `json:"month"`
	DaytimeTemperature   *float64 `json:"daytimeTemperature,omitempty"`
	NighttimeTemperature *float64 `json:"nighttimeTemperature,omitempty"`
}

// Weather is the aggregate root for one location. Daily and Hourly are kept
// sorted ascending with no duplicate timestamps.
type Weather struct {
	Base     Base       `json:"base"`
	Current  *Current   `json:"current,omitempty"`
	Normals  *Normals   `json:"normals,omitempty"`
	Daily    []Daily    `json:"daily,omitempty"`
	Hourly   []Hourly   `json:"hourly,omitempty"`
	Minutely []Minutely `json:"minutely,omitempty"`
	Alerts   []Alert    `json:"alerts,omitempty"`
}

// CurrentAlerts returns the alerts active at the given instant. Activity is
// evaluated at read time, never stored.
func (w Weather) CurrentAlerts(now time.Time) []Alert {
	var active []Alert
	for _, alert := range w.Alerts {
		if alert.IsActive(now) {
			active = append(active, alert)
		}
	}
	return active
}

// DailyAt returns the daily entry whose date matches the calendar day of t
// in the given zone, or nil.
func (w Weather) DailyAt(t time.Time, zone *time.Location) *Daily {
	y, m, d := t.In(zone).Date()
	for i := range w.Daily {
		dy, dm, dd := w.Daily[i].Date.In(zone).Date()
		if dy == y && dm == m && dd == d {
			return &w.Daily[i]
		}
	}
	return nil
}

// SortDaily sorts the daily list ascending and drops duplicate dates,
// keeping the first occurrence.
func SortDaily(daily []Daily) []Daily {
	sort.SliceStable(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return dedupeDaily(daily)
}

// SortHourly sorts the hourly list ascending and drops duplicate instants,
// keeping the first occurrence.
func SortHourly(hourly []Hourly) []Hourly {
	sort.SliceStable(hourly, func(i, j int) bool { return hourly[i].Time.Before(hourly[j].Time) })
	return dedupeHourly(hourly)
}

func dedupeDaily(daily []Daily) []Daily {
	out := daily[:0]
	for i, d := range daily {
		if i > 0 && d.Date.Equal(daily[i-1].Date) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func dedupeHourly(hourly []Hourly) []Hourly {
	out := hourly[:0]
	for i, h := range hourly {
		if i > 0 && h.Time.Equal(hourly[i-1].Time) {
			continue
		}
		out = append(out, h)
	}
	return out
}
