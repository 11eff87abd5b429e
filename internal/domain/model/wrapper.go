package model

import (
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// WeatherWrapper is the canonical partial a converter produces: only the
// pieces the provider actually returned are populated. The orchestrator
// merges one wrapper per feature into the Weather aggregate.
type WeatherWrapper struct {
	Dailies    []entity.Daily
	Hourlies   []entity.Hourly
	Current    *entity.Current
	AirQuality *AirQualityWrapper
	Pollen     *PollenWrapper
	Minutely   []entity.Minutely
	Alerts     []entity.Alert
	Normals    *entity.Normals
}

// AirQualityWrapper carries air-quality data keyed by the hour it belongs
// to, plus an optional current snapshot, so it can be merged into hourly
// entries produced by a different source.
type AirQualityWrapper struct {
	Current *entity.AirQuality
	Hourly  map[time.Time]entity.AirQuality
}

// PollenWrapper carries pollen data keyed by the local calendar day it
// belongs to.
type PollenWrapper struct {
	Daily map[time.Time]entity.Pollen
}

// Place is a reverse-geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Admin     string  `json:"admin,omitempty"`
	TimeZone  string  `json:"timeZone,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
