package entity

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/index"
)

// Pollutant identifies one of the tracked air pollutants.
type Pollutant string

const (
	PollutantPM25 Pollutant = "PM25"
	PollutantPM10 Pollutant = "PM10"
	PollutantSO2  Pollutant = "SO2"
	PollutantNO2  Pollutant = "NO2"
	PollutantO3   Pollutant = "O3"
	PollutantCO   Pollutant = "CO"
)

// AllPollutants returns every tracked pollutant in a stable order.
func AllPollutants() []Pollutant {
	return []Pollutant{PollutantPM25, PollutantPM10, PollutantSO2, PollutantNO2, PollutantO3, PollutantCO}
}

// AirQuality holds pollutant concentrations in µg/m³ (CO in mg/m³). Each
// pollutant is independently optional; absence means "not measured", which
// is distinct from a measured zero.
type AirQuality struct {
	PM25 *float64 `json:"pm25,omitempty"`
	PM10 *float64 `json:"pm10,omitempty"`
	SO2  *float64 `json:"so2,omitempty"`
	NO2  *float64 `json:"no2,omitempty"`
	O3   *float64 `json:"o3,omitempty"`
	CO   *float64 `json:"co,omitempty"`
}

var pollutantScales = map[Pollutant]index.Scale{
	PollutantPM25: index.PM25Scale,
	PollutantPM10: index.PM10Scale,
	PollutantSO2:  index.SO2Scale,
	PollutantNO2:  index.NO2Scale,
	PollutantO3:   index.O3Scale,
	PollutantCO:   index.COScale,
}

// Concentration returns the stored concentration for the pollutant.
func (aq AirQuality) Concentration(p Pollutant) *float64 {
	switch p {
	case PollutantPM25:
		return aq.PM25
	case PollutantPM10:
		return aq.PM10
	case PollutantSO2:
		return aq.SO2
	case PollutantNO2:
		return aq.NO2
	case PollutantO3:
		return aq.O3
	case PollutantCO:
		return aq.CO
	}
	return nil
}

// Index classifies the pollutant concentration on its threshold table, nil
// when the pollutant was not measured.
func (aq AirQuality) Index(p Pollutant) *int {
	return pollutantScales[p].Index(aq.Concentration(p))
}

// GlobalIndex is the maximum of the per-pollutant indices. Unmeasured
// pollutants are excluded from the maximum; when nothing was measured the
// result is nil, never zero.
func (aq AirQuality) GlobalIndex() *int {
	var global *int
	for _, p := range AllPollutants() {
		idx := aq.Index(p)
		if idx == nil {
			continue
		}
		if global == nil || *idx > *global {
			global = idx
		}
	}
	return global
}

// GlobalLevel returns the band name for the global index.
func (aq AirQuality) GlobalLevel() *string {
	idx := aq.GlobalIndex()
	if idx == nil {
		return nil
	}
	return &index.PM25Scale.Levels[*idx]
}

// IsValid reports whether at least one pollutant was measured.
func (aq AirQuality) IsValid() bool {
	for _, p := range AllPollutants() {
		if aq.Concentration(p) != nil {
			return true
		}
	}
	return false
}
