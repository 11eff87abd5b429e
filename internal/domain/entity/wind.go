package entity

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/index"
)

// Wind holds wind conditions in canonical units: speed and gusts in m/s,
// direction in meteorological degrees. A degree of -1 means variable wind.
type Wind struct {
	Speed  *float64 `json:"speed,omitempty"`
	Degree *float64 `json:"degree,omitempty"`
	Gusts  *float64 `json:"gusts,omitempty"`
}

var windArrows = []string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// Direction returns the 16-point compass direction for the wind degree,
// "VRB" for variable wind, and nil when no degree is known.
func (w Wind) Direction() *string {
	if w.Degree == nil {
		return nil
	}
	if *w.Degree < 0 {
		variable := "VRB"
		return &variable
	}
	sector := int((*w.Degree+11.25)/22.5) % 16
	return &windArrows[sector]
}

// Level classifies the wind speed on the Beaufort bands, nil when the speed
// is unknown.
func (w Wind) Level() *string {
	return index.WindScale.Level(w.Speed)
}

// IsValid reports whether a speed is present.
func (w Wind) IsValid() bool {
	return w.Speed != nil
}
