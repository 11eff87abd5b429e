package entity

import (
	"math"
	"time"
)

// Minutely is one minute-level nowcast interval. Reflectivity is stored as
// radar dBZ; precipitation intensity is derived on read.
type Minutely struct {
	Time            time.Time `json:"time"`
	IntervalMinutes int       `json:"intervalMinutes"`
	Dbz             *int      `json:"dbz,omitempty"`
}

// PrecipitationIntensity converts the stored reflectivity to a precipitation
// intensity in mm/h using the Marshall-Palmer relation. Reflectivity at or
// below 5 dBZ yields zero intensity.
func (m Minutely) PrecipitationIntensity() *float64 {
	if m.Dbz == nil {
		return nil
	}
	intensity := IntensityFromDbz(*m.Dbz)
	return &intensity
}

// IntensityFromDbz converts radar reflectivity to precipitation intensity in
// mm/h: (10^(dBZ/10)/200)^(5/8) above 5 dBZ, zero otherwise.
func IntensityFromDbz(dbz int) float64 {
	if dbz <= 5 {
		return 0
	}
	return math.Pow(math.Pow(10, float64(dbz)/10)/200, 5.0/8.0)
}

// DbzFromIntensity is the rounded algebraic inverse of IntensityFromDbz.
// Zero or negative intensities map to 0 dBZ.
func DbzFromIntensity(intensity float64) int {
	if intensity <= 0 {
		return 0
	}
	return int(math.Round(10 * math.Log10(200*math.Pow(intensity, 8.0/5.0))))
}
