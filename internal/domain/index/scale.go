package index

// Scale maps a numeric value onto a fixed set of ascending bands. Bands are
// half-open intervals [low, high) except the topmost, which is unbounded.
// A nil input always classifies to nil, never to a default band.
type Scale struct {
	// Thresholds are the ascending lower bounds of bands 1..n. Values below
	// Thresholds[0] fall into band 0.
	Thresholds []float64
	// Levels holds one name per band; len(Levels) == len(Thresholds)+1.
	Levels []string
	// Colors holds one display color per band, same length as Levels.
	Colors []string
}

// Index returns the band number for value, or nil when value is nil.
func (s Scale) Index(value *float64) *int {
	if value == nil {
		return nil
	}
	band := 0
	for i, threshold := range s.Thresholds {
		if *value >= threshold {
			band = i + 1
		} else {
			break
		}
	}
	return &band
}

// Level returns the band name for value, or nil when value is nil.
func (s Scale) Level(value *float64) *string {
	idx := s.Index(value)
	if idx == nil {
		return nil
	}
	return &s.Levels[*idx]
}

// Color returns the band display color for value, or nil when value is nil
// or the scale carries no colors.
func (s Scale) Color(value *float64) *string {
	idx := s.Index(value)
	if idx == nil || len(s.Colors) != len(s.Levels) {
		return nil
	}
	return &s.Colors[*idx]
}
