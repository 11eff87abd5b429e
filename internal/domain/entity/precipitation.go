package entity

// Precipitation is a per-category precipitation quantity in millimeters.
// Total is not reconciled against the category sums; providers disagree on
// whether the categories are exhaustive.
type Precipitation struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}

// CategorySum returns the sum of the populated categories, or nil when no
// category is populated. Used to fill Total only when Total is absent.
func (p Precipitation) CategorySum() *float64 {
	var sum float64
	var found bool
	for _, v := range []*float64{p.Thunderstorm, p.Rain, p.Snow, p.Ice} {
		if v != nil {
			sum += *v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &sum
}

// PrecipitationProbability is the per-category chance of precipitation in
// percent, parallel in shape to Precipitation.
type PrecipitationProbability struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}

// PrecipitationDuration is the per-category duration of precipitation in
// hours, parallel in shape to Precipitation.
type PrecipitationDuration struct {
	Total        *float64 `json:"total,omitempty"`
	Thunderstorm *float64 `json:"thunderstorm,omitempty"`
	Rain         *float64 `json:"rain,omitempty"`
	Snow         *float64 `json:"snow,omitempty"`
	Ice          *float64 `json:"ice,omitempty"`
}
