package entity

// Temperature groups the observed temperature with the provider-specific
// "felt" variants. All values are in degrees Celsius. Every field is
// optional; no provider populates all of them.
type Temperature struct {
	Temperature   *float64 `json:"temperature,omitempty"`
	RealFeel      *float64 `json:"realFeel,omitempty"`
	RealFeelShade *float64 `json:"realFeelShade,omitempty"`
	Apparent      *float64 `json:"apparent,omitempty"`
	WindChill     *float64 `json:"windChill,omitempty"`
	WetBulb       *float64 `json:"wetBulb,omitempty"`
}

// FeelsLike returns the first populated felt-temperature variant, in
// priority order. It is recomputed on every call and never stored.
func (t Temperature) FeelsLike() *float64 {
	for _, candidate := range []*float64{t.RealFeel, t.RealFeelShade, t.Apparent, t.WindChill, t.WetBulb} {
		if candidate != nil {
			return candidate
		}
	}
	return nil
}

// IsEmpty reports whether no field is populated.
func (t Temperature) IsEmpty() bool {
	return t.Temperature == nil && t.RealFeel == nil && t.RealFeelShade == nil &&
		t.Apparent == nil && t.WindChill == nil && t.WetBulb == nil
}
