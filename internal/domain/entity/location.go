package entity

// Location is a place weather is tracked for. Parameters holds
// provider-specific resolved identifiers (grid points, location keys) keyed
// by source id; they are refreshed when coordinates change.
type Location struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"timeZone"`
	Country   string  `json:"country,omitempty"`
	City      string  `json:"city,omitempty"`

	// Parameters maps source id to that source's resolved location
	// parameters.
	Parameters map[string]map[string]string `json:"parameters,omitempty"`

	// FeatureSources maps a feature to the source id configured to serve it.
	// Features without an entry fall back to the registry's priority order.
	FeatureSources map[Feature]string `json:"featureSources,omitempty"`
}

// SourceParameters returns the resolved parameters for a source, or nil.
func (l Location) SourceParameters(sourceID string) map[string]string {
	if l.Parameters == nil {
		return nil
	}
	return l.Parameters[sourceID]
}

// WithSourceParameters returns a copy of the location with the source's
// parameters replaced. The receiver is not mutated.
func (l Location) WithSourceParameters(sourceID string, params map[string]string) Location {
	updated := make(map[string]map[string]string, len(l.Parameters)+1)
	for k, v := range l.Parameters {
		updated[k] = v
	}
	updated[sourceID] = params
	l.Parameters = updated
	return l
}
