package model

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// RefreshState tracks a location refresh through its lifecycle.
type RefreshState string

const (
	RefreshStateIdle            RefreshState = "IDLE"
	RefreshStateRequesting      RefreshState = "REQUESTING"
	RefreshStateMerging         RefreshState = "MERGING"
	RefreshStateCompleted       RefreshState = "COMPLETED"
	RefreshStatePartiallyFailed RefreshState = "PARTIALLY_FAILED"
)

// RefreshResult is the terminal outcome of one location refresh: the merged
// weather (new data where the feature succeeded, prior cached data where it
// did not) and the per-feature failures for user-visible reporting.
type RefreshResult struct {
	RequestID      string                   `json:"requestId"`
	State          RefreshState             `json:"state"`
	Weather        *entity.Weather          `json:"weather,omitempty"`
	FailedFeatures map[entity.Feature]error `json:"-"`
}

// FailureMessages renders the failed-features map with string messages for
// API responses.
func (r RefreshResult) FailureMessages() map[entity.Feature]string {
	if len(r.FailedFeatures) == 0 {
		return nil
	}
	out := make(map[entity.Feature]string, len(r.FailedFeatures))
	for feature, err := range r.FailedFeatures {
		out[feature] = err.Error()
	}
	return out
}
