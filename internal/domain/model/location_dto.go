package model

import "github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"

// RegisterLocationDTO is the payload to start tracking coordinates.
// FeatureSources pins a feature to one source id; unset features are
// resolved automatically.
type RegisterLocationDTO struct {
	Latitude       float64                   `json:"latitude"`
	Longitude      float64                   `json:"longitude"`
	FeatureSources map[entity.Feature]string `json:"featureSources,omitempty"`
}
