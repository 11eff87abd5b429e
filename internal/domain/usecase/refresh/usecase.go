package refresh

import (
	"context"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

type UseCase interface {
	// RefreshWeather fetches the requested features for the location in
	// parallel, merges the results over the cached aggregate, derives the
	// synthesized values and persists the outcome. Features that fail keep
	// their cached data and are reported in the result.
	RefreshWeather(ctx context.Context, locationID string, features []entity.Feature) (*model.RefreshResult, error)

	// EnqueueAllLocations enqueues a refresh message for every tracked
	// location in batches.
	EnqueueAllLocations(ctx context.Context, requestID string) error

	// PurgeExpired removes stored rows older than the retention window and
	// returns how many were removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// Message is the queue payload for one location refresh.
type Message struct {
	LocationID string           `json:"locationId"`
	Features   []entity.Feature `json:"features,omitempty"`
	RequestID  string           `json:"requestId,omitempty"`
}
