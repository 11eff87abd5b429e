package db

import (
	"context"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
)

// LoadOptions toggles which sub-collections a Load hydrates. Zero value
// loads everything.
type LoadOptions struct {
	SkipDaily    bool
	SkipHourly   bool
	SkipMinutely bool
	SkipAlerts   bool
}

type WeatherGateway interface {
	// Save persists the aggregate for the location, replacing every
	// sub-collection in one transaction. A partially-applied save is never
	// visible.
	Save(ctx context.Context, locationID string, weather entity.Weather) error

	// Load hydrates the stored aggregate, nil when none was saved yet.
	Load(ctx context.Context, locationID string, opts LoadOptions) (*entity.Weather, error)

	// DeleteOlderThan purges daily, hourly and minutely rows before the
	// cutoff plus alerts that ended before it. Returns rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteByLocationID removes the aggregate and all sub-collections.
	DeleteByLocationID(ctx context.Context, locationID string) error
}

type LocationGateway interface {
	FindByID(ctx context.Context, id string) (*entity.Location, error)
	FindAll(ctx context.Context) ([]entity.Location, error)
	Create(ctx context.Context, loc entity.Location) (*entity.Location, error)
	Update(ctx context.Context, loc entity.Location) (*entity.Location, error)

	// UpdateParameters replaces one source's resolved parameters.
	UpdateParameters(ctx context.Context, id string, sourceID string, params map[string]string) error

	DeleteByID(ctx context.Context, id string) error
}
