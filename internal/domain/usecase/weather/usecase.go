package weather

import (
	"context"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

type UseCase interface {
	// RegisterLocation reverse-geocodes the coordinates, stores the location
	// and enqueues its first refresh.
	RegisterLocation(ctx context.Context, latitude, longitude float64, featureSources map[entity.Feature]string) (*entity.Location, error)

	// FindAllLocations lists every tracked location.
	FindAllLocations(ctx context.Context) ([]entity.Location, error)

	// RemoveLocation deletes the location and its stored weather.
	RemoveLocation(ctx context.Context, locationID string) error

	// GetWeatherByLocationID returns the full stored aggregate with the
	// derived read-time values attached.
	GetWeatherByLocationID(ctx context.Context, locationID string) (*model.WeatherView, error)

	// GetDailyListByLocationID returns the daily forecast only.
	GetDailyListByLocationID(ctx context.Context, locationID string) ([]model.DailyView, error)

	// GetHourlyListByLocationID returns the hourly forecast only.
	GetHourlyListByLocationID(ctx context.Context, locationID string) ([]model.HourlyView, error)

	// GetCurrentAlertsByLocationID returns the alerts active at the given
	// instant.
	GetCurrentAlertsByLocationID(ctx context.Context, locationID string, now time.Time) ([]model.AlertView, error)
}
