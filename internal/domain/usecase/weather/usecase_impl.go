package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/api"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/db"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/queue"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/refresh"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/redis"
)

var ErrLocationNotFound = errors.New("location not found")

type weatherUseCase struct {
	registry        *api.Registry
	weatherGateway  db.WeatherGateway
	locationGateway db.LocationGateway
	queueSender     queue.Sender
	placeCache      *redis.Cache
	queueName       string
	now             func() time.Time
}

func NewWeatherUseCase(registry *api.Registry, weatherGateway db.WeatherGateway, locationGateway db.LocationGateway, queueSender queue.Sender, placeCache *redis.Cache, queueName string) UseCase {
	return &weatherUseCase{
		registry:        registry,
		weatherGateway:  weatherGateway,
		locationGateway: locationGateway,
		queueSender:     queueSender,
		placeCache:      placeCache,
		queueName:       queueName,
		now:             time.Now,
	}
}

// RegisterLocation reverse-geocodes the coordinates, stores the location and
// enqueues its first refresh.
func (uc *weatherUseCase) RegisterLocation(ctx context.Context, latitude, longitude float64, featureSources map[entity.Feature]string) (*entity.Location, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, errors.New("coordinates out of range")
	}

	place, err := uc.reverseGeocode(ctx, latitude, longitude)
	if err != nil {
		log.Warnf("Reverse geocoding failed for %.4f,%.4f: %v", latitude, longitude, err)
	}

	loc := entity.Location{
		Latitude:       latitude,
		Longitude:      longitude,
		TimeZone:       "UTC",
		FeatureSources: featureSources,
	}
	if place != nil {
		loc.City = place.Name
		loc.Country = place.Country
		if place.TimeZone != "" {
			loc.TimeZone = place.TimeZone
		}
	}

	saved, err := uc.locationGateway.Create(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}

	if err := uc.queueSender.SendMessage(ctx, uc.queueName, refresh.Message{LocationID: saved.ID}); err != nil {
		log.Warnf("Failed to enqueue initial refresh for location %s: %v", saved.ID, err)
	} else {
		log.Infof("Location %s (%s) registered and enqueued for refresh", saved.ID, saved.City)
	}
	return saved, nil
}

// reverseGeocode names the coordinates, caching the resolved place so
// repeated registrations nearby do not hit the provider.
func (uc *weatherUseCase) reverseGeocode(ctx context.Context, latitude, longitude float64) (*model.Place, error) {
	key := fmt.Sprintf("%.4f,%.4f", latitude, longitude)

	if uc.placeCache != nil {
		var cached model.Place
		found, err := uc.placeCache.Get(ctx, key, &cached)
		if err != nil {
			log.Warnf("Place cache lookup failed for %s: %v", key, err)
		}
		if found {
			return &cached, nil
		}
	}

	var geocoder api.ReverseGeocodingSource
	if source, err := uc.registry.ResolveSource(entity.Location{Latitude: latitude, Longitude: longitude}, entity.FeatureReverseGeocoding); err == nil {
		if candidate, ok := source.(api.ReverseGeocodingSource); ok {
			geocoder = candidate
		}
	}
	if geocoder == nil {
		return nil, model.ErrUnsupportedFeature
	}

	place, err := geocoder.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}

	if uc.placeCache != nil {
		if err := uc.placeCache.Set(ctx, key, place); err != nil {
			log.Warnf("Place cache store failed for %s: %v", key, err)
		}
	}
	return place, nil
}

func (uc *weatherUseCase) FindAllLocations(ctx context.Context) ([]entity.Location, error) {
	return uc.locationGateway.FindAll(ctx)
}

func (uc *weatherUseCase) RemoveLocation(ctx context.Context, locationID string) error {
	loc, err := uc.locationGateway.FindByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil {
		return ErrLocationNotFound
	}
	if err := uc.weatherGateway.DeleteByLocationID(ctx, locationID); err != nil {
		return fmt.Errorf("failed to delete weather for location %s: %w", locationID, err)
	}
	return uc.locationGateway.DeleteByID(ctx, locationID)
}

func (uc *weatherUseCase) GetWeatherByLocationID(ctx context.Context, locationID string) (*model.WeatherView, error) {
	weather, err := uc.loadWeather(ctx, locationID, db.LoadOptions{})
	if err != nil {
		return nil, err
	}
	view := model.NewWeatherView(*weather, uc.now())
	return &view, nil
}

func (uc *weatherUseCase) GetDailyListByLocationID(ctx context.Context, locationID string) ([]model.DailyView, error) {
	weather, err := uc.loadWeather(ctx, locationID, db.LoadOptions{SkipHourly: true, SkipMinutely: true, SkipAlerts: true})
	if err != nil {
		return nil, err
	}
	views := make([]model.DailyView, 0, len(weather.Daily))
	for _, daily := range weather.Daily {
		views = append(views, model.NewDailyView(daily))
	}
	return views, nil
}

func (uc *weatherUseCase) GetHourlyListByLocationID(ctx context.Context, locationID string) ([]model.HourlyView, error) {
	weather, err := uc.loadWeather(ctx, locationID, db.LoadOptions{SkipDaily: true, SkipMinutely: true, SkipAlerts: true})
	if err != nil {
		return nil, err
	}
	views := make([]model.HourlyView, 0, len(weather.Hourly))
	for _, hourly := range weather.Hourly {
		views = append(views, model.NewHourlyView(hourly))
	}
	return views, nil
}

// GetCurrentAlertsByLocationID filters alerts by activity at read time.
func (uc *weatherUseCase) GetCurrentAlertsByLocationID(ctx context.Context, locationID string, now time.Time) ([]model.AlertView, error) {
	weather, err := uc.loadWeather(ctx, locationID, db.LoadOptions{SkipDaily: true, SkipHourly: true, SkipMinutely: true})
	if err != nil {
		return nil, err
	}

	views := make([]model.AlertView, 0)
	for _, alert := range weather.CurrentAlerts(now) {
		views = append(views, model.NewAlertView(alert, now))
	}
	return views, nil
}

func (uc *weatherUseCase) loadWeather(ctx context.Context, locationID string, opts db.LoadOptions) (*entity.Weather, error) {
	loc, err := uc.locationGateway.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, ErrLocationNotFound
	}

	weather, err := uc.weatherGateway.Load(ctx, locationID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load weather for location %s: %w", locationID, err)
	}
	if weather == nil {
		weather = &entity.Weather{}
	}
	return weather, nil
}
