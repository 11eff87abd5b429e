package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/api"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/db"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/queue"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/synth"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
)

type refreshUseCase struct {
	registry        *api.Registry
	weatherGateway  db.WeatherGateway
	locationGateway db.LocationGateway
	queueSender     queue.Sender
	queueName       string
	batchSize       int
	retention       time.Duration
	now             func() time.Time
}

func NewRefreshUseCase(registry *api.Registry, weatherGateway db.WeatherGateway, locationGateway db.LocationGateway, queueSender queue.Sender, queueName string, batchSize int, retention time.Duration) UseCase {
	return &refreshUseCase{
		registry:        registry,
		weatherGateway:  weatherGateway,
		locationGateway: locationGateway,
		queueSender:     queueSender,
		queueName:       queueName,
		batchSize:       batchSize,
		retention:       retention,
		now:             time.Now,
	}
}

// RefreshWeather fetches the requested features in parallel, merges over the
// cached aggregate and persists the result in one transactional save.
func (uc *refreshUseCase) RefreshWeather(ctx context.Context, locationID string, features []entity.Feature) (*model.RefreshResult, error) {
	requestID := uuid.New().String()

	loc, err := uc.locationGateway.FindByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %s: %w", locationID, err)
	}
	if loc == nil {
		return nil, fmt.Errorf("location %s not found", locationID)
	}

	if len(features) == 0 {
		features = refreshableFeatures()
	}

	log.Info("Starting weather refresh",
		zap.String("request_id", requestID),
		zap.String("location_id", locationID),
		zap.String("state", string(model.RefreshStateRequesting)),
		zap.Int("features", len(features)))

	failed := make(map[entity.Feature]error)

	// Map every requested feature to the single source that will serve it.
	perFeature := make(map[entity.Feature]api.WeatherSource)
	for _, feature := range features {
		source, err := uc.registry.ResolveSource(*loc, feature)
		if err != nil {
			failed[feature] = err
			continue
		}
		perFeature[feature] = source
	}

	updated, err := uc.refreshParameters(ctx, *loc, features, perFeature, failed)
	if err != nil {
		return nil, err
	}
	location := updated

	wrappers := uc.fetchFeaturesInParallel(ctx, location, perFeature, failed)

	// A canceled refresh never writes; the caller retries with fresh state.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log.Info("Merging weather refresh",
		zap.String("request_id", requestID),
		zap.String("location_id", locationID),
		zap.String("state", string(model.RefreshStateMerging)))

	cached, err := uc.weatherGateway.Load(ctx, locationID, db.LoadOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to load cached weather for %s: %w", locationID, err)
	}

	now := uc.now()
	zone := locationZone(location)
	weather := mergeWeather(cached, wrappers, failed, now)
	weather = synth.Complete(weather, zone, now)

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := uc.weatherGateway.Save(ctx, locationID, weather); err != nil {
		return nil, fmt.Errorf("failed to save weather for %s: %w", locationID, err)
	}

	state := model.RefreshStateCompleted
	if len(failed) > 0 {
		state = model.RefreshStatePartiallyFailed
		for feature, cause := range failed {
			log.Warn("Feature refresh failed",
				zap.String("request_id", requestID),
				zap.String("location_id", locationID),
				zap.String("feature", string(feature)),
				zap.Error(cause))
		}
	}

	log.Info("Completed weather refresh",
		zap.String("request_id", requestID),
		zap.String("location_id", locationID),
		zap.String("state", string(state)),
		zap.Int("failed_features", len(failed)))

	return &model.RefreshResult{
		RequestID:      requestID,
		State:          state,
		Weather:        &weather,
		FailedFeatures: failed,
	}, nil
}

// refreshParameters resolves provider parameters for sources that want a
// refresh. A source that cannot resolve fails every feature it serves.
func (uc *refreshUseCase) refreshParameters(ctx context.Context, loc entity.Location, features []entity.Feature, perFeature map[entity.Feature]api.WeatherSource, failed map[entity.Feature]error) (entity.Location, error) {
	for _, source := range uc.registry.SourcesNeedingParameters(loc, false, features) {
		params, err := source.ResolveLocationParameters(ctx, loc)
		if err != nil {
			for feature, serving := range perFeature {
				if serving.ID() == source.ID() {
					failed[feature] = fmt.Errorf("parameter refresh failed: %w", err)
					delete(perFeature, feature)
				}
			}
			continue
		}
		if len(params) == 0 {
			continue
		}

		loc = loc.WithSourceParameters(source.ID(), params)
		if err := uc.locationGateway.UpdateParameters(ctx, loc.ID, source.ID(), params); err != nil {
			return loc, fmt.Errorf("failed to persist parameters for %s: %w", source.ID(), err)
		}
	}
	return loc, nil
}

// fetchFeaturesInParallel fans out one goroutine per feature and collects
// wrappers and failures under a shared lock.
func (uc *refreshUseCase) fetchFeaturesInParallel(ctx context.Context, loc entity.Location, perFeature map[entity.Feature]api.WeatherSource, failed map[entity.Feature]error) map[entity.Feature]*model.WeatherWrapper {
	wrappers := make(map[entity.Feature]*model.WeatherWrapper, len(perFeature))

	var wg sync.WaitGroup
	var mu sync.Mutex

	for feature, source := range perFeature {
		wg.Add(1)
		go func(feature entity.Feature, source api.WeatherSource) {
			defer wg.Done()
			wrapper, err := source.Fetch(ctx, loc, feature)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[feature] = err
				return
			}
			wrappers[feature] = wrapper
		}(feature, source)
	}
	wg.Wait()

	return wrappers
}

// EnqueueAllLocations enqueues a refresh message for every tracked location
// in batches.
func (uc *refreshUseCase) EnqueueAllLocations(ctx context.Context, requestID string) error {
	log.Info("Starting refresh sweep", zap.String("request_id", requestID))

	locations, err := uc.locationGateway.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}

	totalEnqueued := 0
	totalFailed := 0

	for start := 0; start < len(locations); start += uc.batchSize {
		end := start + uc.batchSize
		if end > len(locations) {
			end = len(locations)
		}
		batch := locations[start:end]

		messages := make([]queue.BatchMessage, len(batch))
		for i, loc := range batch {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("sweep-%s-location-%s", requestID, loc.ID),
				Body:      Message{LocationID: loc.ID, RequestID: requestID},
			}
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.queueName, messages)
		if err != nil {
			log.Warn("Failed to send refresh batch",
				zap.String("request_id", requestID),
				zap.Int("batch_start", start),
				zap.Error(err))
			totalFailed += len(batch)
			continue
		}
		totalEnqueued += len(result.Successful)
		totalFailed += len(result.Failed)
		for _, failedID := range result.Failed {
			log.Warn("Failed to enqueue location refresh",
				zap.String("request_id", requestID),
				zap.String("message_id", failedID))
		}
	}

	log.Info("Completed refresh sweep",
		zap.String("request_id", requestID),
		zap.Int("total_locations", len(locations)),
		zap.Int("total_enqueued", totalEnqueued),
		zap.Int("total_failed", totalFailed))
	return nil
}

// PurgeExpired removes rows older than the retention window.
func (uc *refreshUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := uc.now().Add(-uc.retention)
	removed, err := uc.weatherGateway.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired weather: %w", err)
	}
	log.Infof("Purged %d expired weather rows older than %s", removed, cutoff.Format(time.RFC3339))
	return removed, nil
}

// refreshableFeatures are the features a refresh requests by default.
func refreshableFeatures() []entity.Feature {
	var features []entity.Feature
	for _, feature := range entity.AllFeatures() {
		if feature == entity.FeatureReverseGeocoding {
			continue
		}
		features = append(features, feature)
	}
	return features
}

func locationZone(loc entity.Location) *time.Location {
	zone, err := time.LoadLocation(loc.TimeZone)
	if err != nil || zone == nil {
		return time.UTC
	}
	return zone
}

// IsRetryable reports whether a refresh failure is worth retrying by the
// queue; quota and auth failures are not.
func IsRetryable(err error) bool {
	return !errors.Is(err, model.ErrApiKeyMissing) &&
		!errors.Is(err, model.ErrApiUnauthorized) &&
		!errors.Is(err, model.ErrApiLimitReached)
}
