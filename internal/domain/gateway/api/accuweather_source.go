package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/http"
)

const AccuWeatherSourceID = "accu"

const accuWeatherLocationKeyParam = "locationKey"

// AccuWeatherSource serves forecast, current, pollen, nowcast, alert and
// normals data. Every call except the nowcast addresses a resolved location
// key instead of coordinates.
type AccuWeatherSource struct {
	client *http.Client
	apiKey string
}

var _ WeatherSource = (*AccuWeatherSource)(nil)
var _ ReverseGeocodingSource = (*AccuWeatherSource)(nil)

func NewAccuWeatherSource(client *http.Client, apiKey string) *AccuWeatherSource {
	return &AccuWeatherSource{client: client, apiKey: apiKey}
}

func (s *AccuWeatherSource) ID() string { return AccuWeatherSourceID }

func (s *AccuWeatherSource) Name() string { return "AccuWeather" }

func (s *AccuWeatherSource) SupportedFeatures() []entity.Feature {
	return []entity.Feature{
		entity.FeatureForecast,
		entity.FeatureCurrent,
		entity.FeaturePollen,
		entity.FeatureMinutely,
		entity.FeatureAlert,
		entity.FeatureNormals,
		entity.FeatureReverseGeocoding,
	}
}

func (s *AccuWeatherSource) IsFeatureSupportedForLocation(entity.Location, entity.Feature) bool {
	return true
}

// NeedsLocationParametersRefresh wants a refresh whenever the coordinates
// moved or no location key was resolved yet.
func (s *AccuWeatherSource) NeedsLocationParametersRefresh(loc entity.Location, coordinatesChanged bool, _ []entity.Feature) bool {
	if coordinatesChanged {
		return true
	}
	return loc.SourceParameters(s.ID())[accuWeatherLocationKeyParam] == ""
}

func (s *AccuWeatherSource) ResolveLocationParameters(ctx context.Context, loc entity.Location) (map[string]string, error) {
	if s.apiKey == "" {
		return nil, model.ErrApiKeyMissing
	}

	var success external.AccuWeatherLocationResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/locations/v1/cities/geoposition/search").
		WithQueryParams(map[string]string{
			"apikey": s.apiKey,
			"q":      formatCoordinate(loc.Latitude) + "," + formatCoordinate(loc.Longitude),
		}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}

	_, params, err := convertAccuWeatherLocation(&success)
	return params, err
}

func (s *AccuWeatherSource) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*model.Place, error) {
	if s.apiKey == "" {
		return nil, model.ErrApiKeyMissing
	}

	var success external.AccuWeatherLocationResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/locations/v1/cities/geoposition/search").
		WithQueryParams(map[string]string{
			"apikey": s.apiKey,
			"q":      formatCoordinate(latitude) + "," + formatCoordinate(longitude),
		}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}

	place, _, err := convertAccuWeatherLocation(&success)
	if place != nil {
		place.Latitude = latitude
		place.Longitude = longitude
	}
	return place, err
}

func (s *AccuWeatherSource) Fetch(ctx context.Context, loc entity.Location, feature entity.Feature) (*model.WeatherWrapper, error) {
	if s.apiKey == "" {
		return nil, model.ErrApiKeyMissing
	}

	switch feature {
	case entity.FeatureForecast:
		resp, err := s.fetchDaily(ctx, loc)
		if err != nil {
			return nil, err
		}
		return convertAccuWeatherForecast(resp, locationZone(loc))
	case entity.FeaturePollen:
		resp, err := s.fetchDaily(ctx, loc)
		if err != nil {
			return nil, err
		}
		return convertAccuWeatherPollen(resp, locationZone(loc))
	case entity.FeatureCurrent:
		return s.fetchCurrent(ctx, loc)
	case entity.FeatureMinutely:
		return s.fetchMinuteCast(ctx, loc)
	case entity.FeatureAlert:
		return s.fetchAlerts(ctx, loc)
	case entity.FeatureNormals:
		return s.fetchNormals(ctx, loc)
	default:
		return nil, fmt.Errorf("%w: %s by %s", model.ErrUnsupportedFeature, feature, s.Name())
	}
}

func (s *AccuWeatherSource) fetchDaily(ctx context.Context, loc entity.Location) (*external.AccuWeatherDailyResponse, error) {
	key, err := s.locationKey(loc)
	if err != nil {
		return nil, err
	}

	var success external.AccuWeatherDailyResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/forecasts/v1/daily/15day/" + key).
		WithQueryParams(map[string]string{"apikey": s.apiKey, "metric": "true", "details": "true"}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}
	return &success, nil
}

func (s *AccuWeatherSource) fetchCurrent(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	key, err := s.locationKey(loc)
	if err != nil {
		return nil, err
	}

	var success []external.AccuWeatherCurrentResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/currentconditions/v1/" + key).
		WithQueryParams(map[string]string{"apikey": s.apiKey, "details": "true"}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}
	return convertAccuWeatherCurrent(success)
}

func (s *AccuWeatherSource) fetchMinuteCast(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	var success external.AccuWeatherMinuteCastResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/forecasts/v1/minute/5minute").
		WithQueryParams(map[string]string{
			"apikey": s.apiKey,
			"q":      formatCoordinate(loc.Latitude) + "," + formatCoordinate(loc.Longitude),
		}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}
	return convertAccuWeatherMinuteCast(&success)
}

func (s *AccuWeatherSource) fetchAlerts(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	key, err := s.locationKey(loc)
	if err != nil {
		return nil, err
	}

	var success []external.AccuWeatherAlertResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/alerts/v1/" + key).
		WithQueryParams(map[string]string{"apikey": s.apiKey, "details": "true"}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}
	return convertAccuWeatherAlerts(success)
}

func (s *AccuWeatherSource) fetchNormals(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	key, err := s.locationKey(loc)
	if err != nil {
		return nil, err
	}
	now := time.Now().In(locationZone(loc))

	var success external.AccuWeatherClimoResponse
	var failure external.AccuWeatherErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/climo/v1/normals/" + strconv.Itoa(now.Year()) + "/" + fmt.Sprintf("%02d", int(now.Month())) + "/" + key).
		WithQueryParams(map[string]string{"apikey": s.apiKey}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, accuWeatherError(status, failure, err)
	}
	return convertAccuWeatherNormals(&success, now.Month())
}

func (s *AccuWeatherSource) locationKey(loc entity.Location) (string, error) {
	key := loc.SourceParameters(s.ID())[accuWeatherLocationKeyParam]
	if key == "" {
		return "", fmt.Errorf("%w: %s location key not resolved", model.ErrInvalidLocation, s.Name())
	}
	return key, nil
}

// accuWeatherError classifies a failed call. Quota exhaustion is signalled
// with a 503.
func accuWeatherError(status int, failure external.AccuWeatherErrorResponse, err error) error {
	var classified error
	switch status {
	case 401, 403:
		classified = model.ErrApiUnauthorized
	case 503:
		classified = model.ErrApiLimitReached
	default:
		classified = classifyStatus(status)
	}
	if failure.Message != "" {
		return fmt.Errorf("%w: %s", classified, failure.Message)
	}
	return fmt.Errorf("%w: %v", classified, err)
}

// locationZone resolves the location's IANA zone, falling back to UTC.
func locationZone(loc entity.Location) *time.Location {
	zone, err := time.LoadLocation(loc.TimeZone)
	if err != nil || zone == nil {
		return time.UTC
	}
	return zone
}
