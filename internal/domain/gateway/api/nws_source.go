package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/http"
)

const NWSSourceID = "nws"

const (
	nwsGridIDParam  = "gridId"
	nwsGridXParam   = "gridX"
	nwsGridYParam   = "gridY"
	nwsStationParam = "station"
)

// nwsCountries are the country labels the National Weather Service covers.
var nwsCountries = map[string]bool{
	"US":            true,
	"USA":           true,
	"United States": true,
	"Puerto Rico":   true,
	"Guam":          true,
}

// NWSSource serves forecast, current and alert data for the United States.
// Forecast and observation calls address a resolved grid point and station.
type NWSSource struct {
	client *http.Client
}

var _ WeatherSource = (*NWSSource)(nil)

func NewNWSSource(client *http.Client) *NWSSource {
	return &NWSSource{client: client}
}

func (s *NWSSource) ID() string { return NWSSourceID }

func (s *NWSSource) Name() string { return "National Weather Service" }

func (s *NWSSource) SupportedFeatures() []entity.Feature {
	return []entity.Feature{
		entity.FeatureForecast,
		entity.FeatureCurrent,
		entity.FeatureAlert,
	}
}

func (s *NWSSource) IsFeatureSupportedForLocation(loc entity.Location, _ entity.Feature) bool {
	if loc.Country == "" {
		return true
	}
	return nwsCountries[loc.Country]
}

func (s *NWSSource) NeedsLocationParametersRefresh(loc entity.Location, coordinatesChanged bool, features []entity.Feature) bool {
	if coordinatesChanged {
		return true
	}
	params := loc.SourceParameters(s.ID())
	if params[nwsGridIDParam] == "" || params[nwsGridXParam] == "" || params[nwsGridYParam] == "" {
		return true
	}
	for _, feature := range features {
		if feature == entity.FeatureCurrent && params[nwsStationParam] == "" {
			return true
		}
	}
	return false
}

// ResolveLocationParameters resolves the forecast grid point for the
// coordinates and the nearest observation station.
func (s *NWSSource) ResolveLocationParameters(ctx context.Context, loc entity.Location) (map[string]string, error) {
	var points external.NWSPointsResponse
	var failure external.NWSErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/points/" + formatCoordinate(loc.Latitude) + "," + formatCoordinate(loc.Longitude)).
		WithSuccessResp(&points).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, nwsError(status, failure, err)
	}
	if points.Properties.GridID == "" {
		return nil, model.ErrNoUsableData
	}

	params := map[string]string{
		nwsGridIDParam: points.Properties.GridID,
		nwsGridXParam:  strconv.Itoa(points.Properties.GridX),
		nwsGridYParam:  strconv.Itoa(points.Properties.GridY),
	}

	if points.Properties.ObservationStations != "" {
		station, err := s.resolveStation(ctx, points.Properties.ObservationStations)
		if err == nil && station != "" {
			params[nwsStationParam] = station
		}
	}
	return params, nil
}

func (s *NWSSource) resolveStation(ctx context.Context, stationsURL string) (string, error) {
	// The stations URL is absolute; only its path addresses our client.
	path := stationsURL
	if i := strings.Index(stationsURL, "/gridpoints/"); i >= 0 {
		path = stationsURL[i:]
	}

	var stations external.NWSStationsResponse
	var failure external.NWSErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&stations).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return "", nwsError(status, failure, err)
	}
	if len(stations.Features) == 0 {
		return "", nil
	}
	return stations.Features[0].Properties.StationIdentifier, nil
}

func (s *NWSSource) Fetch(ctx context.Context, loc entity.Location, feature entity.Feature) (*model.WeatherWrapper, error) {
	switch feature {
	case entity.FeatureForecast:
		return s.fetchForecast(ctx, loc)
	case entity.FeatureCurrent:
		return s.fetchObservation(ctx, loc)
	case entity.FeatureAlert:
		return s.fetchAlerts(ctx, loc)
	default:
		return nil, fmt.Errorf("%w: %s by %s", model.ErrUnsupportedFeature, feature, s.Name())
	}
}

func (s *NWSSource) fetchForecast(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	gridPath, err := s.gridPath(loc)
	if err != nil {
		return nil, err
	}

	daily, err := s.fetchForecastPeriods(ctx, gridPath+"/forecast")
	if err != nil {
		return nil, err
	}
	hourly, err := s.fetchForecastPeriods(ctx, gridPath+"/forecast/hourly")
	if err != nil {
		return nil, err
	}
	return convertNWSForecast(daily, hourly, locationZone(loc))
}

func (s *NWSSource) fetchForecastPeriods(ctx context.Context, path string) (*external.NWSForecastResponse, error) {
	var success external.NWSForecastResponse
	var failure external.NWSErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, nwsError(status, failure, err)
	}
	return &success, nil
}

func (s *NWSSource) fetchObservation(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	station := loc.SourceParameters(s.ID())[nwsStationParam]
	if station == "" {
		return nil, fmt.Errorf("%w: %s observation station not resolved", model.ErrInvalidLocation, s.Name())
	}

	var success external.NWSObservationResponse
	var failure external.NWSErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/stations/" + station + "/observations/latest").
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, nwsError(status, failure, err)
	}
	return convertNWSObservation(&success, time.Now())
}

func (s *NWSSource) fetchAlerts(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	var success external.NWSAlertsResponse
	var failure external.NWSErrorResponse
	_, _, status, err := s.client.Request().
		WithMethod(http.GET).
		WithPath("/alerts/active").
		WithQueryParams(map[string]string{
			"point": formatCoordinate(loc.Latitude) + "," + formatCoordinate(loc.Longitude),
		}).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, nwsError(status, failure, err)
	}
	return convertNWSAlerts(&success)
}

func (s *NWSSource) gridPath(loc entity.Location) (string, error) {
	params := loc.SourceParameters(s.ID())
	gridID := params[nwsGridIDParam]
	gridX := params[nwsGridXParam]
	gridY := params[nwsGridYParam]
	if gridID == "" || gridX == "" || gridY == "" {
		return "", fmt.Errorf("%w: %s grid point not resolved", model.ErrInvalidLocation, s.Name())
	}
	return "/gridpoints/" + gridID + "/" + gridX + "," + gridY, nil
}

func nwsError(status int, failure external.NWSErrorResponse, err error) error {
	if failure.Detail != "" {
		return fmt.Errorf("%w: %s", classifyStatus(status), failure.Detail)
	}
	return fmt.Errorf("%w: %v", classifyStatus(status), err)
}
