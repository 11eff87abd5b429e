package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model/external"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/http"
)

const OpenMeteoSourceID = "openmeteo"

var openMeteoHourlyFields = "temperature_2m,apparent_temperature,weather_code,precipitation_probability," +
	"precipitation,rain,showers,snowfall,wind_speed_10m,wind_direction_10m,wind_gusts_10m," +
	"relative_humidity_2m,dew_point_2m,surface_pressure,cloud_cover,visibility,uv_index,is_day"

var openMeteoDailyFields = "weather_code,temperature_2m_max,temperature_2m_min,apparent_temperature_max," +
	"apparent_temperature_min,sunrise,sunset,precipitation_sum,precipitation_probability_max," +
	"wind_speed_10m_max,wind_gusts_10m_max,uv_index_max"

var openMeteoCurrentFields = "temperature_2m,apparent_temperature,relative_humidity_2m,dew_point_2m," +
	"surface_pressure,cloud_cover,wind_speed_10m,wind_direction_10m,wind_gusts_10m,weather_code," +
	"uv_index,visibility"

var openMeteoAirQualityFields = "pm10,pm2_5,carbon_monoxide,nitrogen_dioxide,sulphur_dioxide,ozone"

// OpenMeteoSource serves forecast, current, air-quality and minutely data
// plus reverse geocoding. No API key and no location parameters are needed.
type OpenMeteoSource struct {
	forecastClient   *http.Client
	airQualityClient *http.Client
	geocodingClient  *http.Client
}

var _ WeatherSource = (*OpenMeteoSource)(nil)
var _ ReverseGeocodingSource = (*OpenMeteoSource)(nil)

func NewOpenMeteoSource(forecastClient, airQualityClient, geocodingClient *http.Client) *OpenMeteoSource {
	return &OpenMeteoSource{
		forecastClient:   forecastClient,
		airQualityClient: airQualityClient,
		geocodingClient:  geocodingClient,
	}
}

func (s *OpenMeteoSource) ID() string { return OpenMeteoSourceID }

func (s *OpenMeteoSource) Name() string { return "Open-Meteo" }

func (s *OpenMeteoSource) SupportedFeatures() []entity.Feature {
	return []entity.Feature{
		entity.FeatureForecast,
		entity.FeatureCurrent,
		entity.FeatureAirQuality,
		entity.FeatureMinutely,
		entity.FeatureReverseGeocoding,
	}
}

func (s *OpenMeteoSource) IsFeatureSupportedForLocation(entity.Location, entity.Feature) bool {
	// Worldwide coverage.
	return true
}

func (s *OpenMeteoSource) NeedsLocationParametersRefresh(entity.Location, bool, []entity.Feature) bool {
	return false
}

func (s *OpenMeteoSource) ResolveLocationParameters(context.Context, entity.Location) (map[string]string, error) {
	return nil, nil
}

func (s *OpenMeteoSource) Fetch(ctx context.Context, loc entity.Location, feature entity.Feature) (*model.WeatherWrapper, error) {
	switch feature {
	case entity.FeatureForecast:
		return s.fetchForecast(ctx, loc)
	case entity.FeatureCurrent:
		return s.fetchCurrent(ctx, loc)
	case entity.FeatureAirQuality:
		return s.fetchAirQuality(ctx, loc)
	case entity.FeatureMinutely:
		return s.fetchMinutely(ctx, loc)
	default:
		return nil, fmt.Errorf("%w: %s by %s", model.ErrUnsupportedFeature, feature, s.Name())
	}
}

func (s *OpenMeteoSource) fetchForecast(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	params := s.baseParams(loc)
	params["hourly"] = openMeteoHourlyFields
	params["daily"] = openMeteoDailyFields
	params["forecast_days"] = "16"

	resp, err := s.forecast(ctx, params)
	if err != nil {
		return nil, err
	}
	return convertOpenMeteoForecast(resp)
}

func (s *OpenMeteoSource) fetchCurrent(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	params := s.baseParams(loc)
	params["current"] = openMeteoCurrentFields

	resp, err := s.forecast(ctx, params)
	if err != nil {
		return nil, err
	}
	return convertOpenMeteoCurrent(resp)
}

func (s *OpenMeteoSource) fetchMinutely(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	params := s.baseParams(loc)
	params["minutely_15"] = "precipitation"
	params["forecast_minutely_15"] = "8"

	resp, err := s.forecast(ctx, params)
	if err != nil {
		return nil, err
	}
	return convertOpenMeteoMinutely(resp)
}

func (s *OpenMeteoSource) fetchAirQuality(ctx context.Context, loc entity.Location) (*model.WeatherWrapper, error) {
	params := s.baseParams(loc)
	params["hourly"] = openMeteoAirQualityFields
	params["current"] = openMeteoAirQualityFields

	var success external.OpenMeteoAirQualityResponse
	var failure external.OpenMeteoErrorResponse
	_, _, status, err := s.airQualityClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/air-quality").
		WithQueryParams(params).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, openMeteoError(status, failure, err)
	}
	return convertOpenMeteoAirQuality(&success)
}

func (s *OpenMeteoSource) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*model.Place, error) {
	params := map[string]string{
		"latitude":  formatCoordinate(latitude),
		"longitude": formatCoordinate(longitude),
		"count":     "1",
	}

	var success external.OpenMeteoGeocodingResponse
	var failure external.OpenMeteoErrorResponse
	_, _, status, err := s.geocodingClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(params).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, openMeteoError(status, failure, err)
	}
	return convertOpenMeteoPlace(&success)
}

func (s *OpenMeteoSource) forecast(ctx context.Context, params map[string]string) (*external.OpenMeteoForecastResponse, error) {
	var success external.OpenMeteoForecastResponse
	var failure external.OpenMeteoErrorResponse
	_, _, status, err := s.forecastClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(params).
		WithSuccessResp(&success).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, openMeteoError(status, failure, err)
	}
	return &success, nil
}

func (s *OpenMeteoSource) baseParams(loc entity.Location) map[string]string {
	return map[string]string{
		"latitude":   formatCoordinate(loc.Latitude),
		"longitude":  formatCoordinate(loc.Longitude),
		"timeformat": "unixtime",
		"timezone":   "UTC",
	}
}

func openMeteoError(status int, failure external.OpenMeteoErrorResponse, err error) error {
	if failure.Error && failure.Reason != "" {
		return fmt.Errorf("%w: %s", classifyStatus(status), failure.Reason)
	}
	return fmt.Errorf("%w: %v", classifyStatus(status), err)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
