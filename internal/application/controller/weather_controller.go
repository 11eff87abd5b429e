package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/entity"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/refresh"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/weather"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/util/numberutils"
)

type WeatherController struct {
	api            *echo.Group
	useCase        weather.UseCase
	refreshUseCase refresh.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, refreshUseCase refresh.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, refreshUseCase: refreshUseCase}
}

// InitWeatherRoutes initializes location and weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/locations", controller.RegisterLocation)
	controller.api.GET("/locations", controller.FindAllLocations)
	controller.api.DELETE("/locations/:locationId", controller.RemoveLocation)
	controller.api.POST("/locations/refresh", controller.RefreshAllLocations)
	controller.api.POST("/locations/:locationId/refresh", controller.RefreshLocation)
	controller.api.GET("/locations/:locationId/weather", controller.GetWeather)
	controller.api.GET("/locations/:locationId/weather/daily", controller.GetDailyForecast)
	controller.api.GET("/locations/:locationId/weather/hourly", controller.GetHourlyForecast)
	controller.api.GET("/locations/:locationId/weather/alerts", controller.GetCurrentAlerts)
}

// RegisterLocation godoc
// @Summary Register a location
// @Description Start tracking weather for a pair of coordinates
// @Tags locations
// @Accept json
// @Produce json
// @Param location body model.RegisterLocationDTO true "Location coordinates and optional per-feature source pins"
// @Success 201 {object} entity.Location "Registered location"
// @Failure 400 {object} map[string]string "Invalid request body or coordinates out of range"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (controller *WeatherController) RegisterLocation(c echo.Context) error {
	var dto model.RegisterLocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	loc, err := controller.useCase.RegisterLocation(c.Request().Context(), dto.Latitude, dto.Longitude, dto.FeatureSources)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, loc)
}

// FindAllLocations godoc
// @Summary Get all tracked locations
// @Tags locations
// @Accept json
// @Produce json
// @Success 200 {array} entity.Location "List of tracked locations"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (controller *WeatherController) FindAllLocations(c echo.Context) error {
	locations, err := controller.useCase.FindAllLocations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, locations)
}

// RemoveLocation godoc
// @Summary Remove a tracked location
// @Description Delete the location and all weather stored for it
// @Tags locations
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Success 204 "Location removed"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{locationId} [delete]
func (controller *WeatherController) RemoveLocation(c echo.Context) error {
	locationID := c.Param("locationId")

	if err := controller.useCase.RemoveLocation(c.Request().Context(), locationID); err != nil {
		if errors.Is(err, weather.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Location not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// RefreshAllLocations godoc
// @Summary Schedule a refresh for all locations
// @Description Enqueue a refresh message for every tracked location
// @Tags refresh
// @Accept json
// @Produce json
// @Success 202 {object} map[string]string "Refresh sweep scheduled"
// @Router /locations/refresh [post]
func (controller *WeatherController) RefreshAllLocations(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		if err := controller.refreshUseCase.EnqueueAllLocations(context.Background(), requestID); err != nil {
			log.Errorf("Refresh sweep failed: %v", err)
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Refresh scheduled for all locations"})
}

// RefreshLocation godoc
// @Summary Refresh one location
// @Description Fetch, merge and persist weather for a location. Runs asynchronously.
// @Tags refresh
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Param features query string false "Comma separated feature list, e.g. FORECAST,CURRENT. Empty means all."
// @Success 202 {object} map[string]string "Refresh scheduled"
// @Router /locations/{locationId}/refresh [post]
func (controller *WeatherController) RefreshLocation(c echo.Context) error {
	locationID := c.Param("locationId")
	features := parseFeatures(c.QueryParam("features"))

	// Execute in a separate goroutine to avoid blocking the request
	go func() {
		if _, err := controller.refreshUseCase.RefreshWeather(context.Background(), locationID, features); err != nil {
			log.Errorf("Refresh failed for location %s: %v", locationID, err)
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]string{"message": "Refresh scheduled", "locationId": locationID})
}

// GetWeather godoc
// @Summary Get the weather aggregate for a location
// @Description Retrieve the stored aggregate with derived values attached
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Success 200 {object} model.WeatherView "Weather aggregate"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{locationId}/weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	locationID := c.Param("locationId")

	view, err := controller.useCase.GetWeatherByLocationID(c.Request().Context(), locationID)
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// GetDailyForecast godoc
// @Summary Get the daily forecast for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Param limit query int false "Maximum number of days" default(0)
// @Success 200 {array} model.DailyView "Daily forecast"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{locationId}/weather/daily [get]
func (controller *WeatherController) GetDailyForecast(c echo.Context) error {
	locationID := c.Param("locationId")
	var limit int = numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)

	views, err := controller.useCase.GetDailyListByLocationID(c.Request().Context(), locationID)
	if err != nil {
		return weatherError(c, err)
	}
	if limit > 0 && limit < len(views) {
		views = views[:limit]
	}
	return c.JSON(http.StatusOK, views)
}

// GetHourlyForecast godoc
// @Summary Get the hourly forecast for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Param limit query int false "Maximum number of hours" default(0)
// @Success 200 {array} model.HourlyView "Hourly forecast"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{locationId}/weather/hourly [get]
func (controller *WeatherController) GetHourlyForecast(c echo.Context) error {
	locationID := c.Param("locationId")
	var limit int = numberutils.ToIntWithDefault(c.QueryParam("limit"), 0)

	views, err := controller.useCase.GetHourlyListByLocationID(c.Request().Context(), locationID)
	if err != nil {
		return weatherError(c, err)
	}
	if limit > 0 && limit < len(views) {
		views = views[:limit]
	}
	return c.JSON(http.StatusOK, views)
}

// GetCurrentAlerts godoc
// @Summary Get the alerts active now for a location
// @Tags weather
// @Accept json
// @Produce json
// @Param locationId path string true "Location id"
// @Success 200 {array} model.AlertView "Active alerts"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{locationId}/weather/alerts [get]
func (controller *WeatherController) GetCurrentAlerts(c echo.Context) error {
	locationID := c.Param("locationId")

	views, err := controller.useCase.GetCurrentAlertsByLocationID(c.Request().Context(), locationID, time.Now())
	if err != nil {
		return weatherError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func weatherError(c echo.Context, err error) error {
	if errors.Is(err, weather.ErrLocationNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Location not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func parseFeatures(raw string) []entity.Feature {
	if raw == "" {
		return nil
	}
	var features []entity.Feature
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			features = append(features, entity.Feature(strings.ToUpper(part)))
		}
	}
	return features
}
