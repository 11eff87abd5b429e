package db

import "github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
