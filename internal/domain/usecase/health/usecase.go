package health

import "github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
