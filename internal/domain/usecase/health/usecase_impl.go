package health

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/cache"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/db"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/gateway/queue"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway cache.HealthGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway cache.HealthGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()
	cacheHealth := useCase.cacheGateway.Health()
	queueHealth := useCase.queueGateway.Health()

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp || cacheHealth.Status != model.StatusUp || queueHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}
