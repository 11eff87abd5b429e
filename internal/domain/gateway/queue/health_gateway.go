package queue

import (
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/sqs"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
	RegisterWorker(name string, worker *sqs.Worker)
	UnregisterWorker(name string)
}
