package cache

import (
	"context"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/redis"
)

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.client.Ping(ctx); err != nil {
		return model.ComponentHealthStatus{
			Status: model.StatusDown,
			Details: map[string]string{
				"message": err.Error(),
			},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"message": string(model.StatusUp),
		},
	}
}
