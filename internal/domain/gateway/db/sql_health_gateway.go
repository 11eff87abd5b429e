package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
)

// SQLHealthDBGateway probes the raw database/sql pool, bypassing the ORM.
type SQLHealthDBGateway struct {
	DB *sql.DB
}

var _ HealthDBGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db *sql.DB) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := gateway.DB.PingContext(ctx); err != nil {
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
