package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/model"
	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/refresh"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
)

type RefreshProcessor struct {
	refreshUseCase refresh.UseCase
}

func NewRefreshProcessor(refreshUseCase refresh.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		refreshUseCase: refreshUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *RefreshProcessor) HandleMessage(ctx context.Context, msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	var payload refresh.Message
	if err := json.Unmarshal([]byte(*msg.Body), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}
	if payload.LocationID == "" {
		return fmt.Errorf("refresh message has no location id")
	}

	result, err := p.refreshUseCase.RefreshWeather(ctx, payload.LocationID, payload.Features)
	if err != nil {
		// Non-retryable failures are acknowledged so the message does not
		// bounce through the queue until expiry.
		if !refresh.IsRetryable(err) {
			log.Warnf("Dropping refresh for location %s after non-retryable failure: %v", payload.LocationID, err)
			return nil
		}
		return fmt.Errorf("failed to refresh location %s: %w", payload.LocationID, err)
	}

	if result.State == model.RefreshStatePartiallyFailed {
		log.Warnf("Refresh for location %s completed with %d failed features", payload.LocationID, len(result.FailedFeatures))
	} else {
		log.Infof("Successfully refreshed weather for location %s", payload.LocationID)
	}
	return nil
}
