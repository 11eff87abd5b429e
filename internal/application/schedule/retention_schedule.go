package schedule

import (
	"context"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/breezy-weather/breezy-weather-sub005/internal/domain/usecase/refresh"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
	"github.com/breezy-weather/breezy-weather-sub005/pkg/msg"
)

// RetentionScheduler drops stored weather rows that fell out of the
// retention window.
type RetentionScheduler struct {
	scheduler gocron.Scheduler
	useCase   refresh.UseCase
	cronExpr  string
}

func NewRetentionScheduler(useCase refresh.UseCase, cronExpr string) (*RetentionScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	return &RetentionScheduler{
		scheduler: scheduler,
		useCase:   useCase,
		cronExpr:  cronExpr,
	}, nil
}

// Start registers the purge job and starts the scheduler.
func (s *RetentionScheduler) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.CronJob(s.cronExpr, false),
		gocron.NewTask(s.purge),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Infof("Retention scheduler started successfully with cron expression: %s", s.cronExpr)
	return nil
}

func (s *RetentionScheduler) purge() {
	removed, err := s.useCase.PurgeExpired(context.Background())
	if err != nil {
		log.Error(msg.GetMessage("app.retention-fail", err), zap.Error(err))
		return
	}
	log.Info(msg.GetMessage("app.retention-end", removed), zap.Int64("rows_removed", removed))
}

// Stop gracefully stops the scheduler
func (s *RetentionScheduler) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("Retention scheduler shutdown failed: %v", err)
	}
}
