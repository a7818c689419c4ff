package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type CampaignService interface {
	CompleteEndedCampaigns(ctx context.Context) (int64, error)
}

type ResetTokenRepository interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs the periodic maintenance jobs: closing campaigns whose end
// date passed and purging expired password reset codes.
type Scheduler struct {
	cron      *cron.Cron
	campaigns CampaignService
	tokens    ResetTokenRepository
	logger    *zap.Logger
}

func New(campaigns CampaignService, tokens ResetTokenRepository, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		campaigns: campaigns,
		tokens:    tokens,
		logger:    logger,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.completeEndedCampaigns); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 10m", s.purgeExpiredResetTokens); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) completeEndedCampaigns() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	completed, err := s.campaigns.CompleteEndedCampaigns(ctx)
	if err != nil {
		s.logger.Error("completing ended campaigns failed", zap.Error(err))

		return
	}

	if completed > 0 {
		s.logger.Info("completed ended campaigns", zap.Int64("count", completed))
	}
}

func (s *Scheduler) purgeExpiredResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := s.tokens.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("purging expired reset tokens failed", zap.Error(err))

		return
	}

	if purged > 0 {
		s.logger.Info("purged expired reset tokens", zap.Int64("count", purged))
	}
}
