package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	promptUC "github.com/pulsebot/backend/usecase/prompt"
)

// PromptScheduler runs the cadence sweep on a fixed interval.
type PromptScheduler struct {
	prompts  *promptUC.UseCase
	logger   *zap.Logger
	cron     *cron.Cron
	interval time.Duration
}

func NewPromptScheduler(prompts *promptUC.UseCase, interval time.Duration, logger *zap.Logger) *PromptScheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ps := &PromptScheduler{
		prompts:  prompts,
		logger:   logger,
		interval: interval,
		cron:     cron.New(),
	}

	schedule := fmt.Sprintf("@every %s", interval)
	_, _ = ps.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		if _, err := ps.prompts.SweepDue(ctx, time.Now()); err != nil {
			ps.logger.Error("cadence sweep failed", zap.Error(err))
		}
	})

	return ps
}

func (ps *PromptScheduler) Start() {
	if ps == nil || ps.cron == nil {
		return
	}
	ps.cron.Start()
	ps.logger.Info("prompt scheduler started", zap.Duration("interval", ps.interval))
}

func (ps *PromptScheduler) Stop(ctx context.Context) {
	if ps == nil || ps.cron == nil {
		return
	}
	stopCtx := ps.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	ps.logger.Info("prompt scheduler stopped")
}
