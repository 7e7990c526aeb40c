package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pulsebot/backend/blockkit"
	"github.com/pulsebot/backend/internal/infrastructure/buffer"
	"github.com/pulsebot/backend/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// ProcessorConfig controls how frequently the delivery buffer is drained and
// how long stale deliveries are kept.
type ProcessorConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
	Retention  time.Duration
}

// DeliveryProcessor replays buffered view publishes and messages against the
// platform API once it is reachable again.
type DeliveryProcessor struct {
	store     *buffer.Store
	monitor   ConnectionHealth
	publisher usecase.Publisher
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       ProcessorConfig
}

func NewDeliveryProcessor(
	store *buffer.Store,
	monitor ConnectionHealth,
	publisher usecase.Publisher,
	logger *zap.Logger,
	cfg ProcessorConfig,
) *DeliveryProcessor {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dp := &DeliveryProcessor{
		store:     store,
		monitor:   monitor,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = dp.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := dp.Drain(ctx); err != nil {
			dp.logger.Error("delivery drain failed", zap.Error(err))
		}
	})

	return dp
}

// Start launches the cron scheduler.
func (dp *DeliveryProcessor) Start() {
	if dp == nil || dp.cron == nil {
		return
	}
	dp.cron.Start()
	dp.logger.Info("delivery processor started")
}

// Stop gracefully stops the scheduler.
func (dp *DeliveryProcessor) Stop(ctx context.Context) {
	if dp == nil || dp.cron == nil {
		return
	}
	stopCtx := dp.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	dp.logger.Info("delivery processor stopped")
}

// Drain replays buffered deliveries synchronously.
func (dp *DeliveryProcessor) Drain(ctx context.Context) error {
	if dp == nil || dp.store == nil {
		return nil
	}
	if dp.monitor != nil && !dp.monitor.IsOnline() {
		dp.logger.Debug("skipping delivery drain (offline)")
		return nil
	}

	items, err := dp.store.GetBatch(dp.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := dp.deliver(ctx, item); err != nil {
			dp.logger.Error("failed to replay delivery",
				zap.String("item_id", item.ID),
				zap.String("kind", item.Kind),
				zap.Error(err))

			item.Retries++
			if item.Retries >= dp.cfg.MaxRetries {
				dp.logger.Warn("dropping delivery (max retries reached)", zap.String("item_id", item.ID))
				_ = dp.store.Remove(item)
				continue
			}

			if err := dp.store.Remove(item); err != nil {
				dp.logger.Warn("failed to remove delivery", zap.Error(err))
			}
			if err := dp.store.Requeue(item); err != nil {
				dp.logger.Error("failed to requeue delivery", zap.Error(err))
			}
			continue
		}

		if err := dp.store.Remove(item); err != nil {
			dp.logger.Warn("failed to purge replayed delivery", zap.Error(err))
		}
	}

	// A stale home view is worthless once the user has seen a fresh one.
	if err := dp.store.Cleanup(time.Now().Add(-dp.cfg.Retention)); err != nil {
		dp.logger.Warn("delivery cleanup failed", zap.Error(err))
	}
	return nil
}

// Enqueue persists a delivery for later replay.
func (dp *DeliveryProcessor) Enqueue(item buffer.Item) error {
	if dp == nil || dp.store == nil {
		return fmt.Errorf("delivery processor not configured")
	}
	return dp.store.Enqueue(item)
}

// Size returns the number of buffered deliveries.
func (dp *DeliveryProcessor) Size() int {
	if dp == nil || dp.store == nil {
		return 0
	}
	size, err := dp.store.Size()
	if err != nil {
		return 0
	}
	return size
}

type viewPayload struct {
	View blockkit.View `json:"view"`
}

type messagePayload struct {
	Text   string           `json:"text"`
	Blocks []blockkit.Block `json:"blocks,omitempty"`
}

func (dp *DeliveryProcessor) deliver(ctx context.Context, item buffer.Item) error {
	if ctx == nil {
		ctx = context.Background()
	}

	switch item.Kind {
	case buffer.KindPublishView:
		var payload viewPayload
		if err := json.Unmarshal(item.Payload, &payload); err != nil {
			return err
		}
		return dp.publisher.PublishView(ctx, item.Target, payload.View)

	case buffer.KindPostMessage:
		var payload messagePayload
		if err := json.Unmarshal(item.Payload, &payload); err != nil {
			return err
		}
		return dp.publisher.PostMessage(ctx, item.Target, payload.Text, payload.Blocks)

	default:
		return fmt.Errorf("unsupported delivery kind %s", item.Kind)
	}
}
