package prompt

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
	"github.com/pulsebot/backend/ui"
	"github.com/pulsebot/backend/usecase"
)

const defaultCadenceDays = 7

// UseCase sends cadence prompts over DM and records the pending update each
// prompt opens.
type UseCase struct {
	users     repository.UserRepository
	updates   repository.UpdateRepository
	publisher usecase.Publisher
	buffer    usecase.DeliveryBuffer
	logger    *zap.Logger
}

func New(
	users repository.UserRepository,
	updates repository.UpdateRepository,
	publisher usecase.Publisher,
	buffer usecase.DeliveryBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:     users,
		updates:   updates,
		publisher: publisher,
		buffer:    buffer,
		logger:    logger,
	}
}

// SweepDue prompts every user whose next due time has passed. One failing
// user does not stop the sweep; failures are logged and counted.
func (uc *UseCase) SweepDue(ctx context.Context, now time.Time) (int, error) {
	due, err := uc.users.ListDue(ctx, now)
	if err != nil {
		return 0, err
	}

	prompted := 0
	for i := range due {
		if err := uc.promptUser(ctx, &due[i], now); err != nil {
			uc.logger.Error("cadence prompt failed",
				zap.String("user", due[i].SlackUserID),
				zap.Error(err),
			)
			continue
		}
		prompted++
	}

	if prompted > 0 {
		uc.logger.Info("cadence sweep complete",
			zap.Int("due", len(due)),
			zap.Int("prompted", prompted),
		)
	}
	return prompted, nil
}

// PromptUser sends an immediate prompt to one user regardless of cadence.
// Used by the admin API.
func (uc *UseCase) PromptUser(ctx context.Context, slackUserID string) error {
	user, err := uc.users.GetBySlackID(ctx, slackUserID)
	if err != nil {
		return err
	}
	return uc.promptUser(ctx, user, time.Now())
}

// Remind re-sends the prompt message behind an unanswered update without
// opening a new one.
func (uc *UseCase) Remind(ctx context.Context, updateID string) error {
	update, err := uc.updates.GetByID(ctx, updateID)
	if err != nil {
		return err
	}
	if update.Answered() {
		return nil
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == update.UserID {
			return uc.deliver(ctx, &users[i])
		}
	}
	return domain.ErrUserNotFound
}

func (uc *UseCase) promptUser(ctx context.Context, user *domain.User, now time.Time) error {
	if err := uc.deliver(ctx, user); err != nil {
		return err
	}

	if _, err := uc.updates.Create(ctx, &domain.Update{
		UserID:     user.ID,
		PromptedAt: now,
		Source:     "slack_dm",
	}); err != nil {
		return err
	}

	cadence := user.CadenceDays
	if cadence <= 0 {
		cadence = defaultCadenceDays
	}
	nextDue := now.Add(time.Duration(cadence) * 24 * time.Hour)
	return uc.users.MarkPrompted(ctx, user.ID, now, nextDue)
}

// deliver DMs the prompt, falling back to the delivery buffer when the
// platform is unreachable. A buffered prompt still counts as delivered.
func (uc *UseCase) deliver(ctx context.Context, user *domain.User) error {
	text := fmt.Sprintf("Hi %s, it's time for your progress update.", user.DisplayName)
	blocks := ui.PromptMessage(user.DisplayName)

	if err := uc.publisher.PostMessage(ctx, user.SlackUserID, text, blocks); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferMessage(ctx, user.SlackUserID, text, blocks); bufErr != nil {
				uc.logger.Error("failed to buffer prompt", zap.Error(bufErr))
				return err
			}
			uc.logger.Warn("prompt buffered", zap.String("user", user.SlackUserID), zap.Error(err))
			return nil
		}
		return err
	}
	return nil
}
