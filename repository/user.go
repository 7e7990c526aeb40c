package repository

import (
	"context"
	"time"

	"github.com/pulsebot/backend/domain"
)

type UserRepository interface {
	GetBySlackID(ctx context.Context, slackUserID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	ListDue(ctx context.Context, now time.Time) ([]domain.User, error)
	MarkPrompted(ctx context.Context, id string, promptedAt, nextDueAt time.Time) error
}
