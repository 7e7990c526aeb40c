package repository

import (
	"context"

	"github.com/pulsebot/backend/domain"
)

type UpdateFilter struct {
	UserID string
	Limit  int
	Offset int
}

type UpdateRepository interface {
	List(ctx context.Context, filter UpdateFilter) ([]domain.Update, error)
	GetByID(ctx context.Context, id string) (*domain.Update, error)
	Create(ctx context.Context, update *domain.Update) (*domain.Update, error)
}
