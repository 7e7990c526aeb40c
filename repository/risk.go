package repository

import (
	"context"

	"github.com/pulsebot/backend/domain"
)

type RiskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.Risk, error)
	GetByID(ctx context.Context, id string) (*domain.Risk, error)
	Create(ctx context.Context, risk *domain.Risk) (*domain.Risk, error)
	UpdateStatus(ctx context.Context, id string, status domain.RiskStatus) error
}
