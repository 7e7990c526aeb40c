package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
)

type riskRepository struct {
	pool *pgxpool.Pool
}

// NewRiskRepository returns a Postgres-backed implementation of RiskRepository.
func NewRiskRepository(pool *pgxpool.Pool) repository.RiskRepository {
	return &riskRepository{pool: pool}
}

func (r *riskRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Risk, error) {
	const query = `
	SELECT id, project_id, title, description, likelihood, impact, owner, status, mitigation_plan
	FROM risks
	WHERE project_id = $1
	ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var risks []domain.Risk
	for rows.Next() {
		risk, err := scanRisk(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, *risk)
	}
	return risks, rows.Err()
}

func (r *riskRepository) GetByID(ctx context.Context, id string) (*domain.Risk, error) {
	const query = `
	SELECT id, project_id, title, description, likelihood, impact, owner, status, mitigation_plan
	FROM risks
	WHERE id = $1
	`
	return scanRisk(r.pool.QueryRow(ctx, query, id))
}

func (r *riskRepository) Create(ctx context.Context, risk *domain.Risk) (*domain.Risk, error) {
	if risk == nil || risk.ProjectID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if risk.ID == "" {
		risk.ID = uuid.NewString()
	}
	if risk.Status == "" {
		risk.Status = domain.RiskOpen
	}

	const query = `
	INSERT INTO risks (id, project_id, title, description, likelihood, impact, owner, status, mitigation_plan)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.pool.Exec(ctx, query,
		risk.ID,
		risk.ProjectID,
		risk.Title,
		risk.Description,
		risk.Likelihood,
		risk.Impact,
		risk.Owner,
		risk.Status,
		risk.MitigationPlan,
	); err != nil {
		return nil, err
	}
	return risk, nil
}

func (r *riskRepository) UpdateStatus(ctx context.Context, id string, status domain.RiskStatus) error {
	const query = `UPDATE risks SET status = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRiskNotFound
	}
	return nil
}

func scanRisk(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Risk, error) {
	var risk domain.Risk
	if err := row.Scan(
		&risk.ID,
		&risk.ProjectID,
		&risk.Title,
		&risk.Description,
		&risk.Likelihood,
		&risk.Impact,
		&risk.Owner,
		&risk.Status,
		&risk.MitigationPlan,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRiskNotFound
		}
		return nil, err
	}
	return &risk, nil
}
