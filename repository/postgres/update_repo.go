package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsebot/backend/domain"
	"github.com/pulsebot/backend/repository"
)

type updateRepository struct {
	pool *pgxpool.Pool
}

// NewUpdateRepository returns a Postgres-backed implementation of UpdateRepository.
func NewUpdateRepository(pool *pgxpool.Pool) repository.UpdateRepository {
	return &updateRepository{pool: pool}
}

func (r *updateRepository) List(ctx context.Context, filter repository.UpdateFilter) ([]domain.Update, error) {
	const query = `
	SELECT id, user_id, prompted_at, responded_at, progress_pct, summary, blockers, eta_date, rag, raw_text, source
	FROM updates
	WHERE ($1 = '' OR user_id = $1)
	ORDER BY prompted_at DESC
	LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, filter.UserID, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var updates []domain.Update
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, *update)
	}
	return updates, rows.Err()
}

func (r *updateRepository) GetByID(ctx context.Context, id string) (*domain.Update, error) {
	const query = `
	SELECT id, user_id, prompted_at, responded_at, progress_pct, summary, blockers, eta_date, rag, raw_text, source
	FROM updates
	WHERE id = $1
	`
	return scanUpdate(r.pool.QueryRow(ctx, query, id))
}

func (r *updateRepository) Create(ctx context.Context, update *domain.Update) (*domain.Update, error) {
	if update == nil || update.UserID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if update.ID == "" {
		update.ID = uuid.NewString()
	}
	if update.PromptedAt.IsZero() {
		update.PromptedAt = time.Now()
	}
	if update.Source == "" {
		update.Source = "slack_dm"
	}

	const query = `
	INSERT INTO updates (id, user_id, prompted_at, responded_at, progress_pct, summary, blockers, eta_date, rag, raw_text, source)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := r.pool.Exec(ctx, query,
		update.ID,
		update.UserID,
		update.PromptedAt,
		update.RespondedAt,
		update.ProgressPct,
		update.Summary,
		update.Blockers,
		update.ETADate,
		update.RAG,
		update.RawText,
		update.Source,
	); err != nil {
		return nil, err
	}
	return update, nil
}

func scanUpdate(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Update, error) {
	var update domain.Update
	var (
		respondedAt *time.Time
		progressPct *int
		etaDate     *time.Time
		rag         *string
	)

	if err := row.Scan(
		&update.ID,
		&update.UserID,
		&update.PromptedAt,
		&respondedAt,
		&progressPct,
		&update.Summary,
		&update.Blockers,
		&etaDate,
		&rag,
		&update.RawText,
		&update.Source,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUpdateNotFound
		}
		return nil, err
	}

	update.RespondedAt = respondedAt
	update.ProgressPct = progressPct
	update.ETADate = etaDate
	if rag != nil {
		update.RAG = domain.RAG(*rag)
	}
	return &update, nil
}
