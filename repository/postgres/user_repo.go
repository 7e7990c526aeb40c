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

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, slack_user_id, display_name, email, timezone, cadence_days, last_prompt_at, next_due_at, is_active`

func (r *userRepository) GetBySlackID(ctx context.Context, slackUserID string) (*domain.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	WHERE slack_user_id = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, slackUserID))
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	ORDER BY display_name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil || user.SlackUserID == "" {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Timezone == "" {
		user.Timezone = "Europe/London"
	}
	if user.CadenceDays <= 0 {
		user.CadenceDays = 7
	}

	const query = `
	INSERT INTO users (id, slack_user_id, display_name, email, timezone, cadence_days, last_prompt_at, next_due_at, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (slack_user_id) DO UPDATE
	SET display_name = EXCLUDED.display_name,
		email = EXCLUDED.email,
		timezone = EXCLUDED.timezone,
		cadence_days = EXCLUDED.cadence_days,
		is_active = EXCLUDED.is_active
	RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		user.ID,
		user.SlackUserID,
		user.DisplayName,
		user.Email,
		user.Timezone,
		user.CadenceDays,
		user.LastPromptAt,
		user.NextDueAt,
		user.IsActive,
	).Scan(&user.ID)
}

func (r *userRepository) ListDue(ctx context.Context, now time.Time) ([]domain.User, error) {
	const query = `
	SELECT ` + userColumns + `
	FROM users
	WHERE is_active
	  AND (next_due_at IS NULL OR next_due_at <= $1)
	ORDER BY next_due_at NULLS FIRST
	`
	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) MarkPrompted(ctx context.Context, id string, promptedAt, nextDueAt time.Time) error {
	const query = `
	UPDATE users
	SET last_prompt_at = $2,
		next_due_at = $3
	WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, id, promptedAt, nextDueAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func scanUser(row interface {
	Scan(dest ...interface{}) error
}) (*domain.User, error) {
	var user domain.User
	var (
		lastPrompt *time.Time
		nextDue    *time.Time
	)

	if err := row.Scan(
		&user.ID,
		&user.SlackUserID,
		&user.DisplayName,
		&user.Email,
		&user.Timezone,
		&user.CadenceDays,
		&lastPrompt,
		&nextDue,
		&user.IsActive,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.LastPromptAt = lastPrompt
	user.NextDueAt = nextDue
	return &user, nil
}
