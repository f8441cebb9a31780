package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/dbx"
	"github.com/akoreshkova/patternlock/internal/models"
)

// pgUniqueViolation is the Postgres error code for a unique constraint hit.
const pgUniqueViolation = "23505"

// PostgresRepository stores user records in Postgres via the pgx stdlib
// driver.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error) {
	points, err := marshalPoints(user.Pattern)
	if err != nil {
		return nil, err
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	query := `INSERT INTO users (id, username, image_path, salt, commitment, points)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at`

	err = r.db.QueryRowContext(ctx, query,
		stored.ID, stored.Username, stored.ImagePath, stored.Salt, stored.Commitment, points).
		Scan(&stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &stored, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	query := `SELECT id, username, image_path, salt, commitment, points, created_at, last_login
	          FROM users WHERE username = $1`

	user := &models.UserRecord{}
	var points []byte
	var lastLogin sql.NullTime

	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.ImagePath, &user.Salt, &user.Commitment, &points, &user.CreatedAt, &lastLogin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if user.Pattern, err = unmarshalPoints(points); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, username string, t time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = $1 WHERE username = $2`, t, username)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
