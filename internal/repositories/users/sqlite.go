package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/dbx"
	"github.com/akoreshkova/patternlock/internal/models"
)

// SQLiteRepository stores user records in SQLite (modernc.org/sqlite, pure
// Go driver). Suited to the single-machine deployments the scheme targets.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error) {
	// Check-then-insert: the engine is synchronous per contract, and the
	// unique index remains as a backstop.
	exists, err := r.Exists(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrUsernameTaken
	}

	points, err := marshalPoints(user.Pattern)
	if err != nil {
		return nil, err
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	query := `INSERT INTO users (id, username, image_path, salt, commitment, points, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		stored.ID, stored.Username, stored.ImagePath, stored.Salt, stored.Commitment, points, stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &stored, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	query := `SELECT id, username, image_path, salt, commitment, points, created_at, last_login
	          FROM users WHERE username = ?`

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

func (r *SQLiteRepository) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username = ?`, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) UpdateLastLogin(ctx context.Context, username string, t time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = ? WHERE username = ?`, t, username)
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
