package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/models"
)

// InMemoryRepository keeps records in a map keyed by username. Used by the
// demo app and tests. Guarded by a mutex so it can be shared; the engine
// itself is synchronous.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.UserRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.UserRecord)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.UserRecord) (*models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return nil, common.ErrUsernameTaken
	}

	stored := cloneRecord(user)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[stored.Username] = stored

	return cloneRecord(stored), nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneRecord(user), nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[username]
	return ok, nil
}

func (r *InMemoryRepository) UpdateLastLogin(ctx context.Context, username string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return common.ErrNotFound
	}
	login := t
	user.LastLogin = &login
	return nil
}

// cloneRecord copies a record so callers cannot mutate stored state.
func cloneRecord(u *models.UserRecord) *models.UserRecord {
	c := *u
	c.Salt = append([]byte(nil), u.Salt...)
	c.Commitment = append([]byte(nil), u.Commitment...)
	c.Pattern = u.Pattern.Clone()
	if u.LastLogin != nil {
		login := *u.LastLogin
		c.LastLogin = &login
	}
	return &c
}
