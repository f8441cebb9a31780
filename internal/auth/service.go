// Package auth orchestrates the engine: registration of click patterns and
// per-session login with tolerance matching, commitment verification, and
// attempt limiting.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/akoreshkova/patternlock/internal/audit"
	"github.com/akoreshkova/patternlock/internal/config"
	"github.com/akoreshkova/patternlock/internal/cryptox"
	"github.com/akoreshkova/patternlock/internal/models"
	"github.com/akoreshkova/patternlock/internal/pattern"
	"github.com/akoreshkova/patternlock/internal/repositories/users"
)

// Service provides registration and creates login sessions. It is
// synchronous: every call runs to completion, and the store and recorder
// are expected to complete or fail fast.
type Service struct {
	repo          users.Repository
	committer     cryptox.Committer
	recorder      audit.Recorder
	secretKey     []byte
	tokenValidity time.Duration
	tolerance     int
	maxAttempts   int
}

// NewService constructs a Service from the repository, event recorder, and
// engine config. The commitment scheme follows cfg.Hardened.
func NewService(repo users.Repository, recorder audit.Recorder, cfg *config.Config) *Service {
	var committer cryptox.Committer = cryptox.SHA256Committer{}
	if cfg.Hardened {
		committer = cryptox.Argon2Committer{}
	}
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}

	return &Service{
		repo:          repo,
		committer:     committer,
		recorder:      recorder,
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidity,
		tolerance:     cfg.Tolerance,
		maxAttempts:   cfg.MaxAttempts,
	}
}

// Register creates a new account with the given pattern. The username must
// be free (case-sensitive); the pattern length invariant is checked before
// anything is generated. A fresh salt is produced on every registration and
// never reused.
func (s *Service) Register(ctx context.Context, username, imagePath string, p pattern.Pattern) (*models.UserRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, err
	}

	commitment, err := s.committer.Commit(p, salt)
	if err != nil {
		return nil, err
	}

	user := &models.UserRecord{
		Username:   username,
		ImagePath:  imagePath,
		Salt:       salt,
		Commitment: commitment,
		Pattern:    p.Clone(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.recorder.Record(ctx, audit.Event{
		Username: username,
		Kind:     audit.KindRegister,
		Detail:   fmt.Sprintf("registered with %d-point pattern", len(p)),
	})

	return user, nil
}
