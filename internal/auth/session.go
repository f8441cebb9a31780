package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akoreshkova/patternlock/internal/audit"
	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/cryptox"
	"github.com/akoreshkova/patternlock/internal/gate"
	"github.com/akoreshkova/patternlock/internal/models"
	"github.com/akoreshkova/patternlock/internal/pattern"
)

// Session is one login session for one username, owning its attempt gate.
// Sessions are caller-owned values, not process-wide state; a locked
// session stays locked, and the caller starts a new session to retry.
// Not safe for concurrent use.
type Session struct {
	svc      *Service
	username string
	gate     *gate.Gate
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Record *models.UserRecord
	Token  string
}

// NewSession starts a login session for the username with a fresh gate.
func (s *Service) NewSession(username string) *Session {
	return &Session{
		svc:      s,
		username: username,
		gate:     gate.New(s.maxAttempts),
	}
}

// Remaining reports how many attempts are left before lockout.
func (sn *Session) Remaining() int {
	return sn.gate.Remaining()
}

// Login evaluates one pattern attempt.
//
// A locked session rejects the attempt before any matching. An unknown
// username consumes an attempt and fails exactly like a wrong pattern, so
// the attempt budget does not leak which usernames exist. A length mismatch
// between attempt and stored pattern is an ordinary mismatch.
//
// After a tolerance match the stored points are re-committed with the
// stored salt and checked against the stored commitment; a mismatch means
// the record was tampered with or corrupted and yields
// common.ErrIntegrityViolation rather than an ordinary failure.
//
// Every outcome is recorded before returning.
func (sn *Session) Login(ctx context.Context, attempt pattern.Pattern) (*LoginResult, error) {
	if sn.gate.State() == gate.Locked {
		sn.svc.recorder.Record(ctx, audit.Event{
			Username: sn.username,
			Kind:     audit.KindLoginLocked,
			Detail:   "attempt rejected: session locked",
		})
		return nil, common.ErrLocked
	}
	if sn.gate.State() == gate.Success {
		// A finished session cannot be reused.
		sn.svc.recorder.Record(ctx, audit.Event{
			Username: sn.username,
			Kind:     audit.KindLoginAttempt,
			Detail:   "attempt rejected: session already succeeded",
		})
		return nil, common.ErrAuthenticationFailed
	}

	user, err := sn.svc.repo.GetByUsername(ctx, sn.username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Unknown user burns an attempt like any mismatch.
			return nil, sn.fail(ctx, "unknown username")
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	if !pattern.Matches(user.Pattern, attempt, sn.svc.tolerance) {
		return nil, sn.fail(ctx, "pattern mismatch")
	}

	commitment, err := sn.svc.committer.Commit(user.Pattern, user.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	if !cryptox.VerifyCommitment(commitment, user.Commitment) {
		sn.svc.recorder.Record(ctx, audit.Event{
			Username: sn.username,
			Kind:     audit.KindIntegrityViolation,
			Detail:   "stored pattern does not match stored commitment",
		})
		return nil, common.ErrIntegrityViolation
	}

	sn.gate.Pass()

	// Best effort: a failed timestamp update must not undo a valid login.
	now := time.Now()
	_ = sn.svc.repo.UpdateLastLogin(ctx, sn.username, now)

	token, err := GenerateToken(sn.username, sn.svc.secretKey, sn.svc.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	sn.svc.recorder.Record(ctx, audit.Event{
		Username: sn.username,
		Kind:     audit.KindLoginSuccess,
		Detail:   "authenticated",
	})

	user.LastLogin = &now
	return &LoginResult{Record: user, Token: token}, nil
}

// fail consumes one attempt, records the outcome, and returns the error the
// caller should see.
func (sn *Session) fail(ctx context.Context, detail string) error {
	if sn.gate.Fail() == gate.Locked {
		sn.svc.recorder.Record(ctx, audit.Event{
			Username: sn.username,
			Kind:     audit.KindLoginLocked,
			Detail:   detail + "; max attempts reached",
		})
		return common.ErrLocked
	}

	sn.svc.recorder.Record(ctx, audit.Event{
		Username: sn.username,
		Kind:     audit.KindLoginAttempt,
		Detail:   fmt.Sprintf("%s; %d attempts remaining", detail, sn.gate.Remaining()),
	})
	return common.ErrAuthenticationFailed
}
