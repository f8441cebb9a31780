// Package audit defines the structured event records emitted on every
// authentication state transition, and the Recorder collaborator that
// receives them.
//
// Recording is fire-and-forget: a recorder must never fail the auth
// operation that produced the event.
package audit

import (
	"context"
	"time"

	"github.com/akoreshkova/patternlock/internal/logging"
)

// Kind classifies an authentication event.
type Kind string

const (
	KindRegister           Kind = "register"
	KindLoginAttempt       Kind = "login_attempt"
	KindLoginSuccess       Kind = "login_success"
	KindLoginLocked        Kind = "login_locked"
	KindIntegrityViolation Kind = "integrity_violation"
)

// Event is one authentication event record.
type Event struct {
	Time     time.Time
	Username string
	Kind     Kind
	Detail   string
}

// Recorder receives authentication events.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

// SlogRecorder emits events through the structured logger. Integrity
// violations go out at error level, failed attempts and lockouts at warn,
// everything else at info.
type SlogRecorder struct {
	log logging.Logger
}

func NewSlogRecorder(log logging.Logger) *SlogRecorder {
	return &SlogRecorder{log: log}
}

func (r *SlogRecorder) Record(ctx context.Context, e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	args := []any{
		"username", e.Username,
		"event_kind", string(e.Kind),
		"time", e.Time,
		"detail", e.Detail,
	}

	switch e.Kind {
	case KindIntegrityViolation:
		r.log.Error(ctx, "auth event", args...)
	case KindLoginAttempt, KindLoginLocked:
		r.log.Warn(ctx, "auth event", args...)
	default:
		r.log.Info(ctx, "auth event", args...)
	}
}

// NopRecorder discards all events. Useful in tests and for embedding the
// engine without an audit trail.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}
