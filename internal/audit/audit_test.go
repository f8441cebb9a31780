package audit

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/akoreshkova/patternlock/internal/logging"
)

func newRecorder(t *testing.T) (*SlogRecorder, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	return NewSlogRecorder(logging.NewSlogLogger(l)), &buf
}

func TestSlogRecorder_Levels(t *testing.T) {
	tests := []struct {
		kind  Kind
		level string
	}{
		{KindRegister, "INFO"},
		{KindLoginSuccess, "INFO"},
		{KindLoginAttempt, "WARN"},
		{KindLoginLocked, "WARN"},
		{KindIntegrityViolation, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			r, buf := newRecorder(t)
			r.Record(context.Background(), Event{Username: "alice", Kind: tc.kind, Detail: "d"})

			out := buf.String()
			if !strings.Contains(out, "level="+tc.level) {
				t.Fatalf("expected level=%s in output:\n%s", tc.level, out)
			}
			if !strings.Contains(out, "event_kind="+string(tc.kind)) {
				t.Fatalf("expected event_kind=%s in output:\n%s", tc.kind, out)
			}
			if !strings.Contains(out, "username=alice") {
				t.Fatalf("expected username attribute in output:\n%s", out)
			}
		})
	}
}

func TestSlogRecorder_FillsZeroTime(t *testing.T) {
	r, buf := newRecorder(t)
	r.Record(context.Background(), Event{Username: "bob", Kind: KindRegister})

	if !strings.Contains(buf.String(), "time=") {
		t.Fatalf("expected a time attribute in output:\n%s", buf.String())
	}
}

func TestNopRecorder_DoesNothing(t *testing.T) {
	NopRecorder{}.Record(context.Background(), Event{Username: "x", Kind: KindRegister})
}
