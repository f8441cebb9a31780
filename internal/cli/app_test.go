package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akoreshkova/patternlock/internal/audit"
	"github.com/akoreshkova/patternlock/internal/auth"
	"github.com/akoreshkova/patternlock/internal/config"
	"github.com/akoreshkova/patternlock/internal/repositories/users"
)

func newReaderFor(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	svc := auth.NewService(users.NewInMemoryRepository(), audit.NopRecorder{}, cfg)

	var out bytes.Buffer
	return NewApp(svc, strings.NewReader(input), &out), &out
}

func stubPatterns(t *testing.T, patterns ...string) {
	t.Helper()
	orig := readSecret
	t.Cleanup(func() { readSecret = orig })

	i := 0
	readSecret = func(fd int) ([]byte, error) {
		p := patterns[i]
		if i < len(patterns)-1 {
			i++
		}
		return []byte(p), nil
	}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	app, out := newTestApp(t, "alice\nassets/beach.jpg\n")
	stubPatterns(t, "10,10 50,50 90,10")

	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, out.String(), "User alice registered.")

	app.reader = newReaderFor("alice\n")
	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Welcome back, alice.")
	assert.Contains(t, out.String(), "Session token:")
}

func TestApp_LoginLockout(t *testing.T) {
	app, out := newTestApp(t, "alice\nassets/beach.jpg\n")
	stubPatterns(t, "10,10 50,50 90,10")
	require.NoError(t, app.Register(context.Background()))

	stubPatterns(t, "500,500 501,501 502,502")
	app.reader = newReaderFor("alice\n")
	err := app.Login(context.Background())
	require.Error(t, err)

	assert.Contains(t, out.String(), "2 attempts remaining")
	assert.Contains(t, out.String(), "1 attempts remaining")
	assert.Contains(t, out.String(), "Session locked")
}

func TestApp_RegisterDuplicateUsername(t *testing.T) {
	app, out := newTestApp(t, "alice\nfirst.jpg\nalice\nsecond.jpg\n")
	stubPatterns(t, "10,10 50,50 90,10")

	require.NoError(t, app.Register(context.Background()))
	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "already taken")
}

func TestApp_RegisterShortPattern(t *testing.T) {
	app, out := newTestApp(t, "bob\nimg.jpg\n")
	stubPatterns(t, "10,10 50,50")

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "3 to 5 points")
}

func TestApp_RunStopsOnCancelledContext(t *testing.T) {
	// Input that would keep the loop going if cancellation were ignored.
	app, _ := newTestApp(t, "help\nhelp\nexit\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_RunDispatch(t *testing.T) {
	app, out := newTestApp(t, "bogus\nexit\n")

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), `Unknown command "bogus"`)
}
