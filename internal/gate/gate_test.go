package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_StartsActiveAtZero(t *testing.T) {
	g := New(3)

	assert.Equal(t, Active, g.State())
	assert.Equal(t, 0, g.Failures())
	assert.Equal(t, 3, g.Remaining())
}

func TestNew_NonPositiveMaxFallsBack(t *testing.T) {
	g := New(0)
	assert.Equal(t, DefaultMaxAttempts, g.Remaining())

	g = New(-5)
	assert.Equal(t, DefaultMaxAttempts, g.Remaining())
}

func TestFail_ProgressionToLocked(t *testing.T) {
	g := New(3)

	assert.Equal(t, Active, g.Fail())
	assert.Equal(t, 1, g.Failures())

	assert.Equal(t, Active, g.Fail())
	assert.Equal(t, 2, g.Failures())

	assert.Equal(t, Locked, g.Fail())
	assert.Equal(t, 3, g.Failures())
	assert.Equal(t, 0, g.Remaining())
}

func TestFail_LockedIsTerminal(t *testing.T) {
	g := New(1)
	assert.Equal(t, Locked, g.Fail())

	// Further failures and even a pass keep the gate locked.
	assert.Equal(t, Locked, g.Fail())
	assert.Equal(t, Locked, g.Pass())
	assert.Equal(t, 1, g.Failures())
}

func TestPass_BeforeLockout(t *testing.T) {
	g := New(3)
	g.Fail()
	g.Fail()

	assert.Equal(t, Success, g.Pass())
	assert.Equal(t, Success, g.State())
	assert.Equal(t, 0, g.Remaining())
}

func TestPass_SuccessIsTerminal(t *testing.T) {
	g := New(3)
	g.Pass()

	assert.Equal(t, Success, g.Fail())
	assert.Equal(t, 0, g.Failures())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "unknown", State(42).String())
}
