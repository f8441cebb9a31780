// Package gate implements the per-session attempt limiter: a small state
// machine that counts failed login attempts and locks the session once the
// configured maximum is reached.
package gate

// DefaultMaxAttempts is the number of consecutive failures before lockout.
const DefaultMaxAttempts = 3

// State of the gate within one login session.
type State int

const (
	// Active accepts further attempts.
	Active State = iota
	// Success is terminal: the session authenticated and the counter is
	// discarded.
	Success
	// Locked is terminal: no further attempts are accepted. A fresh session
	// must be started; the lock does not expire on its own.
	Locked
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Success:
		return "success"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Gate tracks failed attempts for a single login session. It starts in
// Active with a zero counter. Not safe for concurrent use; a session is
// owned by one caller.
type Gate struct {
	maxAttempts int
	failures    int
	state       State
}

// New returns a gate in Active(0). Non-positive maxAttempts falls back to
// DefaultMaxAttempts.
func New(maxAttempts int) *Gate {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Gate{maxAttempts: maxAttempts, state: Active}
}

// State returns the current gate state.
func (g *Gate) State() State {
	return g.state
}

// Failures returns the number of mismatches consumed so far.
func (g *Gate) Failures() int {
	return g.failures
}

// Remaining returns how many attempts are left before lockout, zero once
// the gate is no longer Active.
func (g *Gate) Remaining() int {
	if g.state != Active {
		return 0
	}
	return g.maxAttempts - g.failures
}

// Fail consumes one attempt. While attempts remain the gate stays Active
// with an incremented counter; consuming the last one transitions to
// Locked. Calling Fail on a terminal gate is a no-op that reports the
// terminal state.
func (g *Gate) Fail() State {
	if g.state != Active {
		return g.state
	}
	g.failures++
	if g.failures >= g.maxAttempts {
		g.state = Locked
	}
	return g.state
}

// Pass transitions any Active gate to Success. Terminal states are
// preserved: a locked session cannot be passed.
func (g *Gate) Pass() State {
	if g.state != Active {
		return g.state
	}
	g.state = Success
	return g.state
}
