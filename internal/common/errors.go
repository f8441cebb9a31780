// Package common defines shared constants and sentinel errors used across
// the patternlock engine. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already taken")

	// Input validation errors.
	ErrInvalidPatternLength = errors.New("pattern must contain between 3 and 5 points")

	// Authentication flow errors. ErrAuthenticationFailed deliberately covers
	// both a wrong pattern and an unknown username so the two cases are
	// indistinguishable to the caller.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrLocked               = errors.New("maximum attempts reached, session locked")

	// ErrIntegrityViolation means the stored points no longer agree with the
	// stored commitment. The record requires administrative remediation, not
	// another login attempt.
	ErrIntegrityViolation = errors.New("stored pattern does not match its commitment")

	// System-level errors.
	ErrEntropyUnavailable = errors.New("random source unavailable")
	ErrInternal           = errors.New("internal error")
)
