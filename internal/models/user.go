// Package models holds the persisted record types shared by repositories
// and services.
package models

import (
	"time"

	"github.com/akoreshkova/patternlock/internal/pattern"
)

// UserRecord is one registered account.
//
// Both the raw points and the salted commitment are stored. Tolerance
// matching needs the raw points (a digest of two "close" patterns shares
// nothing), so the commitment cannot be the login check; it is kept as a
// tamper-evidence artifact, re-verified after a successful match.
//
// Username and ImagePath are fixed at registration. Salt and Commitment are
// written once and only replaced together when the user re-registers with a
// fresh salt.
type UserRecord struct {
	ID         string
	Username   string
	ImagePath  string
	Salt       []byte
	Commitment []byte
	Pattern    pattern.Pattern
	CreatedAt  time.Time
	LastLogin  *time.Time
}
