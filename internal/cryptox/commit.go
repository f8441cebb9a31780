// Package cryptox implements the commitment scheme for registered patterns:
// per-user salt generation and a one-way, salted digest over the canonical
// pattern bytes.
//
// The commitment is deliberately not the authoritative login check. A
// cryptographic digest is not tolerance-comparable, so the engine stores raw
// points for matching and keeps the commitment as a tamper-evidence artifact
// verified after a successful match.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/akoreshkova/patternlock/internal/common"
	"github.com/akoreshkova/patternlock/internal/pattern"
)

// SaltLength is the number of random bytes in a freshly generated salt.
const SaltLength = 16

// Argon2id parameters for the hardened committer.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	digestLen    = 32
)

// Committer produces a one-way commitment from a pattern and a salt.
// Implementations must be deterministic: the same pattern and salt always
// yield the same commitment.
type Committer interface {
	Commit(p pattern.Pattern, salt []byte) ([]byte, error)
}

// GenerateSalt returns SaltLength cryptographically random bytes. A new salt
// is generated on every registration; salts are never reused, even when the
// same user re-registers.
func GenerateSalt() ([]byte, error) {
	return common.GenerateRandByteArray(SaltLength)
}

// SHA256Committer hashes the canonical pattern bytes concatenated with the
// salt into a 256-bit digest.
type SHA256Committer struct{}

func (SHA256Committer) Commit(p pattern.Pattern, salt []byte) ([]byte, error) {
	input, err := p.Encode()
	if err != nil {
		return nil, err
	}
	h := sha256.New()
	h.Write(input)
	h.Write(salt)
	return h.Sum(nil), nil
}

// Argon2Committer derives the commitment with Argon2id over the same
// canonical bytes. Slower than SHA-256 on purpose: it raises the cost of
// brute-forcing the small click-point space from a leaked record.
type Argon2Committer struct{}

func (Argon2Committer) Commit(p pattern.Pattern, salt []byte) ([]byte, error) {
	input, err := p.Encode()
	if err != nil {
		return nil, err
	}
	return argon2.IDKey(input, salt, argonTime, argonMemory, argonThreads, digestLen), nil
}

// VerifyCommitment compares two commitments in constant time.
func VerifyCommitment(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
