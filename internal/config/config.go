// Package config handles configuration for the patternlock app,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/akoreshkova/patternlock/internal/gate"
	"github.com/akoreshkova/patternlock/internal/pattern"
)

// Config holds runtime settings for the authentication engine and the
// demo app around it.
//
// Fields:
//   - StoreBackend: user-record store, one of "memory", "sqlite", "postgres".
//   - DatabaseDSN: SQLite path or Postgres DSN, depending on the backend.
//   - Tolerance: pixel radius within which an attempted click matches.
//   - MaxAttempts: failed attempts per session before lockout.
//   - Hardened: derive commitments with Argon2id instead of SHA-256.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//     Do not use the test default in prod.
//   - SessionTokenValidity: lifetime of a minted session token.
type Config struct {
	StoreBackend         string
	DatabaseDSN          string
	Tolerance            int
	MaxAttempts          int
	Hardened             bool
	SecretKey            string
	SessionTokenValidity time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: The secret key is insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.StoreBackend = "memory"
	c.DatabaseDSN = "patternlock.db"
	c.Tolerance = pattern.DefaultTolerance
	c.MaxAttempts = gate.DefaultMaxAttempts
	c.Hardened = false
	c.SecretKey = "secretKey"
	c.SessionTokenValidity = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
