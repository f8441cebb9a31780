package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akoreshkova/patternlock/internal/flagx"
	"github.com/akoreshkova/patternlock/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. Fields are pointers so a partial file overrides
// only the keys it actually contains; absent keys keep their defaults.
type JsonConfig struct {
	StoreBackend         *string         `json:"store_backend"`
	DatabaseDSN          *string         `json:"database_dsn"`
	Tolerance            *int            `json:"tolerance"`
	MaxAttempts          *int            `json:"max_attempts"`
	Hardened             *bool           `json:"hardened"`
	SecretKey            *string         `json:"secret_key"`
	SessionTokenValidity *timex.Duration `json:"session_token_validity"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; if
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics, since the app cannot start misconfigured.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.StoreBackend != nil {
		config.StoreBackend = *c.StoreBackend
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.Tolerance != nil {
		config.Tolerance = *c.Tolerance
	}
	if c.MaxAttempts != nil {
		config.MaxAttempts = *c.MaxAttempts
	}
	if c.Hardened != nil {
		config.Hardened = *c.Hardened
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTokenValidity != nil {
		config.SessionTokenValidity = time.Duration(c.SessionTokenValidity.Duration)
	}
}
