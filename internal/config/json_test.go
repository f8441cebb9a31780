package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_LoadsAllFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"store_backend":          "sqlite",
		"database_dsn":           "auth.db",
		"tolerance":              25,
		"max_attempts":           5,
		"hardened":               true,
		"secret_key":             "my_secret_key",
		"session_token_validity": "30m",
	})

	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	parseJson(cfg)

	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "auth.db", cfg.DatabaseDSN)
	assert.Equal(t, 25, cfg.Tolerance)
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.True(t, cfg.Hardened)
	assert.Equal(t, "my_secret_key", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.SessionTokenValidity)
}

func Test_parseJson_PartialFileKeepsOtherValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	// Only one key present: everything else must survive untouched.
	path := writeTempJSON(t, map[string]any{
		"tolerance": 30,
	})
	os.Args = []string{"testbin", "-config", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, 30, cfg.Tolerance)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.SessionTokenValidity)
}

func Test_parseJson_NoFlag_NoChanges(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := &Config{StoreBackend: "memory", Tolerance: 20}
	parseJson(cfg)

	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, 20, cfg.Tolerance)
}

func Test_parseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	os.Args = []string{"testbin", "-config", path}

	assert.Panics(t, func() { parseJson(&Config{}) })
}
