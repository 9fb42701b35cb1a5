package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, "/api", cfg.APIBasePath)
	assert.Equal(t, "academy.db", cfg.SessionDBPath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.OnlineCheckInterval)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep a stray .env out of the test

	t.Setenv("ACADEMY_API_URL", "https://api.staging.example")
	t.Setenv("ACADEMY_API_BASE_PATH", "/v2")
	t.Setenv("ACADEMY_REQUEST_TIMEOUT", "5")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.staging.example", cfg.APIURL)
	assert.Equal(t, "/v2", cfg.APIBasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// untouched fields keep their defaults
	assert.Equal(t, "academy.db", cfg.SessionDBPath)
}

func TestParseEnv_IgnoresUnparsableNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ACADEMY_REQUEST_TIMEOUT", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestParseEnv_ReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("ACADEMY_SESSION_DB=custom.db\n"), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "custom.db", cfg.SessionDBPath)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "https://api.example", "-p", "/api/v3", "-t", "10", "-i", "60"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://api.example", cfg.APIURL)
	assert.Equal(t, "/api/v3", cfg.APIBasePath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.OnlineCheckInterval)
}
