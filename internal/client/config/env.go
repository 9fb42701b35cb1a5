package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first; its absence is not an error.
//
// Recognized variables:
//
//	ACADEMY_API_URL                origin of the backend
//	ACADEMY_API_BASE_PATH          common endpoint prefix
//	ACADEMY_SESSION_DB             path of the local session database
//	ACADEMY_REQUEST_TIMEOUT        per-request timeout in seconds
//	ACADEMY_ONLINE_CHECK_INTERVAL  reachability probe interval in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ACADEMY_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("ACADEMY_API_BASE_PATH"); v != "" {
		cfg.APIBasePath = v
	}
	if v := os.Getenv("ACADEMY_SESSION_DB"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("ACADEMY_REQUEST_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("ACADEMY_ONLINE_CHECK_INTERVAL"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.OnlineCheckInterval = time.Duration(seconds) * time.Second
		}
	}
}
