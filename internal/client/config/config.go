// Package config resolves runtime settings for the Academy CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// JSON config file (-c/-config), environment variables (with optional .env
// file), and command-line flags.
package config

import "time"

// Config holds runtime settings for the client.
//
// APIURL and APIBasePath are concatenated to form the base of every request
// URL. SessionDBPath locates the local SQLite database holding the bearer
// token. RequestTimeout bounds each API call; OnlineCheckInterval is how
// often the REPL probes backend reachability.
type Config struct {
	APIURL              string
	APIBasePath         string
	SessionDBPath       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:5000"
	c.APIBasePath = "/api"
	c.SessionDBPath = "academy.db"
	c.RequestTimeout = 30 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON, environment, and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
