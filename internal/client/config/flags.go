package config

import (
	"flag"
	"os"
	"time"

	"github.com/epicrobotics/academy-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend origin, e.g. https://api.epicrobotics.example
//	-p string   API base path, e.g. /api
//	-d string   path of the local session database
//	-t int      per-request timeout in seconds
//	-i int      online check interval in seconds
//
// os.Args is filtered to the flags handled here so that the config-file
// flags (-c/-config) parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend origin")
	fs.StringVar(&cfg.APIBasePath, "p", cfg.APIBasePath, "API base path")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
