package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/epicrobotics/academy-cli/internal/client/cli"
	"github.com/epicrobotics/academy-cli/internal/client/config"
	"github.com/epicrobotics/academy-cli/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
