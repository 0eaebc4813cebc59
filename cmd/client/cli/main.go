package main

import (
	"context"
	"log"
	"os"

	"github.com/avolkovs/wpcloud/internal/client/cli"
	"github.com/avolkovs/wpcloud/internal/client/config"
	"github.com/avolkovs/wpcloud/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app := cli.NewApp(cfg, logger)
	app.Run(context.Background())
}
