package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"squad-maker-service/internal/config"
	"squad-maker-service/internal/logging"
	"squad-maker-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	envErr := config.LoadDotenv()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "squad-maker-service",
		Version: appVersion,
	})
	if envErr != nil {
		logger.Warn("failed to load .env", "error", envErr)
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
