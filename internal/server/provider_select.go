package server

import (
	"log/slog"

	"squad-maker-service/internal/config"
	"squad-maker-service/internal/roster"
	"squad-maker-service/internal/roster/file"
	"squad-maker-service/internal/roster/fixture"
	"squad-maker-service/internal/roster/remote"
)

func selectProvider(cfg config.RosterConfig, logger *slog.Logger) roster.Provider {
	switch cfg.Source {
	case "fixture", "":
		return fixture.New()
	case "file":
		return file.New(cfg.Path)
	case "remote":
		if cfg.URL == "" {
			if logger != nil {
				logger.Warn("remote roster has no url, falling back to fixture")
			}
			return fixture.New()
		}
		return remote.NewClient(remote.Config{
			URL:    cfg.URL,
			APIKey: cfg.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown roster source, falling back to fixture", slog.String("source", cfg.Source))
		}
		return fixture.New()
	}
}
