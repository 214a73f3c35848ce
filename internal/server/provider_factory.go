package server

import (
	"log/slog"

	"squad-maker-service/internal/config"
	"squad-maker-service/internal/metrics"
	"squad-maker-service/internal/roster"
	"squad-maker-service/internal/roster/remote"
)

// providerFactory assembles the roster provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) roster.Provider {
	base := selectProvider(cfg.Roster, f.logger)
	if _, ok := base.(*remote.Client); ok {
		base = roster.NewRateLimitedProvider(base, cfg.Roster.MinInterval, f.logger)
	}
	return f.wrap(cfg, base)
}

func (f providerFactory) wrap(cfg config.Config, base roster.Provider) roster.Provider {
	name := normalizeProviderName(cfg.Roster.Source, base)
	return roster.NewRetryingProvider(base, f.logger, f.metrics, name, cfg.Roster.MaxAttempts, 0)
}
