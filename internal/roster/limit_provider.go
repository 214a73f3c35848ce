package roster

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"squad-maker-service/internal/domain/players"
)

const defaultMinInterval = 10 * time.Second

// rateLimitedProvider enforces a minimum spacing between upstream calls.
type rateLimitedProvider struct {
	next     Provider
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	last time.Time
}

// NewRateLimitedProvider returns a Provider that waits until interval has passed since
// the previous call before delegating. The first call goes straight through.
func NewRateLimitedProvider(next Provider, interval time.Duration, logger *slog.Logger) Provider {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return nil, ErrProviderUnavailable
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if wait := p.interval - p.now().Sub(p.last); wait > 0 {
			if p.logger != nil {
				p.logger.Info("rate-limited fetch waiting", slog.String("provider", "rate-limited"), slog.Duration("wait", wait))
			}
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
		}
	}
	p.last = p.now()
	return p.next.FetchPlayers(ctx)
}
