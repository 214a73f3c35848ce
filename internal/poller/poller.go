package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/logging"
	"squad-maker-service/internal/metrics"
	"squad-maker-service/internal/roster"
)

const defaultInterval = 5 * time.Minute

// RosterSink receives each validated roster.
type RosterSink interface {
	SetRoster(roster []players.Player)
}

// Poller reloads the club roster on an interval and hands it to the sink.
type Poller struct {
	provider roster.Provider
	sink     RosterSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	fetchMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	PlayerCount         int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider roster.Provider, sink RosterSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("roster poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		_ = p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("roster poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("roster poller stopped")
				return
			case <-p.ticker.C:
				_ = p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow performs a synchronous reload outside the ticker schedule.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()

	start := time.Now()
	p.recordAttempt(start)

	err := p.load(ctx)
	p.metrics.RecordRosterRefresh(time.Since(start), err)
	if err != nil {
		p.logError("roster refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}
	p.logInfo("roster refreshed",
		logging.FieldCount, p.Status().PlayerCount,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (p *Poller) load(ctx context.Context) error {
	if p.provider == nil {
		return roster.ErrProviderUnavailable
	}
	fetched, err := p.provider.FetchPlayers(ctx)
	if err != nil {
		return err
	}
	if len(fetched) == 0 {
		return errors.New("roster is empty")
	}
	if err := players.ValidateRoster(fetched); err != nil {
		return fmt.Errorf("roster rejected: %w", err)
	}
	if p.sink != nil {
		p.sink.SetRoster(fetched)
	}
	p.recordSuccess(time.Now(), len(fetched))
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, count int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.PlayerCount = count
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider.
func (p *Poller) Provider() roster.Provider {
	return p.provider
}
