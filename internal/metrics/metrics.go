package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type balanceStats struct {
	runs          int
	errors        int
	moves         int
	lastRatingGap float64
	lastDuration  time.Duration
}

// Recorder captures in-memory counters for roster providers and team balancing,
// forwarding to OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	balance balanceStats
	otel    *otelInstruments
}

// NewRecorder returns a recorder that only keeps in-memory counters.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider.
func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRosterRefresh tracks roster refresh cycles and errors.
func (r *Recorder) RecordRosterRefresh(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

// RecordBalance tracks one balancing run. ratingGap is the absolute difference
// between the two team averages and is ignored for failed runs.
func (r *Recorder) RecordBalance(duration time.Duration, ratingGap float64, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.balance.runs++
	r.balance.lastDuration = duration
	if err != nil {
		r.balance.errors++
	} else {
		r.balance.lastRatingGap = ratingGap
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBalance(duration, ratingGap, err)
	}
}

// RecordManualMove counts a player moved between teams after generation.
func (r *Recorder) RecordManualMove() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.balance.moves++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCounter(r.otel.manualMoves, 1)
	}
}

// BalanceSnapshot is a copy of the balancing counters.
type BalanceSnapshot struct {
	Runs          int
	Errors        int
	Moves         int
	LastRatingGap float64
	LastDuration  time.Duration
}

// Balance returns the current balancing counters.
func (r *Recorder) Balance() BalanceSnapshot {
	if r == nil {
		return BalanceSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return BalanceSnapshot{
		Runs:          r.balance.runs,
		Errors:        r.balance.errors,
		Moves:         r.balance.moves,
		LastRatingGap: r.balance.lastRatingGap,
		LastDuration:  r.balance.lastDuration,
	}
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
