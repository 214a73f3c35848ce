package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"squad-maker-service/internal/metrics"
	"squad-maker-service/internal/teststubs"
	"squad-maker-service/internal/testutil"
)

func metricsSetupSuccess(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = metricsSetupSuccess

	cfg := testConfig(t)
	cfg.Metrics.Enabled = true
	cfg.Metrics.Port = "9999"

	rec, srv, stop := buildMetrics(cfg, nil, nil)
	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %q", srv.Addr())
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig(t)
	cfg.Metrics.Enabled = true

	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server on setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	srv := newServerWithMetrics(testConfig(t), nil, &teststubs.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := testConfig(t)
	cfg.Metrics.Enabled = true

	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no shutdown hook for injected recorder")
	}
}

func TestServerRecordsRefreshAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	cfg := testConfig(t)
	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{Players: testutil.SampleRoster()}, rec)

	if err := srv.poller.RefreshNow(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if got := rec.ProviderCalls("stub"); got != 1 {
		t.Fatalf("expected one provider attempt recorded, got %d", got)
	}
}
