package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"squad-maker-service/internal/app/squads"
	"squad-maker-service/internal/config"
	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/roster/file"
	"squad-maker-service/internal/roster/fixture"
	"squad-maker-service/internal/roster/remote"
	"squad-maker-service/internal/store"
	"squad-maker-service/internal/teststubs"
	"squad-maker-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:          "0",
		SelectionPath: filepath.Join(t.TempDir(), "selected-players.json"),
		Roster: config.RosterConfig{
			Source:          "stub",
			RefreshInterval: time.Hour,
			MaxAttempts:     1,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}
}

func TestServerServesRosterAndTeams(t *testing.T) {
	cfg := testConfig(t)
	provider := &teststubs.StubProvider{Players: testutil.SampleRoster()}
	srv := newServerWithProvider(cfg, nil, provider)

	if err := srv.poller.RefreshNow(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var roster []players.Player
	testutil.DecodeJSON(t, rr, &roster)
	if len(roster) != 8 {
		t.Fatalf("expected 8 players, got %d", len(roster))
	}

	body := `{"ids":["` + strings.Join(testutil.IDs(roster), `","`) + `"]}`
	rr = testutil.Serve(router, http.MethodPost, "/players/selection", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodPost, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if _, err := os.Stat(cfg.SelectionPath); err != nil {
		t.Fatalf("expected selection persisted to %s: %v", cfg.SelectionPath, err)
	}
}

func TestServerReadyReflectsRosterRefresh(t *testing.T) {
	cfg := testConfig(t)
	srv := newServerWithProvider(cfg, nil, testutil.GoodProvider{Players: testutil.SampleRoster()})
	router := srv.Handler()

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/ready", nil), http.StatusServiceUnavailable)

	if err := srv.poller.RefreshNow(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/ready", nil), http.StatusOK)
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	cfg := testConfig(t)
	srv := newServerWithProvider(cfg, nil, testutil.ErrProvider{Err: errors.New("roster offline")})

	if err := srv.poller.RefreshNow(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var roster []players.Player
	testutil.DecodeJSON(t, rr, &roster)
	if len(roster) != 0 {
		t.Fatalf("expected empty roster when provider errors, got %d", len(roster))
	}
}

func TestServerUnavailableProviderStaysNotReady(t *testing.T) {
	srv := newServerWithProvider(testConfig(t), nil, testutil.UnavailableProvider{})

	if err := srv.poller.RefreshNow(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestServerRestoresPersistedSelection(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.SelectionPath, []byte(`["gk1","f1"]`), 0o644); err != nil {
		t.Fatalf("write selection: %v", err)
	}
	srv := newServerWithProvider(cfg, nil, &teststubs.StubProvider{Players: testutil.SampleRoster()})
	if err := srv.poller.RefreshNow(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestServerMountsAdminRefreshWithToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminToken = "secret"
	provider := &teststubs.StubProvider{Players: testutil.SampleRoster()}
	srv := newServerWithProvider(cfg, nil, provider)

	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/roster/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	req, _ := http.NewRequest(http.MethodPost, "/admin/roster/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if provider.Calls.Load() != 1 {
		t.Fatalf("expected one provider call, got %d", provider.Calls.Load())
	}
}

func TestServerWithoutAdminTokenHidesAdminRoute(t *testing.T) {
	srv := newServerWithProvider(testConfig(t), nil, &teststubs.StubProvider{})
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/roster/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.RosterConfig{}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture by default")
	}
	if _, ok := selectProvider(config.RosterConfig{Source: "unknown"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown source")
	}
	if _, ok := selectProvider(config.RosterConfig{Source: "remote"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for remote without url")
	}
	if p, ok := selectProvider(config.RosterConfig{Source: "file", Path: "players.json"}, nil).(*file.Provider); !ok || p.Path() != "players.json" {
		t.Fatalf("expected file provider")
	}
	if _, ok := selectProvider(config.RosterConfig{Source: "remote", URL: "http://example.com/players"}, nil).(*remote.Client); !ok {
		t.Fatalf("expected remote client")
	}
}

func TestProviderFactoryWrapsWithRetry(t *testing.T) {
	prov := newProviderFactory(nil, nil).build(config.Config{Roster: config.RosterConfig{Source: "fixture"}})
	if _, ok := prov.(*fixture.Provider); ok || prov == nil {
		t.Fatalf("expected fixture wrapped with retries, got %T", prov)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("File", nil); got != "file" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "*fixture.provider" {
		t.Fatalf("expected derived name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "roster" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Roster.Source = "fixture"
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
}

func newDepsServer(httpSrv httpServer, plr Poller) *Server {
	svc := squads.NewService(store.NewMemoryStore(), nil)
	return newServerWithDeps(config.Config{}, nil, svc, httpSrv, plr)
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	newDepsServer(httpSrv, p).gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	start := time.Now()
	newDepsServer(blocking, p).gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	newDepsServer(httpSrv, p).gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newDepsServer(&testutil.ErrHTTPServer{}, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.CloseableHTTPServer{}
	srv := newDepsServer(httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
