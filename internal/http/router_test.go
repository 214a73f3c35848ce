package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"squad-maker-service/internal/app/squads"
	"squad-maker-service/internal/http/handlers"
	"squad-maker-service/internal/store"
	"squad-maker-service/internal/testutil"
)

func newTestRouter(admin *handlers.AdminHandler) http.Handler {
	ms := store.NewMemoryStore()
	ms.SetRoster(testutil.SampleRoster())
	svc := squads.NewService(ms, nil)
	return NewRouter(handlers.NewHandler(svc, nil, nil), admin)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(nil)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/players", http.StatusOK},
		{http.MethodGet, "/teams", http.StatusNotFound}, // known route, nothing generated yet
		{http.MethodPost, "/teams", http.StatusUnprocessableEntity},
		{http.MethodGet, "/players/selection", http.StatusMethodNotAllowed},
		{http.MethodGet, "/players/guests", http.StatusMethodNotAllowed},
		{http.MethodGet, "/teams/regenerate", http.StatusMethodNotAllowed},
		{http.MethodGet, "/teams/moves", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(nil)

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "not found" {
		t.Fatalf("expected json not found error, got %v", resp)
	}
}

func TestRouterAdminRouteOnlyWhenConfigured(t *testing.T) {
	without := newTestRouter(nil)
	rr := testutil.Serve(without, http.MethodPost, "/admin/roster/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	stub := &testutil.StubPoller{}
	with := newTestRouter(handlers.NewAdminHandler(stub, "secret", nil))
	req := httptest.NewRequest(http.MethodPost, "/admin/roster/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(with, req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.RefreshCalls != 1 {
		t.Fatalf("expected refresh call, got %d", stub.RefreshCalls)
	}
}
