package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"squad-maker-service/internal/http/requestutil"
	"squad-maker-service/internal/logging"
	"squad-maker-service/internal/poller"
)

// RosterRefresher reloads the roster on demand.
type RosterRefresher interface {
	RefreshNow(ctx context.Context) error
	Status() poller.Status
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher RosterRefresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token disables the endpoints.
func NewAdminHandler(refresher RosterRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshRoster forces a roster reload. Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "roster refresher not configured", logger)
		return
	}

	if err := h.refresher.RefreshNow(r.Context()); err != nil {
		logging.Warn(logger, "admin roster refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "roster refresh failed: "+err.Error(), logger)
		return
	}

	status := h.refresher.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"players": status.PlayerCount,
	}, logger)
	logging.Info(logger, "admin roster refreshed", slog.Int(logging.FieldCount, status.PlayerCount))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return requestutil.BearerToken(r) == h.token
}
