package http

import (
	nethttp "net/http"

	"squad-maker-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	mux.HandleFunc("/players", h.Players)
	mux.HandleFunc("/players/selection", h.Selection)
	mux.HandleFunc("/players/guests", h.Guests)
	mux.HandleFunc("/teams", h.Teams)
	mux.HandleFunc("/teams/regenerate", h.Regenerate)
	mux.HandleFunc("/teams/moves", h.MovePlayer)
	if admin != nil {
		mux.HandleFunc("/admin/roster/refresh", admin.RefreshRoster)
	}
	mux.HandleFunc("/", h.NotFound)
	return mux
}
