package handlers

import (
	nethttp "net/http"
	"strings"
	"time"

	"squad-maker-service/internal/app/squads"
	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
)

type teamView struct {
	teams.Team
	Composition teams.Composition `json:"composition"`
}

type matchupResponse struct {
	TeamA       teamView  `json:"teamA"`
	TeamB       teamView  `json:"teamB"`
	RatingGap   float64   `json:"ratingGap"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type moveRequest struct {
	PlayerID string `json:"playerId"`
	ToTeam   string `json:"toTeam"`
	Position string `json:"position,omitempty"`
}

func newMatchupResponse(m squads.Matchup) matchupResponse {
	return matchupResponse{
		TeamA:       teamView{Team: m.TeamA, Composition: m.TeamA.Composition()},
		TeamB:       teamView{Team: m.TeamB, Composition: m.TeamB.Composition()},
		RatingGap:   m.RatingGap(),
		GeneratedAt: m.GeneratedAt,
	}
}

// Teams serves /teams: GET returns the session teams, POST generates, DELETE resets.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		m, err := h.svc.Teams()
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, newMatchupResponse(m), h.logger)
	case nethttp.MethodPost:
		m, err := h.svc.Generate(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, newMatchupResponse(m), h.logger)
	case nethttp.MethodDelete:
		h.svc.Reset(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// Regenerate reshuffles the last generation's players into new teams.
func (h *Handler) Regenerate(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	m, err := h.svc.Regenerate(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, newMatchupResponse(m), h.logger)
}

// MovePlayer moves a player between the session teams.
func (h *Handler) MovePlayer(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	var req moveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if strings.TrimSpace(req.PlayerID) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "playerId required", h.logger)
		return
	}

	var position *players.Position
	if strings.TrimSpace(req.Position) != "" {
		pos, err := players.ParsePosition(req.Position)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		position = &pos
	}

	to := teams.ID(strings.ToUpper(strings.TrimSpace(req.ToTeam)))
	m, err := h.svc.Move(r.Context(), req.PlayerID, to, position)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, newMatchupResponse(m), h.logger)
}
