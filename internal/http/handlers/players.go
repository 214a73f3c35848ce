package handlers

import (
	"errors"
	nethttp "net/http"

	"squad-maker-service/internal/app/squads"
	"squad-maker-service/internal/domain/players"
)

type selectionRequest struct {
	IDs []string `json:"ids"`
}

type guestRequest struct {
	Name      string   `json:"name"`
	Positions []string `json:"positions"`
	Rating    float64  `json:"rating"`
}

// Players lists the roster with selection flags.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.Players(), h.logger)
}

// Selection replaces the selected players.
func (h *Handler) Selection(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	var req selectionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	roster, err := h.svc.Select(r.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, squads.ErrUnknownPlayer) {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, roster, h.logger)
}

// Guests adds a session-only guest player.
func (h *Handler) Guests(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	var req guestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	positions := make([]players.Position, 0, len(req.Positions))
	for _, raw := range req.Positions {
		pos, err := players.ParsePosition(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		positions = append(positions, pos)
	}
	guest, err := h.svc.AddGuest(r.Context(), req.Name, positions, req.Rating)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusCreated, guest, h.logger)
}
