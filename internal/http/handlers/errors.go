package handlers

import (
	"errors"
	"net/http"

	"squad-maker-service/internal/app/squads"
	"squad-maker-service/internal/balancer"
	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/domain/teams"
	"squad-maker-service/internal/store"
)

// statusForError maps domain errors to HTTP statuses and client-facing messages.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, balancer.ErrInsufficientPlayers):
		return http.StatusUnprocessableEntity, "insufficient players"
	case errors.Is(err, squads.ErrNoTeams):
		return http.StatusNotFound, "no teams generated"
	case errors.Is(err, squads.ErrUnknownPlayer), errors.Is(err, teams.ErrPlayerNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, squads.ErrUnknownTeam),
		errors.Is(err, teams.ErrInvalidPosition),
		errors.Is(err, players.ErrInvalidPlayer):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrDuplicatePlayer):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}
