package roster

import (
	"context"
	"errors"

	"squad-maker-service/internal/domain/players"
)

// ErrProviderUnavailable is returned when no roster source is configured.
var ErrProviderUnavailable = errors.New("roster provider unavailable")

// Provider loads the club roster. Implementations return fresh slices the caller may keep.
type Provider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]players.Player, error)

// FetchPlayers calls f.
func (f ProviderFunc) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return f(ctx)
}
