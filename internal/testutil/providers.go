package testutil

import (
	"context"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/roster"
)

// GoodProvider returns the provided roster with no error.
type GoodProvider struct {
	Players []players.Player
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	out := make([]players.Player, len(p.Players))
	copy(out, p.Players)
	return out, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return nil, roster.ErrProviderUnavailable
}
