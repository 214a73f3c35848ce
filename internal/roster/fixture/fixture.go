package fixture

import (
	"context"

	"squad-maker-service/internal/domain/players"
)

const (
	gk  = players.Goalkeeper
	def = players.Defender
	mid = players.Midfielder
	fwd = players.Forward
)

// Provider returns the built-in club roster, useful for local runs and bootstrapping.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a fresh copy of the club roster.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return Players(), nil
}

// Players returns the club roster in its canonical order.
func Players() []players.Player {
	return []players.Player{
		{ID: "1", Name: "Abrar", Positions: []players.Position{mid, fwd}, Rating: 9.0},
		{ID: "2", Name: "Alvi wasifur", Positions: []players.Position{fwd}, Rating: 9.0},
		{ID: "3", Name: "Faiyad", Positions: []players.Position{gk}, Rating: 8.5},
		{ID: "4", Name: "Rafa", Positions: []players.Position{def, fwd, mid}, Rating: 7.5},
		{ID: "5", Name: "Ishan", Positions: []players.Position{def}, Rating: 7.0},
		{ID: "6", Name: "Jawad", Positions: []players.Position{def}, Rating: 6.5},
		{ID: "7", Name: "Mighty", Positions: []players.Position{fwd}, Rating: 8.0},
		{ID: "8", Name: "Marzan", Positions: []players.Position{def}, Rating: 7.0},
		{ID: "9", Name: "Morshed", Positions: []players.Position{mid, def}, Rating: 7.5},
		{ID: "10", Name: "Fida", Positions: []players.Position{def, mid}, Rating: 6.5},
		{ID: "11", Name: "Pranto", Positions: []players.Position{fwd, mid}, Rating: 8.0},
		{ID: "12", Name: "Qavi", Positions: []players.Position{mid, fwd}, Rating: 7.5},
		{ID: "13", Name: "Ratz Rahat", Positions: []players.Position{mid}, Rating: 8.0},
		{ID: "14", Name: "Rahat fusda", Positions: []players.Position{def, mid, gk}, Rating: 6.0},
		{ID: "15", Name: "Rakib bhai", Positions: []players.Position{fwd, mid}, Rating: 7.5},
		{ID: "16", Name: "Rakib jr", Positions: []players.Position{fwd, def, mid}, Rating: 7.0},
		{ID: "17", Name: "Rimon", Positions: []players.Position{def}, Rating: 7.0},
		{ID: "18", Name: "Rooman", Positions: []players.Position{def, gk}, Rating: 6.5},
		{ID: "19", Name: "Marshall", Positions: []players.Position{gk}, Rating: 8.0},
		{ID: "20", Name: "Shegz", Positions: []players.Position{def, mid}, Rating: 7.5},
		{ID: "21", Name: "Shoaib", Positions: []players.Position{mid}, Rating: 7.0},
		{ID: "22", Name: "Tamjid", Positions: []players.Position{fwd}, Rating: 8.0},
		{ID: "23", Name: "Tanjim", Positions: []players.Position{fwd, mid}, Rating: 7.5},
		{ID: "24", Name: "Wahid", Positions: []players.Position{def}, Rating: 6.5},
		{ID: "25", Name: "Zamil", Positions: []players.Position{fwd, mid, def}, Rating: 7.0},
	}
}
