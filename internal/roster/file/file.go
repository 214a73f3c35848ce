package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"squad-maker-service/internal/domain/players"
)

// Provider reads a JSON array of players from disk on every fetch.
type Provider struct {
	path string
}

// New creates a file provider for the given path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the configured roster file.
func (p *Provider) Path() string {
	return p.path
}

// FetchPlayers decodes the roster file.
func (p *Provider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p == nil || p.path == "" {
		return nil, errors.New("roster file path required")
	}
	f, err := os.Open(p.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var roster []players.Player
	if err := json.NewDecoder(f).Decode(&roster); err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", p.path, err)
	}
	if roster == nil {
		roster = []players.Player{}
	}
	return roster, nil
}
