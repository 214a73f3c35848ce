// Package cli implements the squadctl command line for balancing a roster offline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/roster"
	"squad-maker-service/internal/roster/file"
	"squad-maker-service/internal/roster/fixture"
)

// NewRootCmd builds the squadctl command tree.
func NewRootCmd() *cobra.Command {
	var rosterPath string

	root := &cobra.Command{
		Use:   "squadctl",
		Short: "Split a football roster into two balanced teams",
		Long: `squadctl loads a roster (the built-in club list, or a JSON file)
and splits the chosen players into Team A and Team B with even sizes,
even positions and close average ratings.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&rosterPath, "roster", "r", "", "roster JSON file (default is the built-in club roster)")

	load := func(ctx context.Context) ([]players.Player, error) {
		return loadRoster(ctx, rosterPath)
	}
	root.AddCommand(newRosterCmd(load))
	root.AddCommand(newBalanceCmd(load))
	return root
}

type rosterLoader func(ctx context.Context) ([]players.Player, error)

func loadRoster(ctx context.Context, path string) ([]players.Player, error) {
	var provider roster.Provider = fixture.New()
	if path != "" {
		provider = file.New(path)
	}
	list, err := provider.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	if err := players.ValidateRoster(list); err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return list, nil
}
