package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"squad-maker-service/internal/balancer"
	"squad-maker-service/internal/domain/players"
	"squad-maker-service/internal/selection"
)

// ErrUnknownPlayer is returned when --ids names a player missing from the roster.
var ErrUnknownPlayer = errors.New("unknown player")

type balanceOptions struct {
	ids     []string
	shuffle bool
	seed    int64
}

func newBalanceCmd(load rosterLoader) *cobra.Command {
	var opts balanceOptions

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Split players into two balanced teams",
		Long: `Balance the selected players (every roster player when --ids is not given)
into Team A and Team B. --shuffle randomises the input order first, which
changes how equally rated players are split.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := load(cmd.Context())
			if err != nil {
				return err
			}
			pool, err := pick(list, opts.ids)
			if err != nil {
				return err
			}
			if opts.shuffle {
				seed := opts.seed
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				pool = balancer.Shuffle(pool, rand.New(rand.NewSource(seed)))
			}

			a, b, err := balancer.Balance(pool)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMatchup(a, b))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opts.ids, "ids", nil, "player ids to balance (default all)")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "shuffle the players before balancing")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for --shuffle (default random)")
	return cmd
}

// pick returns the players named by ids in roster order, or the whole roster when ids is empty.
func pick(list []players.Player, ids []string) ([]players.Player, error) {
	if len(ids) == 0 {
		return list, nil
	}
	known := make(map[string]struct{}, len(list))
	for _, p := range list {
		known[p.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
		}
	}
	return selection.Selected(selection.Apply(list, ids)), nil
}
