package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRosterCmd(load rosterLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List the players in the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range list {
				positions := make([]string, len(p.Positions))
				for i, pos := range p.Positions {
					positions[i] = string(pos)
				}
				fmt.Fprintf(out, "%-4s %-24s %4.1f  %s\n", p.ID, p.Name, p.Rating, strings.Join(positions, ", "))
			}
			fmt.Fprintf(out, "%d players\n", len(list))
			return nil
		},
	}
}
