package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/johnson"
	"github.com/katalvlaran/shortpath/weight"
)

// errMismatch reports a disagreement between Johnson and Bellman-Ford.
var errMismatch = errors.New("verify: johnson and bellman-ford disagree")

// verifyCommand creates the "verify" command: for every round a fresh graph
// (seed + round) is solved by Johnson and by Bellman-Ford from each source.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		gf     graphFlags
		rounds int
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check Johnson against per-source Bellman-Ford",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *c.cfg
			gf.apply(cmd, &cfg.Graph)
			if cmd.Flags().Changed("rounds") {
				cfg.Verify.Rounds = rounds
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()
			ops := weight.Int64()
			prog := newProgress(logger)

			pairs := 0
			for round := 0; round < cfg.Verify.Rounds; round++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				seed := cfg.Graph.Seed + int64(round)
				g, err := generate(cfg.Graph, seed)
				if err != nil {
					return err
				}

				res, err := johnson.AllPairs(g, ops, johnson.UUIDVertex("verify-"),
					johnson.WithParallelism(cfg.Johnson.Parallelism))
				if err != nil {
					return fmt.Errorf("round %d (seed %d): %w", round, seed, err)
				}
				got := res.Distances()

				for _, src := range g.Vertices() {
					tree, err := bellmanford.Run(g, ops, src)
					if err != nil {
						return fmt.Errorf("round %d (seed %d): %w", round, seed, err)
					}
					for dst, want := range tree.Dist {
						d, ok := got[src][dst]
						if ok != tree.Reached(dst) || (ok && d != want) {
							printFailure(out, "seed %d: %s→%s johnson=%d bellman-ford=%d", seed, src, dst, d, want)
							return fmt.Errorf("%w: seed %d pair %s→%s", errMismatch, seed, src, dst)
						}
					}
				}
				pairs += len(res)
				logger.Debug("round verified", "round", round, "seed", seed, "pairs", len(res))
			}

			prog.done("verification finished", "rounds", cfg.Verify.Rounds)
			printSuccess(out, "%d rounds, %d pairs: Johnson matches Bellman-Ford", cfg.Verify.Rounds, pairs)

			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of generated graphs (overrides verify.rounds)")

	return cmd
}
