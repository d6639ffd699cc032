package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/internal/config"
	"github.com/katalvlaran/shortpath/johnson"
	"github.com/katalvlaran/shortpath/weight"
)

// graphFlags are the generator overrides shared by johnson and verify.
type graphFlags struct {
	vertices    int
	probability float64
	seed        int64
}

func (f *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.vertices, "vertices", "n", 0, "number of vertices (overrides graph.vertices)")
	cmd.Flags().Float64VarP(&f.probability, "probability", "p", 0, "edge probability (overrides graph.edge_probability)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "generator seed (overrides graph.seed)")
}

// apply copies every flag the user set into cfg.
func (f *graphFlags) apply(cmd *cobra.Command, cfg *config.GraphConfig) {
	if cmd.Flags().Changed("vertices") {
		cfg.Vertices = f.vertices
	}
	if cmd.Flags().Changed("probability") {
		cfg.EdgeProbability = f.probability
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
}

// generate builds the feasible random digraph described by cfg with the given seed.
func generate(cfg config.GraphConfig, seed int64) (*builder.Graph, error) {
	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
			builder.WithPotentialRange(cfg.MaxPotential),
			builder.WithIDScheme(builder.SymbolNumberIDFn("v")),
		},
		builder.RandomFeasible(cfg.Vertices, cfg.EdgeProbability))
}

// johnsonCommand creates the "johnson" command.
func (c *CLI) johnsonCommand() *cobra.Command {
	var (
		gf          graphFlags
		parallelism int
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "johnson",
		Short: "Compute all-pairs shortest paths on a random feasible digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *c.cfg
			gf.apply(cmd, &cfg.Graph)
			if cmd.Flags().Changed("parallelism") {
				cfg.Johnson.Parallelism = parallelism
			}
			if cmd.Flags().Changed("limit") {
				cfg.Output.Limit = limit
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			g, err := generate(cfg.Graph, cfg.Graph.Seed)
			if err != nil {
				return err
			}
			logger.Debug("graph generated", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "seed", cfg.Graph.Seed)

			prog := newProgress(logger)
			res, err := johnson.AllPairs(g, weight.Int64(), johnson.UUIDVertex("johnson-"),
				johnson.WithParallelism(cfg.Johnson.Parallelism),
				johnson.WithLogger(logger))
			if err != nil {
				return err
			}
			prog.done("all-pairs computed", "pairs", len(res), "parallelism", cfg.Johnson.Parallelism)

			out := cmd.OutOrStdout()
			printTitle(out, "Johnson: %d vertices, %d edges, %d reachable pairs",
				g.VertexCount(), g.EdgeCount(), len(res))
			fmt.Fprintln(out, renderResults(res, cfg.Output.Limit))
			if cfg.Output.Limit > 0 && len(res) > cfg.Output.Limit {
				fmt.Fprintf(out, "… %d more\n", len(res)-cfg.Output.Limit)
			}

			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().IntVar(&parallelism, "parallelism", 0, "concurrent Dijkstra runs (overrides johnson.parallelism)")
	cmd.Flags().IntVar(&limit, "limit", 0, "rows to print, 0 for all (overrides output.limit)")

	return cmd
}
