package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/johnson"
	"github.com/katalvlaran/shortpath/weight"
)

const defaultCycleVertices = 4

// cycleCommand creates the "cycle" command: Johnson on a ring of total
// weight −1 must fail with a negative-cycle error. With --embed the ring is
// planted next to the configured feasible graph on its own IDs.
func (c *CLI) cycleCommand() *cobra.Command {
	var (
		vertices int
		embed    bool
	)

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Show that a negative cycle is rejected",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ring := builder.ScopedIDs(builder.ExcelColumnIDFn, builder.NegativeCycle(vertices))
			cons := []builder.Constructor{ring}
			if embed {
				cons = []builder.Constructor{
					builder.RandomFeasible(c.cfg.Graph.Vertices, c.cfg.Graph.EdgeProbability),
					ring,
				}
			}

			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{
					builder.WithSeed(c.cfg.Graph.Seed),
					builder.WithWeightRange(c.cfg.Graph.MinWeight, c.cfg.Graph.MaxWeight),
					builder.WithPotentialRange(c.cfg.Graph.MaxPotential),
					builder.WithIDScheme(builder.SymbolNumberIDFn("v")),
				},
				cons...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTitle(out, "Negative cycle over %d vertices", vertices)
			if embed {
				fmt.Fprintf(out, "  embedded in a feasible graph, %d vertices total\n", g.VertexCount())
			} else {
				for _, e := range g.Edges() {
					fmt.Fprintf(out, "  %s → %s  %d\n", e.From, e.To, e.Weight)
				}
			}

			_, err = johnson.AllPairs(g, weight.Int64(), johnson.UUIDVertex("cycle-"),
				johnson.WithLogger(loggerFromContext(cmd.Context())))
			if !errors.Is(err, johnson.ErrNegativeCycle) {
				return fmt.Errorf("expected a negative-cycle error, got %v", err)
			}
			printSuccess(out, "rejected: %v", err)

			return nil
		},
	}

	cmd.Flags().IntVarP(&vertices, "vertices", "n", defaultCycleVertices, "ring length")
	cmd.Flags().BoolVar(&embed, "embed", false, "plant the ring next to a random feasible graph")

	return cmd
}
