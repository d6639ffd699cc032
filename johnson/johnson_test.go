// Package johnson_test exercises AllPairs end to end: the reference
// four-vertex scenarios, validation, cross-checks against Bellman-Ford on
// generated graphs and the parallel fan-out.
package johnson_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortpath/bellmanford"
	"github.com/katalvlaran/shortpath/builder"
	"github.com/katalvlaran/shortpath/core"
	"github.com/katalvlaran/shortpath/johnson"
	"github.com/katalvlaran/shortpath/weight"
)

// ChainSuite runs against A→B(−2), B→C(−1), C→D(2), A→D(10).
type ChainSuite struct {
	suite.Suite
	g   *core.Graph[string, int64]
	ops weight.Ops[int64]
	gen func() string
}

func (s *ChainSuite) SetupTest() {
	s.ops = weight.Int64()
	s.gen = johnson.UUIDVertex("q-")
	s.g = core.NewGraph[string, int64]()
	s.Require().NoError(s.g.AddEdge("A", "B", -2))
	s.Require().NoError(s.g.AddEdge("B", "C", -1))
	s.Require().NoError(s.g.AddEdge("C", "D", 2))
	s.Require().NoError(s.g.AddEdge("A", "D", 10))
}

func (s *ChainSuite) TestDistanceAD() {
	res, err := johnson.AllPairs(s.g, s.ops, s.gen)
	s.Require().NoError(err)

	r, ok := res.Lookup("A", "D")
	s.Require().True(ok)
	s.Equal(int64(-1), r.Distance)
	s.Equal([]string{"A", "B", "C", "D"}, r.Path)
}

func (s *ChainSuite) TestAllResultsOrdered() {
	res, err := johnson.AllPairs(s.g, s.ops, s.gen)
	s.Require().NoError(err)

	type pair struct {
		s, t string
		d    int64
	}
	want := []pair{
		{"A", "A", 0}, {"A", "B", -2}, {"A", "C", -3}, {"A", "D", -1},
		{"B", "B", 0}, {"B", "C", -1}, {"B", "D", 1},
		{"C", "C", 0}, {"C", "D", 2},
		{"D", "D", 0},
	}
	got := make([]pair, 0, len(res))
	for _, r := range res {
		got = append(got, pair{r.Source, r.Target, r.Distance})
	}
	s.Equal(want, got)

	self, ok := res.Lookup("C", "C")
	s.Require().True(ok)
	s.Equal([]string{"C"}, self.Path)

	_, ok = res.Lookup("D", "A")
	s.False(ok, "unreachable pairs are omitted")
	_, ok = res.Lookup("X", "A")
	s.False(ok)
}

func (s *ChainSuite) TestNegativeCycleFails() {
	s.Require().NoError(s.g.AddEdge("D", "A", -5))

	res, err := johnson.AllPairs(s.g, s.ops, s.gen)
	s.Nil(res)
	s.ErrorIs(err, johnson.ErrNegativeCycle)
	s.ErrorIs(err, bellmanford.ErrNegativeCycle)
}

func (s *ChainSuite) TestInputUntouched() {
	before := s.g.Edges()
	_, err := johnson.AllPairs(s.g, s.ops, s.gen)
	s.Require().NoError(err)
	s.Equal(before, s.g.Edges())
	s.Equal(4, s.g.VertexCount())
}

func (s *ChainSuite) TestVertexCollision() {
	_, err := johnson.AllPairs(s.g, s.ops, func() string { return "B" })
	s.ErrorIs(err, johnson.ErrVertexCollision)
}

func (s *ChainSuite) TestDistancesMap() {
	res, err := johnson.AllPairs(s.g, s.ops, s.gen)
	s.Require().NoError(err)

	d := res.Distances()
	s.Equal(map[string]int64{"A": 0, "B": -2, "C": -3, "D": -1}, d["A"])
	s.Equal(map[string]int64{"D": 0}, d["D"])
}

func (s *ChainSuite) TestLogger() {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := johnson.AllPairs(s.g, s.ops, s.gen, johnson.WithLogger(logger))
	s.Require().NoError(err)
	s.Contains(buf.String(), "johnson potentials computed")
	s.Contains(buf.String(), "johnson all-pairs finished")
}

func TestChainSuite(t *testing.T) {
	suite.Run(t, new(ChainSuite))
}

func TestAllPairs_Validation(t *testing.T) {
	ops := weight.Int64()
	gen := johnson.UUIDVertex("")
	g := core.NewGraph[string, int64]()

	_, err := johnson.AllPairs(nil, ops, gen)
	assert.ErrorIs(t, err, johnson.ErrNilGraph)

	_, err = johnson.AllPairs(g, nil, gen)
	assert.ErrorIs(t, err, johnson.ErrNilOps)

	_, err = johnson.AllPairs(g, ops, nil)
	assert.ErrorIs(t, err, johnson.ErrNilGenerator)

	assert.Panics(t, func() { johnson.WithParallelism(0) })
	assert.Panics(t, func() { johnson.WithLogger(nil) })
}

func TestAllPairs_EmptyGraph(t *testing.T) {
	res, err := johnson.AllPairs(core.NewGraph[string, int64](), weight.Int64(), johnson.UUIDVertex("q"))
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestAllPairs_IntVertices(t *testing.T) {
	g := core.NewGraph[int, float64]()
	require.NoError(t, g.AddEdge(1, 2, 1.5))
	require.NoError(t, g.AddEdge(2, 3, -0.5))
	require.NoError(t, g.AddEdge(1, 3, 2))

	res, err := johnson.AllPairs(g, weight.Float64(), func() int { return -1 })
	require.NoError(t, err)

	r, ok := res.Lookup(1, 3)
	require.True(t, ok)
	assert.InDelta(t, 1.0, r.Distance, 1e-12)
	assert.Equal(t, []int{1, 2, 3}, r.Path)
}

func TestUUIDVertex(t *testing.T) {
	gen := johnson.UUIDVertex("synthetic-")
	a, b := gen(), gen()
	assert.True(t, strings.HasPrefix(a, "synthetic-"))
	assert.Len(t, a, len("synthetic-")+36)
	assert.NotEqual(t, a, b)
}

// feasibleGraph builds a seeded random digraph with negative edges and no
// negative cycle.
func feasibleGraph(t *testing.T, seed int64, n int, p float64) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightRange(0, 9),
			builder.WithPotentialRange(15),
		},
		builder.RandomFeasible(n, p))
	require.NoError(t, err)

	return g
}

func TestAllPairs_MatchesBellmanFord(t *testing.T) {
	ops := weight.Int64()

	for seed := int64(1); seed <= 8; seed++ {
		g := feasibleGraph(t, seed, 18, 0.15)
		res, err := johnson.AllPairs(g, ops, johnson.UUIDVertex("q-"))
		require.NoError(t, err)

		got := res.Distances()
		for _, src := range g.Vertices() {
			tree, err := bellmanford.Run(g, ops, src)
			require.NoError(t, err)

			for _, dst := range g.Vertices() {
				d, reached := got[src][dst]
				if !tree.Reached(dst) {
					assert.False(t, reached, "seed %d: %s→%s should be omitted", seed, src, dst)
					continue
				}
				require.True(t, reached, "seed %d: %s→%s missing", seed, src, dst)
				assert.Equal(t, tree.Dist[dst], d, "seed %d: %s→%s", seed, src, dst)
			}
		}

		// Every path is a real path whose weight is the reported distance.
		for _, r := range res {
			sum := ops.Zero()
			for i := 1; i < len(r.Path); i++ {
				w, ok := g.Weight(r.Path[i-1], r.Path[i])
				require.True(t, ok)
				sum = ops.Sum(sum, w)
			}
			assert.Equal(t, r.Distance, sum)
			assert.Equal(t, r.Source, r.Path[0])
			assert.Equal(t, r.Target, r.Path[len(r.Path)-1])
		}
	}
}

func TestAllPairs_ParallelEqualsSequential(t *testing.T) {
	g := feasibleGraph(t, 11, 40, 0.1)
	ops := weight.Int64()

	seq, err := johnson.AllPairs(g, ops, johnson.UUIDVertex("q-"))
	require.NoError(t, err)
	par, err := johnson.AllPairs(g, ops, johnson.UUIDVertex("q-"), johnson.WithParallelism(8))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestAllPairs_GeneratedNegativeCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithWeightRange(0, 4)},
		builder.NegativeCycle(5))
	require.NoError(t, err)

	_, err = johnson.AllPairs(g, weight.Int64(), johnson.UUIDVertex("q-"), johnson.WithParallelism(4))
	assert.ErrorIs(t, err, johnson.ErrNegativeCycle)
}
