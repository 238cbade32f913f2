package runner_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/adjacency"
	"github.com/katalvlaran/lvlsearch/internal/config"
	"github.com/katalvlaran/lvlsearch/internal/metrics"
	"github.com/katalvlaran/lvlsearch/internal/runner"
)

// diamond: S→A→G costs 4, S→B→G costs 5; island I is disconnected.
func diamond(t *testing.T) *adjacency.Graph {
	t.Helper()
	g, err := adjacency.New("G")
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "G", 3))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("B", "G", 4))
	require.NoError(t, g.AddVertex("I"))

	return g
}

func TestRun_Found(t *testing.T) {
	g := diamond(t)
	for _, s := range []runner.Spec{
		{Kind: "test", Algorithm: config.AlgorithmAStar},
		{Kind: "test", Algorithm: config.AlgorithmIDAStar, Membership: config.MembershipPathSet},
		{Kind: "test", Algorithm: config.AlgorithmIDAStar, Membership: config.MembershipLinearScan},
	} {
		t.Run(s.Algorithm+"/"+s.Membership, func(t *testing.T) {
			found := metrics.SearchesTotal.WithLabelValues("test", s.Algorithm, metrics.OutcomeFound)
			before := testutil.ToFloat64(found)

			res, err := runner.Run(s, g, g.Identity(), "S")
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, 4, res.Cost)
			assert.Equal(t, []string{"S", "A", "G"}, res.Path)
			assert.Positive(t, res.Expanded)
			if s.Algorithm == config.AlgorithmIDAStar {
				assert.Positive(t, res.Iterations)
			} else {
				assert.Zero(t, res.Iterations)
			}
			assert.Equal(t, before+1, testutil.ToFloat64(found))
		})
	}
}

func TestRun_NoPath(t *testing.T) {
	g := diamond(t)
	for _, alg := range []string{config.AlgorithmAStar, config.AlgorithmIDAStar} {
		t.Run(alg, func(t *testing.T) {
			noPath := metrics.SearchesTotal.WithLabelValues("test", alg, metrics.OutcomeNoPath)
			before := testutil.ToFloat64(noPath)

			res, err := runner.Run(runner.Spec{Kind: "test", Algorithm: alg}, g, g.Identity(), "I")
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Empty(t, res.Path)
			assert.Equal(t, before+1, testutil.ToFloat64(noPath))
		})
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := diamond(t)
	_, err := runner.Run(runner.Spec{Algorithm: "bfs"}, g, g.Identity(), "S")
	assert.ErrorIs(t, err, runner.ErrUnknownAlgorithm)
}

func TestSpecFor(t *testing.T) {
	j := config.Job{Name: "x", Kind: config.KindHill, Algorithm: config.AlgorithmIDAStar, Membership: config.MembershipLinearScan}
	assert.Equal(t, runner.Spec{Kind: config.KindHill, Algorithm: config.AlgorithmIDAStar, Membership: config.MembershipLinearScan}, runner.SpecFor(j))
}
