// Package runner executes one search with the algorithm a job selects,
// counts expansions and IDA* iterations through the search hooks, and
// records the outcome in the metrics package.
package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlsearch/astar"
	"github.com/katalvlaran/lvlsearch/core"
	"github.com/katalvlaran/lvlsearch/idastar"
	"github.com/katalvlaran/lvlsearch/internal/config"
	"github.com/katalvlaran/lvlsearch/internal/metrics"
)

// ErrUnknownAlgorithm indicates a Spec naming neither astar nor idastar.
var ErrUnknownAlgorithm = errors.New("runner: unknown algorithm")

// Spec selects the algorithm for one run. Kind only labels metrics.
type Spec struct {
	Kind       string
	Algorithm  string
	Membership string
}

// SpecFor returns the Spec of a configured job.
func SpecFor(j config.Job) Spec {
	return Spec{Kind: j.Kind, Algorithm: j.Algorithm, Membership: j.Membership}
}

// Result is the outcome of a single search.
type Result[N any] struct {
	Path       []N
	Cost       int
	Found      bool
	Expanded   int
	Iterations int // IDA* bounds tried; 0 for astar
	Duration   time.Duration
}

// Run searches g from start. An unreachable goal is reported as
// Found == false with a nil error for both algorithms.
func Run[N any](s Spec, g core.Graph[N], id core.Identity[N], start N) (Result[N], error) {
	var (
		res  Result[N]
		err  error
		path []N
		cost int
	)
	onExpand := func(N) { res.Expanded++ }

	began := time.Now()
	switch s.Algorithm {
	case config.AlgorithmAStar:
		path, cost, err = astar.Search(g, id, start, astar.WithOnExpand(onExpand))
	case config.AlgorithmIDAStar:
		membership := idastar.PathSet
		if s.Membership == config.MembershipLinearScan {
			membership = idastar.LinearScan
		}
		path, cost, err = idastar.Search(g, id, start,
			idastar.WithPathMembership[N](membership),
			idastar.WithOnIteration[N](func(int) { res.Iterations++ }),
			idastar.WithOnExpand(onExpand),
		)
		if errors.Is(err, idastar.ErrNoPath) {
			err = nil
		}
	default:
		return res, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.Algorithm)
	}
	res.Duration = time.Since(began)

	outcome := metrics.OutcomeFound
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case cost == core.NoPath:
		outcome = metrics.OutcomeNoPath
	}
	record(s, outcome, res)
	if err != nil {
		return res, err
	}

	res.Path, res.Cost, res.Found = path, cost, cost != core.NoPath

	return res, nil
}

func record[N any](s Spec, outcome string, res Result[N]) {
	metrics.SearchesTotal.WithLabelValues(s.Kind, s.Algorithm, outcome).Inc()
	metrics.NodesExpanded.WithLabelValues(s.Algorithm).Add(float64(res.Expanded))
	metrics.SearchDuration.WithLabelValues(s.Algorithm).Observe(float64(res.Duration.Microseconds()) / 1000)
	if s.Algorithm == config.AlgorithmIDAStar {
		metrics.IDAStarIterations.Observe(float64(res.Iterations))
	}
}
