package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlsearch_searches_total",
		Help: "Total number of searches run, labelled by kind, algorithm and outcome.",
	}, []string{"kind", "algorithm", "outcome"})

	NodesExpanded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlsearch_nodes_expanded_total",
		Help: "Total number of nodes whose successors were enumerated, labelled by algorithm.",
	}, []string{"algorithm"})

	IDAStarIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvlsearch_idastar_iterations",
		Help:    "Bound increases per IDA* search.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
	})

	SearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lvlsearch_search_duration_ms",
		Help:    "Search wall time in milliseconds, labelled by algorithm.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000},
	}, []string{"algorithm"})

	JobFileReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvlsearch_job_file_reloads_total",
		Help: "Job file reloads, labelled by status.",
	}, []string{"status"})
)
