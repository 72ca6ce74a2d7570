package compare

import "github.com/prometheus/client_golang/prometheus"

var (
	stepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlmcompare",
			Subsystem: "step",
			Name:      "runs_total",
			Help:      "Inference-and-render computations by outcome (ok, busy, error)",
		},
		[]string{"outcome"},
	)

	stepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mlmcompare",
			Subsystem: "step",
			Name:      "duration_seconds",
			Help:      "Duration of uncached inference-and-render computations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	comparisons = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlmcompare",
			Subsystem: "compare",
			Name:      "runs_total",
			Help:      "Comparisons by outcome (ok, partial, failed, rejected)",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(stepRuns, stepDuration, comparisons)
}
