package inference

import "github.com/prometheus/client_golang/prometheus"

var (
	resolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlmcompare",
			Subsystem: "inference",
			Name:      "resolutions_total",
			Help:      "Pipeline resolutions by source (disk, hub) and outcome",
		},
		[]string{"source", "outcome"},
	)

	fillMaskDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mlmcompare",
			Subsystem: "inference",
			Name:      "fill_mask_duration_seconds",
			Help:      "Duration of fill-mask calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(resolutionsTotal, fillMaskDuration)
}
