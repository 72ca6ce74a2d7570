package memo

import "github.com/prometheus/client_golang/prometheus"

var (
	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlmcompare",
			Subsystem: "memo",
			Name:      "lookups_total",
			Help:      "Memo cache lookups by result (hit, miss, shared)",
		},
		[]string{"cache", "result"},
	)

	cacheEvictions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mlmcompare",
			Subsystem: "memo",
			Name:      "evictions_total",
			Help:      "Entries dropped by the eviction policy",
		},
		[]string{"cache"},
	)

	cacheEntries = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mlmcompare",
			Subsystem: "memo",
			Name:      "entries",
			Help:      "Entries currently stored",
		},
		[]string{"cache"},
	)
)

func init() {
	prometheus.MustRegister(cacheLookups, cacheEvictions, cacheEntries)
}
