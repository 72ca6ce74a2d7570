package registry

import "github.com/prometheus/client_golang/prometheus"

var registryRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mlmcompare",
		Subsystem: "registry",
		Name:      "requests_total",
		Help:      "Model hub listing requests by outcome",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(registryRequests)
}
