package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "steeze_router_http_response_seconds",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.05, 0.25, 1, 5, 30},
		},
	)

	totalHttpRequestsFromRole = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "steeze_router_http_requests_by_role_total", Help: "http requests from role"},
		[]string{"role"},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "steeze_router_http_requests_by_uri_total", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "steeze_router_http_requests_total", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "steeze_router_dispatch_total", Help: "dispatches by operation, scheme, resolved module and outcome"},
		[]string{"op", "scheme", "module", "outcome"},
	)

	descentHops = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steeze_router_descent_hops",
			Help:    "nested hops taken while resolving a URL.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 32},
		},
		[]string{"scheme"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsFromRole,
		totalHttpRequestsToUri,
		totalHttpRequests,
		dispatchTotal,
		descentHops,
	)
}
