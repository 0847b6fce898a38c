package dnslookup

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	QueriesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnslookup_queries_sent_total",
		Help: "Datagrams transmitted, including retransmissions",
	})

	Timeouts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnslookup_receive_timeouts_total",
		Help: "Receive windows that elapsed without a matching response",
	})

	ResponsesReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnslookup_responses_received_total",
		Help: "Responses accepted after transaction ID matching",
	})

	MalformedResponses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dnslookup_malformed_responses_total",
		Help: "Datagrams dropped because they failed to decode",
	})

	CacheEntries = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dnslookup_cache_entries",
		Help: "Records in the default cache",
	}, func() float64 { return float64(DefaultCache.Entries()) })

	CacheHitRatio = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "dnslookup_cache_hit_ratio",
		Help: "Default cache hit ratio percentage",
	}, func() float64 { return DefaultCache.HitRatio() })
)

// RegisterMetrics registers all resolver metrics with reg.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		QueriesSent,
		Timeouts,
		ResponsesReceived,
		MalformedResponses,
		CacheEntries,
		CacheHitRatio,
	)
}
