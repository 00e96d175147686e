package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayPublishRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_gateway_publish_retries_total",
			Help: "Total number of notification publish retry attempts",
		},
		[]string{"topic", "kind", "outcome"},
	)

	GatewayPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notification_gateway_publish_duration_seconds",
			Help:    "Duration of notification publishes including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "kind", "outcome"},
	)
)
