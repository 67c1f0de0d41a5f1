package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are the server's Prometheus collectors.
type metrics struct {
	requests     *prometheus.CounterVec
	foldDuration prometheus.Histogram
	foldLength   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nussinov",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		foldDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nussinov",
			Name:      "fold_duration_seconds",
			Help:      "Time spent folding a single sequence.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		foldLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nussinov",
			Name:      "fold_sequence_length",
			Help:      "Length of the folded sequences.",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}),
	}
}
