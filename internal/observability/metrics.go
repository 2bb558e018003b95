package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreatedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fastlane", Name: "reservations_created_total", Help: "Total number of reservations created"})
	ReservationsCanceledTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fastlane", Name: "reservations_canceled_total", Help: "Total number of reservations canceled"})
	ReservationConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "fastlane", Name: "reservation_conflicts_total", Help: "Reservation attempts refused because the vehicle was taken"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "fastlane", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fastlane",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
