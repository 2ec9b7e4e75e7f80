// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation responses served, by ranking source",
		},
		[]string{"source"},
	)

	RecommendationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_failed_total",
			Help: "Total number of recommendation requests that failed",
		},
		[]string{"error_code"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "recommendation_duration_seconds",
			Help: "Duration of recommendation pipeline runs in seconds",
		},
		[]string{"source"},
	)

	StoreFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_fetch_errors_total",
			Help: "Total number of failed reads against the external store",
		},
		[]string{"store", "operation"},
	)
)

// Ranking sources reported on RecommendationsServed.
const (
	SourcePersonalized = "personalized"
	SourcePopularity   = "popularity"
	SourceEmpty        = "empty"
)
