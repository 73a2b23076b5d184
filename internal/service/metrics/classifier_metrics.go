package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exoscan",
			Subsystem: "classifier",
			Name:      "predictions_total",
			Help:      "Predictions by assigned label",
		},
		[]string{"label"},
	)

	RejectedObservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "exoscan",
			Subsystem: "classifier",
			Name:      "rejected_observations_total",
			Help:      "Observations rejected by validation, per endpoint",
		},
		[]string{"endpoint"},
	)

	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "exoscan",
			Subsystem: "classifier",
			Name:      "batch_size",
			Help:      "Observations per analyze request",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	ClassifyDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "exoscan",
			Subsystem: "classifier",
			Name:      "duration_seconds",
			Help:      "Time spent classifying, per endpoint",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(PredictionsTotal, RejectedObservations, BatchSize, ClassifyDuration)
	})
}
