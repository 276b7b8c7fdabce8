package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// questionLatency measures question handling time.
	// Labels: outcome (answered, not_found, error)
	questionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gitaqa",
		Subsystem: "server",
		Name:      "question_latency_seconds",
		Help:      "Question handling latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"outcome"})

	// questionConfidence tracks the distribution of answer confidence.
	questionConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gitaqa",
		Subsystem: "server",
		Name:      "answer_confidence",
		Help:      "Distribution of answer confidence scores",
		Buckets:   []float64{0.1, 0.2, 0.3, 0.5, 0.7, 0.8, 0.9, 1.0},
	})

	// corpusDocuments reports how many documents were indexed at startup.
	corpusDocuments = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gitaqa",
		Subsystem: "corpus",
		Name:      "documents",
		Help:      "Number of indexed corpus documents",
	})

	// corpusVerses reports how many verses were indexed at startup.
	corpusVerses = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gitaqa",
		Subsystem: "corpus",
		Name:      "verses",
		Help:      "Number of indexed verses",
	})
)
