package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	metricSessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "saftz",
		Name:      "sessions_active",
		Help:      "Search sessions currently held in memory.",
	})

	metricSequencesStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "saftz",
		Name:      "sequences_started_total",
		Help:      "Card sequences started, by trigger.",
	}, []string{"trigger"})

	metricCardsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "saftz",
		Name:      "cards_generated_total",
		Help:      "Result cards appended to sessions.",
	})

	metricDocumentsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "saftz",
		Name:      "documents_generated_total",
		Help:      "Document stubs that reached the ready state.",
	})
)

const (
	triggerSubmit   = "submit"
	triggerContinue = "continue"
	triggerResume   = "resume"
)
