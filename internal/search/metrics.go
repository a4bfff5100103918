package search

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqhunter",
			Name:      "searches_total",
			Help:      "Total number of search invocations",
		},
		[]string{"strategy", "outcome"},
	)

	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "faqhunter",
			Name:      "search_duration_seconds",
			Help:      "Search invocation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"strategy"},
	)

	candidatesDenied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "faqhunter",
			Name:      "candidates_denied_total",
			Help:      "Candidates dropped by the access filter",
		},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchDuration)
	prometheus.MustRegister(candidatesDenied)
}

const (
	outcomeRedirect = "redirect"
	outcomeListing  = "listing"
	outcomeEmpty    = "empty"
	outcomeError    = "error"
)
