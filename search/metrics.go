package search

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultIndexed = "indexed"
	resultFailed  = "failed"
	resultSkipped = "skipped"
	resultOK      = "ok"
)

var (
	indexedDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poi",
			Subsystem: "search",
			Name:      "indexed_documents_total",
			Help:      "POI documents sent to the search index, by outcome",
		},
		[]string{"result"},
	)

	searchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "poi",
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Hybrid search queries, by outcome",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(indexedDocuments)
	prometheus.MustRegister(searchRequests)
}
