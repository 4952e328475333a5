package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsProcessed counts events fully applied to the entity graph
	EventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editions_indexer_events_processed_total",
			Help: "Total number of contract events processed, by event type",
		},
		[]string{"event_type"},
	)

	// EventsSkipped counts events dropped after a semantic anomaly, such
	// as a purchase referencing an unknown auction
	EventsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editions_indexer_events_skipped_total",
			Help: "Total number of contract events skipped, by reason",
		},
		[]string{"reason"},
	)

	// EventsRetried counts events nak'd back to JetStream after a
	// transient store or chain failure
	EventsRetried = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "editions_indexer_events_retried_total",
			Help: "Total number of contract events returned for redelivery",
		},
	)

	// EventsTerminated counts events terminated as unprocessable
	EventsTerminated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "editions_indexer_events_terminated_total",
			Help: "Total number of contract events terminated without processing",
		},
	)

	// LastIndexedBlock tracks the block number of the newest applied event
	LastIndexedBlock = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "editions_indexer_last_indexed_block",
			Help: "Block number of the last event applied to the entity graph",
		},
	)

	// ChainCalls counts contract read calls made while enriching entities
	ChainCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editions_indexer_chain_calls_total",
			Help: "Total number of contract read calls, by method and outcome",
		},
		[]string{"method", "outcome"},
	)
)
