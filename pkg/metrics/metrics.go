package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RPC transport, partitioned by service + method.

var (
	RPCCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "rpc",
		Name:      "calls_total",
		Help:      "Total webrpc calls by outcome (ok or error kind)",
	}, []string{"service", "method", "outcome"})

	RPCCallLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "rpc",
		Name:      "call_duration_seconds",
		Help:      "Webrpc call duration",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"service", "method"})

	RPCStreamFrames = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "rpc",
		Name:      "stream_frames_total",
		Help:      "Total NDJSON frames received on server streams",
	}, []string{"service", "method"})
)

// Inventory reconciliation.

var (
	InventoryPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "inventory",
		Name:      "pages_served_total",
		Help:      "Inventory pages served by reconciliation phase",
	}, []string{"phase"})

	InventoryDrainPages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "inventory",
		Name:      "indexer_drain_pages_total",
		Help:      "Indexer balance pages fetched while draining",
	})

	InventoryStates = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "marketplace_sdk",
		Subsystem: "inventory",
		Name:      "states",
		Help:      "Inventory states currently held by the store",
	})
)

// Cache.

var CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "marketplace_sdk",
	Subsystem: "cache",
	Name:      "lookups_total",
	Help:      "Memo cache lookups by backend and result",
}, []string{"backend", "result"})
