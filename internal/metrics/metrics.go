// Package metrics exposes settlement counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coinledger"

// Collector implements the recorder ports of the ledger, reward, dead-letter
// and worker packages.
type Collector struct {
	registry *prometheus.Registry

	ledgerEntries *prometheus.CounterVec
	ledgerAmount  *prometheus.CounterVec
	rewards       *prometheus.CounterVec
	deadLetters   *prometheus.CounterVec
	jobs          *prometheus.CounterVec
	txRetries     prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.ledgerEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "entries_total",
			Help:      "Committed ledger entries by entry type",
		},
		[]string{"type"},
	)

	c.ledgerAmount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "amount_total",
			Help:      "Committed ledger volume by entry type",
		},
		[]string{"type"},
	)

	c.rewards = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_total",
			Help:      "Reward evaluations by outcome (settled or rejection reason)",
		},
		[]string{"outcome"},
	)

	c.deadLetters = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dead_letters_total",
			Help:      "Bridge failures recorded for manual review",
		},
		[]string{"chain"},
	)

	c.jobs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Queued events handled by the worker",
		},
		[]string{"kind", "outcome"},
	)

	c.txRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retries_total",
			Help:      "Transactions rerun after a storage conflict",
		},
	)

	c.registry.MustRegister(
		c.ledgerEntries,
		c.ledgerAmount,
		c.rewards,
		c.deadLetters,
		c.jobs,
		c.txRetries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) EntryCommitted(entryType string, amount int64) {
	c.ledgerEntries.WithLabelValues(entryType).Inc()
	c.ledgerAmount.WithLabelValues(entryType).Add(float64(amount))
}

func (c *Collector) RewardEvaluated(outcome string) {
	c.rewards.WithLabelValues(outcome).Inc()
}

func (c *Collector) DeadLetterRecorded(chain string) {
	c.deadLetters.WithLabelValues(chain).Inc()
}

func (c *Collector) JobHandled(kind, outcome string) {
	c.jobs.WithLabelValues(kind, outcome).Inc()
}

// TransactionRetried is meant for db.WithRetryHook.
func (c *Collector) TransactionRetried(error) {
	c.txRetries.Inc()
}
