// Package metrics exposes Prometheus collectors for solver outcomes.
//
// A nil *Recorder is valid and records nothing, so solvers can be run
// without a registry.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "toggle"

// Outcome labels for the per-machine counters.
const (
	OutcomeSolved      = "solved"
	OutcomeUnreachable = "unreachable"
	OutcomeInfeasible  = "infeasible"
)

// Recorder groups the collectors of one run.
type Recorder struct {
	machines   prometheus.Counter
	indicator  *prometheus.CounterVec
	joltage    *prometheus.CounterVec
	tableSize  prometheus.Histogram
	memoLookup *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		machines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "machines_total",
			Help:      "Machines processed.",
		}),
		indicator: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indicator_results_total",
			Help:      "Indicator queries by outcome.",
		}, []string{"outcome"}),
		joltage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joltage_results_total",
			Help:      "Joltage queries by outcome.",
		}, []string{"outcome"}),
		tableSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "combination_table_entries",
			Help:      "Reachable masks per combination table.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}),
		memoLookup: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joltage_memo_lookups_total",
			Help:      "Joltage memo lookups by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{r.machines, r.indicator, r.joltage, r.tableSize, r.memoLookup} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "metrics: register")
		}
	}
	return r, nil
}

// Machine records one finished machine.
func (r *Recorder) Machine(tableEntries int, indicatorOutcome, joltageOutcome string, hits, misses uint64) {
	if r == nil {
		return
	}
	r.machines.Inc()
	r.tableSize.Observe(float64(tableEntries))
	r.indicator.WithLabelValues(indicatorOutcome).Inc()
	r.joltage.WithLabelValues(joltageOutcome).Inc()
	r.memoLookup.WithLabelValues("hit").Add(float64(hits))
	r.memoLookup.WithLabelValues("miss").Add(float64(misses))
}
