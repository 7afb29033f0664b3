package obs

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// StatementMetrics groups Prometheus collectors for statement rendering.
type StatementMetrics struct {
	RenderedTotal      *prometheus.CounterVec
	LinesTotal         prometheus.Counter
	AmountMinorUnits   prometheus.Histogram
	VolumeCreditsTotal prometheus.Counter
}

// NewStatementMetrics registers and returns statement collectors. Collectors already
// present on reg are reused.
func NewStatementMetrics(namespace string, reg prometheus.Registerer) *StatementMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &StatementMetrics{
		RenderedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_rendered_total",
			Help:      "Count of statement renderings by outcome.",
		}, []string{"result"}),
		LinesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statement_lines_total",
			Help:      "Number of performance lines priced across rendered statements.",
		}),
		AmountMinorUnits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "statement_amount_minor_units",
			Help:      "Distribution of statement totals in minor currency units.",
			Buckets:   []float64{10000, 50000, 100000, 250000, 500000, 1000000, 5000000},
		}),
		VolumeCreditsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "volume_credits_total",
			Help:      "Volume credits awarded across rendered statements.",
		}),
	}
	mustRegisterCollector(reg, m.RenderedTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(*prometheus.CounterVec); ok {
			m.RenderedTotal = v
		}
	})
	mustRegisterCollector(reg, m.LinesTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.LinesTotal = v
		}
	})
	mustRegisterCollector(reg, m.AmountMinorUnits, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Histogram); ok {
			m.AmountMinorUnits = v
		}
	})
	mustRegisterCollector(reg, m.VolumeCreditsTotal, func(existing prometheus.Collector) {
		if v, ok := existing.(prometheus.Counter); ok {
			m.VolumeCreditsTotal = v
		}
	})
	return m
}

// ObserveSuccess records a rendered statement.
func (m *StatementMetrics) ObserveSuccess(lines int, amount int64, credits int) {
	if m == nil {
		return
	}
	m.RenderedTotal.WithLabelValues("ok").Inc()
	m.LinesTotal.Add(float64(lines))
	m.AmountMinorUnits.Observe(float64(amount))
	m.VolumeCreditsTotal.Add(float64(credits))
}

// ObserveFailure records a statement that could not be rendered.
func (m *StatementMetrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.RenderedTotal.WithLabelValues("error").Inc()
}

// WriteTextfile stores a snapshot of gatherer in the Prometheus text format at path,
// for pickup by the node_exporter textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register statement metric: %w", err))
	}
}
