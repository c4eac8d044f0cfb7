// Package metrics holds the prometheus counters the injector updates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "levelup"

// Injection counts documents written and skipped per family and mode, and
// keys removed by clears and full resets.
type Injection struct {
	Written *prometheus.CounterVec
	Skipped *prometheus.CounterVec
	Cleared prometheus.Counter
}

// NewInjection registers the injection counters with reg. A nil reg gives
// unregistered counters.
func NewInjection(reg prometheus.Registerer) *Injection {
	f := promauto.With(reg)
	return &Injection{
		Written: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inject",
				Name:      "documents_written_total",
				Help:      "Documents written to the store.",
			},
			[]string{"family", "mode"},
		),
		Skipped: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inject",
				Name:      "documents_skipped_total",
				Help:      "Documents left untouched because their key or id already existed.",
			},
			[]string{"family", "mode"},
		),
		Cleared: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "inject",
				Name:      "keys_cleared_total",
				Help:      "App keys removed from the store.",
			},
		),
	}
}

// Discard returns counters that are not registered anywhere.
func Discard() *Injection { return NewInjection(nil) }

func (m *Injection) AddWritten(family, mode string, n int) {
	if n > 0 {
		m.Written.WithLabelValues(family, mode).Add(float64(n))
	}
}

func (m *Injection) AddSkipped(family, mode string, n int) {
	if n > 0 {
		m.Skipped.WithLabelValues(family, mode).Add(float64(n))
	}
}

func (m *Injection) AddCleared(n int) {
	if n > 0 {
		m.Cleared.Add(float64(n))
	}
}
