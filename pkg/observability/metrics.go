package observability

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/schemargs"
	"github.com/aretw0/schemargs/pkg/args"
	"github.com/aretw0/schemargs/pkg/diag"
)

const namespace = "schemargs"

// Metrics holds the collectors fed by parser hooks.
type Metrics struct {
	Diagnostics *prometheus.CounterVec
	Occurrences *prometheus.CounterVec
	ListItems   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered under the same names are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "diagnostics_total",
				Help:      "Total number of diagnostics reported while parsing",
			},
			[]string{"stage", "code"},
		),
		Occurrences: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "occurrences_total",
				Help:      "Total number of flag occurrences applied to a slot",
			},
			[]string{"kind", "valued"},
		),
		ListItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "list_items_total",
				Help:      "Total number of items appended to list flags",
			},
			[]string{"kind"},
		),
	}

	if reg == nil {
		return m, nil
	}

	var err error
	if m.Diagnostics, err = register(reg, m.Diagnostics); err != nil {
		return nil, err
	}
	if m.Occurrences, err = register(reg, m.Occurrences); err != nil {
		return nil, err
	}
	if m.ListItems, err = register(reg, m.ListItems); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// ObserveDiagnostic records one diagnostic.
func (m *Metrics) ObserveDiagnostic(d diag.Diagnostic) {
	m.Diagnostics.WithLabelValues(string(d.Stage), string(d.Code)).Inc()
}

// ObserveApply records one applied occurrence.
func (m *Metrics) ObserveApply(e args.ApplyEvent) {
	m.Occurrences.WithLabelValues(e.Kind.String(), strconv.FormatBool(e.Valued)).Inc()
	if e.Appended > 0 {
		m.ListItems.WithLabelValues(e.Kind.String()).Add(float64(e.Appended))
	}
}

// Hooks returns parser hooks wired to these metrics.
func (m *Metrics) Hooks() schemargs.Hooks {
	return schemargs.Hooks{
		OnDiagnostic: m.ObserveDiagnostic,
		OnApply:      m.ObserveApply,
	}
}
