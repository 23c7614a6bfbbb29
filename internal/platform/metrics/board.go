// Package metrics exposes board activity as Prometheus collectors.
//
// Collectors are served by the /-/metrics endpoint next to the Go runtime
// and process metrics registered by client_golang.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quoteboard/internal/ports"
)

const namespace = "quoteboard"

// Board implements ports.BoardMetrics with Prometheus collectors.
type Board struct {
	loads    *prometheus.CounterVec
	submits  *prometheus.CounterVec
	shown    prometheus.Gauge
	inFlight prometheus.Gauge
}

var _ ports.BoardMetrics = (*Board)(nil)

// NewBoard registers the board collectors with reg. A nil reg uses the
// default registerer. Registering twice on the same registry panics.
func NewBoard(reg prometheus.Registerer) *Board {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Board{
		loads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loads_total",
			Help:      "Quote list fetches by age filter and outcome.",
		}, []string{"max_age_days", "outcome"}),
		submits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submits_total",
			Help:      "Quote submissions by result.",
		}, []string{"result"}),
		shown: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "quotes_shown",
			Help:      "Quotes currently held by the board.",
		}),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loads_in_flight",
			Help:      "Outstanding quote list fetches.",
		}),
	}
}

// LoadFinished counts a completed list fetch.
func (b *Board) LoadFinished(maxAgeDays int, outcome string) {
	b.loads.WithLabelValues(strconv.Itoa(maxAgeDays), outcome).Inc()
}

// SubmitFinished counts a completed create call.
func (b *Board) SubmitFinished(success bool) {
	result := "failure"
	if success {
		result = "success"
	}

	b.submits.WithLabelValues(result).Inc()
}

func (b *Board) QuotesShown(n int) {
	b.shown.Set(float64(n))
}

func (b *Board) LoadsInFlight(n int) {
	b.inFlight.Set(float64(n))
}
