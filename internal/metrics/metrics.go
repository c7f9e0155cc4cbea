package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ledger conta vendas, reservas e transições de status.
// Um *Ledger nil é válido e não registra nada.
type Ledger struct {
	sales       *prometheus.CounterVec
	units       *prometheus.CounterVec
	bookings    *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

func NewLedger(reg prometheus.Registerer) *Ledger {
	if reg == nil {
		return &Ledger{}
	}

	sales := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barbershop_sales_total",
		Help: "Sell attempts by outcome.",
	}, []string{"outcome"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barbershop_units_sold_total",
		Help: "Product units removed from stock by sales.",
	}, []string{"shop"})
	bookings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barbershop_bookings_total",
		Help: "Booking attempts by outcome.",
	}, []string{"outcome"})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "barbershop_status_transitions_total",
		Help: "Applied lifecycle transitions.",
	}, []string{"entity", "to"})

	reg.MustRegister(sales, units, bookings, transitions)
	return &Ledger{
		sales:       sales,
		units:       units,
		bookings:    bookings,
		transitions: transitions,
	}
}

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

func (l *Ledger) Sale(outcome string, shopID string, units int) {
	if l == nil || l.sales == nil {
		return
	}
	l.sales.WithLabelValues(normalizeLabel(outcome)).Inc()
	if outcome == OutcomeOK && units > 0 {
		l.units.WithLabelValues(normalizeLabel(shopID)).Add(float64(units))
	}
}

func (l *Ledger) Booking(outcome string) {
	if l == nil || l.bookings == nil {
		return
	}
	l.bookings.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (l *Ledger) Transition(entity, to string) {
	if l == nil || l.transitions == nil {
		return
	}
	l.transitions.WithLabelValues(normalizeLabel(entity), normalizeLabel(to)).Inc()
}

// Handler expõe o registry em /metrics.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
