// Package metrics exporta métricas Prometheus del store (persistencia, bus) y
// de los sensores de cada mascota. Usa un registry propio, no el global.
package metrics

import (
	"net/http"
	"time"

	"pet-health/internal/domain/records"
	"pet-health/internal/domain/sensors"
	"pet-health/internal/domain/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pet_health"

type Metrics struct {
	Registry *prometheus.Registry

	persistDuration *prometheus.HistogramVec
	persistFailures *prometheus.CounterVec

	visitsToday       *prometheus.GaugeVec
	peeToday          *prometheus.GaugeVec
	poopToday         *prometheus.GaugeVec
	unconfirmed       *prometheus.GaugeVec
	hoursSinceVisit   *prometheus.GaugeVec
	weightGrams       *prometheus.GaugeVec
	medicationToday   *prometheus.GaugeVec
	vomitsLast7Days   *prometheus.GaugeVec
	snapshotRevisions *prometheus.GaugeVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	petGauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sensor",
			Name:      name,
			Help:      help,
		}, append([]string{"pet_id"}, labels...))
		reg.MustRegister(g)
		return g
	}

	m := &Metrics{
		Registry: reg,
		persistDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_duration_seconds",
			Help:      "Duración de cada escritura completa de una categoría.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"category", "op"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "persist_failures_total",
			Help:      "Escrituras fallidas (la memoria quedó adelantada).",
		}, []string{"category", "op"}),

		visitsToday:       petGauge("visits_today", "Visitas al baño del día local."),
		peeToday:          petGauge("pee_today", "Visitas con pis del día local."),
		poopToday:         petGauge("poop_today", "Visitas con caca del día local."),
		unconfirmed:       petGauge("unconfirmed_visits", "Visitas pendientes de confirmar."),
		hoursSinceVisit:   petGauge("hours_since_last_visit", "Horas desde la última visita."),
		weightGrams:       petGauge("weight_grams", "Último peso registrado."),
		medicationToday:   petGauge("medication_doses_today", "Dosis del día por medicamento.", "medication"),
		vomitsLast7Days:   petGauge("vomits_last_7_days", "Vómitos de los últimos 7 días."),
		snapshotRevisions: petGauge("revision", "Revisión del bus al calcular el snapshot."),
	}
	reg.MustRegister(m.persistDuration, m.persistFailures)
	return m
}

// ObservePersist implementa store.Metrics.
func (m *Metrics) ObservePersist(category records.Category, op string, d time.Duration, err error) {
	m.persistDuration.WithLabelValues(string(category), op).Observe(d.Seconds())
	if err != nil {
		m.persistFailures.WithLabelValues(string(category), op).Inc()
	}
}

// ObserveSnapshot implementa sensors.Observer.
func (m *Metrics) ObserveSnapshot(s sensors.Snapshot) {
	m.visitsToday.WithLabelValues(s.PetID).Set(float64(s.VisitsToday))
	m.peeToday.WithLabelValues(s.PetID).Set(float64(s.PeeToday))
	m.poopToday.WithLabelValues(s.PetID).Set(float64(s.PoopToday))
	m.unconfirmed.WithLabelValues(s.PetID).Set(float64(len(s.UnconfirmedVisits)))
	m.vomitsLast7Days.WithLabelValues(s.PetID).Set(float64(s.VomitsLast7Days))
	m.snapshotRevisions.WithLabelValues(s.PetID).Set(float64(s.Revision))

	if s.HoursSinceLastVisit != nil {
		m.hoursSinceVisit.WithLabelValues(s.PetID).Set(*s.HoursSinceLastVisit)
	} else {
		m.hoursSinceVisit.DeleteLabelValues(s.PetID)
	}
	if s.CurrentWeightGrams != nil {
		m.weightGrams.WithLabelValues(s.PetID).Set(float64(*s.CurrentWeightGrams))
	} else {
		m.weightGrams.DeleteLabelValues(s.PetID)
	}
	for _, med := range s.Medications {
		m.medicationToday.WithLabelValues(s.PetID, med.Name).Set(float64(med.DosesToday))
	}
}

// WatchBus expone suscriptores y eventos descartados del bus.
func (m *Metrics) WatchBus(b *store.Bus) {
	m.Registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "subscribers",
			Help:      "Suscripciones abiertas al bus de cambios.",
		}, func() float64 { return float64(b.Subscribers()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "dropped_total",
			Help:      "Eventos descartados por suscriptores con el canal lleno.",
		}, func() float64 { return float64(b.Dropped()) }),
	)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

var (
	_ store.Metrics    = (*Metrics)(nil)
	_ sensors.Observer = (*Metrics)(nil)
)
