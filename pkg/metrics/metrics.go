// Package metrics define los colectores Prometheus de la API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "paofresquim"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Peticiones HTTP atendidas por método, ruta y código.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	dashboardFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_section_failures_total",
		Help:      "Secciones del dashboard que fallaron y se devolvieron con su valor por defecto.",
	}, []string{"section"})

	seedRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_rows_total",
		Help:      "Filas procesadas por el cargador de datos iniciales.",
	}, []string{"table", "result"})
)

// ObserveRequest registra una petición HTTP terminada.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// DashboardSectionFailed cuenta una sección degradada.
func DashboardSectionFailed(section string) {
	dashboardFailures.WithLabelValues(section).Inc()
}

// SeedRow cuenta una fila cargada ("loaded") o descartada ("skipped").
func SeedRow(table, result string) {
	seedRows.WithLabelValues(table, result).Inc()
}

// DashboardFailures devuelve el contador de una sección (para tests).
func DashboardFailures(section string) prometheus.Counter {
	return dashboardFailures.WithLabelValues(section)
}
