// Package metrics expone métricas Prometheus del catálogo y del servidor HTTP.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/warehome-api/internal/application/catalog"
)

var _ catalog.Observer = (*Recorder)(nil)

// Recorder registra métricas en un registro propio, no en el global.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	requests   *prometheus.HistogramVec
}

// NewRecorder crea el registro con las métricas del catálogo, del runtime de Go y del proceso.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_operations_total",
			Help:      "Operaciones de escritura del catálogo por entidad, operación y resultado.",
		}, []string{"entity", "operation", "status"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP por método, ruta y código.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
	r.registry.MustRegister(
		r.operations,
		r.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOperation implementa catalog.Observer.
func (r *Recorder) ObserveOperation(entity, operation string, status catalog.Status) {
	r.operations.WithLabelValues(entity, operation, status.String()).Inc()
}

// ObserveHTTP registra la duración de una petición. route es el patrón, no la URL.
func (r *Recorder) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// Handler expone el registro en formato de texto de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry para tests y para registrar colectores adicionales.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
