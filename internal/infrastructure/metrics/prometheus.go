// Package metrics expõe métricas Prometheus das consultas externas e das requisições HTTP.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
)

// Nomes das métricas.
const (
	MetricLookupAttemptsTotal   = "ploutos_lookup_attempts_total"
	MetricLookupDurationSeconds = "ploutos_lookup_duration_seconds"
	MetricHTTPRequestsTotal     = "ploutos_http_requests_total"
	MetricHTTPDurationSeconds   = "ploutos_http_request_duration_seconds"
)

var _ ports.LookupObserver = (*Registry)(nil)

// Registry registro próprio (sem o registro global) com as métricas da aplicação.
type Registry struct {
	registry *prometheus.Registry

	lookupAttempts *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// NewRegistry cria o registro com métricas de processo e do runtime Go.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		lookupAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricLookupAttemptsTotal,
			Help: "Tentativas de consulta a provedores externos por tipo, provedor e resultado.",
		}, []string{"kind", "provider", "outcome"}),
		lookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricLookupDurationSeconds,
			Help:    "Duração das consultas a provedores externos.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind", "provider"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "Requisições HTTP atendidas por método, rota e status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPDurationSeconds,
			Help:    "Duração das requisições HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.registry.MustRegister(
		r.lookupAttempts, r.lookupDuration, r.httpRequests, r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveLookup implementa ports.LookupObserver.
func (r *Registry) ObserveLookup(kind, provider, outcome string, elapsed time.Duration) {
	r.lookupAttempts.WithLabelValues(kind, provider, outcome).Inc()
	r.lookupDuration.WithLabelValues(kind, provider).Observe(elapsed.Seconds())
}

// ObserveRequest registra uma requisição HTTP atendida.
func (r *Registry) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, status).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler exporta o registro no formato de exposição do Prometheus.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer acesso ao registro (testes).
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
