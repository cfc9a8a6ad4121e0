package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	siteSearches    *prometheus.CounterVec
	searchResults   prometheus.Histogram
	useCaseTotal    *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	httpDuration    *prometheus.HistogramVec
	ingestProcessed *prometheus.CounterVec
	duplicates      *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		siteSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "siteradar_site_searches_total",
			Help:        "Total nearby-site searches.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "siteradar_search_results",
			Help:        "Number of sites returned per search.",
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		ingestProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "siteradar_ingest_events_processed_total",
			Help:        "Total site position events processed by the worker.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		duplicates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "siteradar_ingest_duplicates_dropped_total",
			Help:        "Duplicate events dropped by the idempotency guard.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"handler"}),
	}

	reg.MustRegister(
		m.siteSearches,
		m.searchResults,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.ingestProcessed,
		m.duplicates,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordSiteSearch(status string) {
	p.siteSearches.WithLabelValues(status).Inc()
}

func (p *Prometheus) ObserveSearchResults(count int) {
	p.searchResults.Observe(float64(count))
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) IncIngestProcessed(status string) {
	p.ingestProcessed.WithLabelValues(status).Inc()
}

func (p *Prometheus) IncDuplicateDropped(handlerName string) {
	p.duplicates.WithLabelValues(handlerName).Inc()
}
