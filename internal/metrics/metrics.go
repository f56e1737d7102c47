// Package metrics Prometheus 指标
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "conduit"

// Collector is a prometheus.Collector that collects metrics about
// the HTTP surface, the social toggles and the seeder.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	toggles         *prometheus.CounterVec
	seedImports     *prometheus.CounterVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "The number of HTTP requests handled.",
			}, []string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "The time taken to handle an HTTP request.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			}, []string{"method", "route"},
		),
		toggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "toggle_total",
				Help:      "The number of follow and favorite toggles by resulting state.",
			}, []string{"kind", "state"},
		),
		seedImports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "seed_imports_total",
				Help:      "The number of records handled by the seeder.",
			}, []string{"kind", "outcome"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.requestsTotal.Describe(ch)
	c.requestDuration.Describe(ch)
	c.toggles.Describe(ch)
	c.seedImports.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.requestsTotal.Collect(ch)
	c.requestDuration.Collect(ch)
	c.toggles.Collect(ch)
	c.seedImports.Collect(ch)
}

// ObserveRequest 记录一次 HTTP 请求
func (c *Collector) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Toggle 记录一次 follow/favorite 切换后的状态
func (c *Collector) Toggle(kind string, on bool) {
	state := "off"
	if on {
		state = "on"
	}
	c.toggles.WithLabelValues(kind, state).Inc()
}

// SeedImport 记录导入结果，outcome 为 created/existing/skipped/failed
func (c *Collector) SeedImport(kind, outcome string) {
	c.seedImports.WithLabelValues(kind, outcome).Inc()
}

var (
	// Default 进程级 collector
	Default = NewCollector()
	// Registry 仅包含本服务指标与 Go 运行时指标
	Registry = prometheus.NewRegistry()
)

func init() {
	Registry.MustRegister(
		Default,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
