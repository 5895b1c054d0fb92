// Package metrics 榜单服务的 Prometheus 指标，使用独立 registry，不带 Go 运行时默认指标
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pageant"

// 榜单构建结果
const (
	ResultOK            = "ok"
	ResultNotConfigured = "not_configured"
	ResultNotFound      = "not_found"
	ResultError         = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	leaderboardBuilds   *prometheus.CounterVec
	leaderboardDuration *prometheus.HistogramVec
	scoresSaved         *prometheus.CounterVec
	weightSaves         *prometheus.CounterVec
}

var defaultMetrics = New(prometheus.NewRegistry())

// Default 进程级指标实例
func Default() *Metrics {
	return defaultMetrics
}

func New(registry *prometheus.Registry) *Metrics {
	f := promauto.With(registry)
	return &Metrics{
		registry: registry,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		leaderboardBuilds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "builds_total",
			Help:      "Leaderboard computations by view, scope and result.",
		}, []string{"view", "scope", "result"}),
		leaderboardDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "leaderboard",
			Name:      "build_duration_seconds",
			Help:      "Time spent computing a leaderboard.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"view"}),
		scoresSaved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scores",
			Name:      "saved_total",
			Help:      "Score rows upserted by scope.",
		}, []string{"scope"}),
		weightSaves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "weights",
			Name:      "saves_total",
			Help:      "Overall weight configuration replacements by scope.",
		}, []string{"scope"}),
	}
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveLeaderboard view 为 segment 或 overall，scope 为 solo / pair:male / pair:female
func (m *Metrics) ObserveLeaderboard(view, scope, result string, elapsed time.Duration) {
	m.leaderboardBuilds.WithLabelValues(view, scope, result).Inc()
	m.leaderboardDuration.WithLabelValues(view).Observe(elapsed.Seconds())
}

func (m *Metrics) ScoresSaved(scope string, n int) {
	m.scoresSaved.WithLabelValues(scope).Add(float64(n))
}

func (m *Metrics) WeightsSaved(scope string) {
	m.weightSaves.WithLabelValues(scope).Inc()
}

// Handler Prometheus 抓取入口
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
