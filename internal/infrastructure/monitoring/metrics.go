package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the host control plane.
type Metrics struct {
	// Instance metrics
	InstancesActive prometheus.Gauge
	InstancesTotal  prometheus.Counter

	// Browser object metrics
	BrowsersCreated   prometheus.Counter
	BrowsersDestroyed prometheus.Counter

	// Dispatch bridge metrics
	TasksDispatched *prometheus.CounterVec
	DispatchDropped prometheus.Counter

	// Notification channel metrics
	EventsDispatched *prometheus.CounterVec

	// WebSocket mirror metrics
	WSConnections prometheus.Gauge

	startTime time.Time
}

// NewMetrics creates a new metrics collector registered on a fresh registry
// so independent instances can coexist in tests.
func NewMetrics() *Metrics {
	return newMetrics(prometheus.NewRegistry())
}

// NewMetricsOn creates a metrics collector registered on the given registerer.
func NewMetricsOn(reg prometheus.Registerer) *Metrics {
	return newMetrics(reg)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		startTime: time.Now(),

		InstancesActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "browserhost_instances_active",
			Help: "Number of registered embedded-content instances",
		}),
		InstancesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "browserhost_instances_total",
			Help: "Total number of instances ever created",
		}),
		BrowsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "browserhost_browsers_created_total",
			Help: "Total number of engine browser objects created",
		}),
		BrowsersDestroyed: factory.NewCounter(prometheus.CounterOpts{
			Name: "browserhost_browsers_destroyed_total",
			Help: "Total number of engine browser objects destroyed",
		}),
		TasksDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "browserhost_tasks_dispatched_total",
			Help: "Tasks submitted to the engine thread by mode",
		}, []string{"mode"}),
		DispatchDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "browserhost_tasks_dropped_total",
			Help: "Tasks dropped because the engine thread was unavailable",
		}),
		EventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "browserhost_events_dispatched_total",
			Help: "Notification events delivered to embedded content",
		}, []string{"event"}),
		WSConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "browserhost_ws_connections",
			Help: "Open websocket event-stream connections",
		}),
	}
}

// Uptime returns how long the collector has been alive.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
