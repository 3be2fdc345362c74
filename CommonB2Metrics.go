package box2d

import (
	"github.com/prometheus/client_golang/prometheus"
)

/// Prometheus series for the contact core. Labels are bounded by the number
/// of registered strategies. A nil *B2ContactMetrics records nothing.
type B2ContactMetrics struct {
	created     *prometheus.CounterVec
	destroyed   *prometheus.CounterVec
	allocations *prometheus.CounterVec
	live        prometheus.Gauge
	began       prometheus.Counter
	ended       prometheus.Counter
}

/// Build and register the series under namespace. Each world should use its
/// own registerer, or its own namespace, to avoid duplicate registration.
func NewB2ContactMetrics(registerer prometheus.Registerer, namespace string) (*B2ContactMetrics, error) {
	metrics := &B2ContactMetrics{
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contacts_created_total",
			Help:      "Contacts handed out by the factory",
		}, []string{"pair"}),

		destroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contacts_destroyed_total",
			Help:      "Contacts returned to their pool",
		}, []string{"pair"}),

		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_pool_allocations_total",
			Help:      "Contacts constructed because a pool ran dry",
		}, []string{"pair"}),

		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contacts_live",
			Help:      "Contacts currently handed out",
		}),

		began: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_begin_total",
			Help:      "Transitions from not touching to touching",
		}),

		ended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_end_total",
			Help:      "Transitions from touching to not touching",
		}),
	}

	collectors := []prometheus.Collector{
		metrics.created,
		metrics.destroyed,
		metrics.allocations,
		metrics.live,
		metrics.began,
		metrics.ended,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return metrics, nil
}

func (metrics *B2ContactMetrics) ContactCreated(pair string) {
	if metrics == nil {
		return
	}
	metrics.created.WithLabelValues(pair).Inc()
	metrics.live.Inc()
}

func (metrics *B2ContactMetrics) ContactDestroyed(pair string) {
	if metrics == nil {
		return
	}
	metrics.destroyed.WithLabelValues(pair).Inc()
	metrics.live.Dec()
}

func (metrics *B2ContactMetrics) PoolAllocated(pair string, count int) {
	if metrics == nil {
		return
	}
	metrics.allocations.WithLabelValues(pair).Add(float64(count))
}

func (metrics *B2ContactMetrics) ContactBegan() {
	if metrics == nil {
		return
	}
	metrics.began.Inc()
}

func (metrics *B2ContactMetrics) ContactEnded() {
	if metrics == nil {
		return
	}
	metrics.ended.Inc()
}

/// Build metrics as configured: nil when disabled.
func NewB2ContactMetricsFromConfig(registerer prometheus.Registerer, config B2MetricsConfig) (*B2ContactMetrics, error) {
	if !config.Enabled {
		return nil, nil
	}

	return NewB2ContactMetrics(registerer, config.Namespace)
}
