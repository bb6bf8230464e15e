// Package metrics exposes prometheus instrumentation for the dashboard
// model: how often each channel emits and how long recomputations take.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	// Emissions counts payloads emitted per bus channel.
	Emissions *prometheus.CounterVec

	// RecomputeSeconds times one full filter+sort+statistics pass.
	RecomputeSeconds prometheus.Histogram

	// Orders tracks the size of the normalized working set.
	Orders prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	emissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdash_emissions_total",
		Help: "Payloads emitted on the event bus, by channel.",
	}, []string{"channel"})
	recompute := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderdash_recompute_seconds",
		Help:    "Duration of one derived-state recomputation.",
		Buckets: prometheus.DefBuckets,
	})
	orders := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orderdash_orders",
		Help: "Orders in the normalized working set.",
	})

	r.MustRegister(emissions, recompute, orders)
	return &Registry{
		reg:              r,
		Emissions:        emissions,
		RecomputeSeconds: recompute,
		Orders:           orders,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
