// Package metrics exposes Prometheus collectors for client address resolution,
// relay range lookups and HTTP requests.
//
// A *Metrics value satisfies clientip.Metrics and iprange.Metrics, so it can be
// passed straight to clientip.WithMetrics and iprange.Observed. Collectors are
// registered on the given prometheus.Registerer; registering twice on the same
// registerer reuses the existing collectors.
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.NewWithRegisterer(reg)
//	r.Handle("/metrics", metrics.Handler(reg))
package metrics
