// Package metrics provides Prometheus instrumentation for gogate components.
//
// The metrics package provides automatic instrumentation for:
//   - Admission gates (active tasks, queue depth, admissions, rejections)
//   - Idle synchronization (idle waits by outcome)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	g := gate.NewWithMetrics(4, "db_writes")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # Custom Registries
//
// Components use the shared DefaultRegistry by default. Supply a custom
// Prometheus registerer through Config to keep metrics isolated:
//
//	reg := prometheus.NewRegistry()
//	g := gate.NewWithConfigAndMetrics(cfg, "db_writes", metrics.Config{
//		Enabled:  true,
//		Registry: reg,
//	})
package metrics
