package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Example_basicUsage demonstrates basic metrics configuration.
func Example_basicUsage() {
	// Create a separate registry for this test
	testRegistry := prometheus.NewRegistry()
	registry := NewRegistry(testRegistry)

	// Example of accessing metrics
	registry.GateSubmissions.WithLabelValues("example").Add(10)
	registry.GateAdmitted.WithLabelValues("example").Add(8)
	registry.GateRejected.WithLabelValues("example", "overflow").Add(2)

	fmt.Println("Metrics updated successfully")

	// Output:
	// Metrics updated successfully
}

// Example_customRegistry demonstrates using a custom Prometheus registry.
func Example_customRegistry() {
	customRegistry := prometheus.NewRegistry()

	config := Config{
		Enabled:  true,
		Registry: customRegistry,
	}

	registry := NewRegistry(config.Registry)

	registry.GateActive.WithLabelValues("custom").Set(3)
	registry.GatePending.WithLabelValues("custom").Set(7)

	fmt.Println("Custom registry in use")

	// Output:
	// Custom registry in use
}
