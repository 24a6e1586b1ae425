// Package metrics provides Prometheus metrics for the watsonx integration
// packages and exposes them on a /metrics endpoint.
//
// Metrics implements observability.Observer, so it can be handed directly to
// the vendor clients and to the prompt monitor:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "labrador"})
//	mon, err := monitor.NewPromptMonitor(cfg, monitor.WithObserver(m))
//
// Built-in series:
//
//   - vendor_operations_total{component,operation,status}
//   - vendor_operation_duration_seconds{component,operation}
//   - prompt_setup_remediations_total{container_type}
//   - payload_records_stored_total
//
// Every series carries a constant service label. Additional metrics can be
// registered with CreateCounter, CreateHistogram and CreateGauge.
//
// # Configuration
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=labrador
//	METRICS_SERVICE_NAME=labrador
//
// # FX Module Integration
//
// FXModule provides *Metrics and starts/stops the HTTP server with the Fx
// lifecycle. It requires a Config and a *logger.Logger in the container.
package metrics
