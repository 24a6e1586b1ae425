package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the isolated registry all metrics are registered with.
	Registry *prometheus.Registry

	registerer prometheus.Registerer
	namespace  string

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	remediationsTotal *prometheus.CounterVec
	payloadRecords    prometheus.Counter
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
//
// It sets up a dedicated registry wrapped with a constant service label,
// registers the built-in series and, when enabled, the default Go/process
// collectors, and prepares (but does not start) the HTTP server.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrappedRegistry,
		namespace:  cfg.Namespace,
	}

	m.operationsTotal = createCounterVec(cfg.Namespace, "vendor_operations_total",
		"Total number of operations performed against watsonx services", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "vendor_operation_duration_seconds",
		"Duration of operations performed against watsonx services", []string{"component", "operation"}, prometheus.DefBuckets)
	m.remediationsTotal = createCounterVec(cfg.Namespace, "prompt_setup_remediations_total",
		"Instance mappings added to recover a failed prompt setup", []string{"container_type"})
	m.payloadRecords = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "payload_records_stored_total",
		Help:      "Records stored into payload logging data sets",
	})

	wrappedRegistry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.remediationsTotal,
		m.payloadRecords,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
