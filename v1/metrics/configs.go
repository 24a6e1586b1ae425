package metrics

import "github.com/caarlos0/env/v11"

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address is where the /metrics HTTP server listens.
	Address string `yaml:"address" env:"METRICS_ADDRESS" envDefault:":9090"`

	// EnableDefaultCollectors registers Go runtime, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS" envDefault:"true"`

	// Namespace prefixes every built-in metric name.
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`

	// ServiceName is added as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME" envDefault:"labrador"`
}

// NewConfig reads the metrics configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}
	return cfg, nil
}
