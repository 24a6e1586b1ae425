package tracer

import "github.com/caarlos0/env/v11"

// Config controls the tracer provider created by NewClient.
type Config struct {
	// ServiceName is recorded as the service.name resource attribute.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME" envDefault:"labrador"`

	// AppEnv is recorded as deployment.environment.
	AppEnv string `yaml:"app_env" env:"TRACER_APP_ENV" envDefault:"development"`

	// EnableExport turns on the OTLP/HTTP exporter.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`

	// Endpoint overrides the exporter endpoint (host:port).
	Endpoint string `yaml:"endpoint" env:"TRACER_ENDPOINT"`

	// Insecure disables TLS for the exporter.
	Insecure bool `yaml:"insecure" env:"TRACER_INSECURE"`
}

// NewConfig reads the tracer configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
