package logger

import "github.com/caarlos0/env/v11"

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls the zap logger built by NewLoggerClient.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Anything else maps to Info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL" envDefault:"info"`

	// EnableTracing adds trace_id and span_id to entries logged with a context.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME" envDefault:"labrador"`
}

// NewConfig reads the logger configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
