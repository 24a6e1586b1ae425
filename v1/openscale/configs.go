package openscale

import (
	"errors"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultServiceInstanceID addresses the default data mart of an instance.
const DefaultServiceInstanceID = "00000000-0000-0000-0000-000000000000"

// Prompt setup polling defaults, applied when the Config leaves them zero.
const (
	DefaultPollInterval = 5 * time.Second
	DefaultSetupTimeout = 10 * time.Minute
)

// Config holds the connection settings of the monitoring service.
type Config struct {
	// URL of the service, e.g. "https://api.aiopenscale.cloud.ibm.com".
	URL string `env:"WATSONX_OPENSCALE_URL"`

	// ServiceInstanceID is the OpenScale instance (data mart) addressed in paths.
	ServiceInstanceID string `env:"WATSONX_OPENSCALE_INSTANCE_ID" envDefault:"00000000-0000-0000-0000-000000000000"`

	// PollInterval is the delay between prompt setup status checks.
	PollInterval time.Duration `env:"WATSONX_OPENSCALE_POLL_INTERVAL" envDefault:"5s"`

	// SetupTimeout bounds the wait for a prompt setup to finish. Zero selects
	// DefaultSetupTimeout.
	SetupTimeout time.Duration `env:"WATSONX_OPENSCALE_SETUP_TIMEOUT" envDefault:"10m"`

	Timeout                time.Duration `env:"WATSONX_OPENSCALE_TIMEOUT" envDefault:"60s"`
	DisableSSLVerification bool          `env:"WATSONX_OPENSCALE_DISABLE_SSL_VERIFICATION"`

	// HTTPClient overrides Timeout and DisableSSLVerification when set.
	HTTPClient *http.Client `env:"-"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the URL is set and the durations are usable.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("openscale: URL is required")
	}
	if c.PollInterval < 0 || c.SetupTimeout < 0 {
		return errors.New("openscale: poll interval and setup timeout must not be negative")
	}
	return nil
}
