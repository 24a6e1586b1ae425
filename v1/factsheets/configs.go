package factsheets

import (
	"errors"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the connection settings of the asset service.
type Config struct {
	// URL of the asset service, e.g. "https://api.dataplatform.cloud.ibm.com".
	URL string `env:"WATSONX_FACTSHEETS_URL"`

	// Timeout of a single request.
	Timeout time.Duration `env:"WATSONX_FACTSHEETS_TIMEOUT" envDefault:"60s"`

	// DisableSSLVerification skips certificate checks for self-signed clusters.
	DisableSSLVerification bool `env:"WATSONX_FACTSHEETS_DISABLE_SSL_VERIFICATION"`

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

// Validate checks that the URL is set.
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("factsheets: URL is required")
	}
	return nil
}
