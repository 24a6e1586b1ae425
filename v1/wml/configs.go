package wml

import (
	"errors"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultVersion is the API version date sent with every request.
const DefaultVersion = "2024-03-14"

// Config holds the connection settings of the deployment service.
type Config struct {
	// URL of the runtime, e.g. "https://us-south.ml.cloud.ibm.com".
	URL string `env:"WATSONX_WML_URL"`

	// Version is the API version date query parameter.
	Version string `env:"WATSONX_WML_VERSION" envDefault:"2024-03-14"`

	// SpaceID is the default space deployments are created in.
	SpaceID string `env:"WATSONX_SPACE_ID"`

	Timeout                time.Duration `env:"WATSONX_WML_TIMEOUT" envDefault:"60s"`
	DisableSSLVerification bool          `env:"WATSONX_WML_DISABLE_SSL_VERIFICATION"`

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
		return errors.New("wml: URL is required")
	}
	return nil
}
