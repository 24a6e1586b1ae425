package embedding

import (
	"errors"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/labrador-ai/watsonx/v1/observability"
)

// Defaults of the watsonx.ai embedding service.
const (
	DefaultModelID             = "ibm/slate-30m-english-rtrvr"
	DefaultTruncateInputTokens = 512
	DefaultVersion             = "2023-10-25"
)

// Config holds the embedding service settings.
type Config struct {
	APIKey string `env:"WATSONX_EMBEDDING_API_KEY"`
	URL    string `env:"WATSONX_EMBEDDING_URL"`

	// One of ProjectID and SpaceID is required; ProjectID wins when both are set.
	ProjectID string `env:"WATSONX_EMBEDDING_PROJECT_ID"`
	SpaceID   string `env:"WATSONX_EMBEDDING_SPACE_ID"`

	ModelID             string `env:"WATSONX_EMBEDDING_MODEL" envDefault:"ibm/slate-30m-english-rtrvr"`
	TruncateInputTokens int    `env:"WATSONX_EMBEDDING_TRUNCATE_INPUT_TOKENS" envDefault:"512"`
	Version             string `env:"WATSONX_EMBEDDING_VERSION" envDefault:"2023-10-25"`

	// IAMURL overrides the IBM Cloud IAM token endpoint.
	IAMURL string `env:"WATSONX_EMBEDDING_IAM_URL"`

	Timeout time.Duration `env:"WATSONX_EMBEDDING_TIMEOUT" envDefault:"30s"`

	HTTPClient *http.Client           `env:"-"`
	Observer   observability.Observer `env:"-"`
}

// NewConfig reads the configuration from the environment.
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("embedding: missing WATSONX_EMBEDDING_API_KEY")
	}
	if c.URL == "" {
		return errors.New("embedding: missing WATSONX_EMBEDDING_URL")
	}
	if c.ProjectID == "" && c.SpaceID == "" {
		return errors.New("embedding: one of project id or space id is required")
	}
	if c.TruncateInputTokens < 0 {
		return errors.New("embedding: truncate input tokens must not be negative")
	}
	return nil
}
