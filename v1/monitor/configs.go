package monitor

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/labrador-ai/watsonx/v1/credentials"
)

// Container types.
const (
	ContainerSpace   = "space"
	ContainerProject = "project"
)

// Deployment stages, derived from the container type.
const (
	StageProduction  = "production"
	StageDevelopment = "development"
)

// Config identifies the container and the credentials of a Monitor.
type Config struct {
	// APIKey is the IBM Cloud API key, used when Credentials is nil.
	APIKey string `env:"WATSONX_API_KEY"`

	// Exactly one of SpaceID and ProjectID must be set.
	SpaceID   string `env:"WATSONX_SPACE_ID"`
	ProjectID string `env:"WATSONX_PROJECT_ID"`

	// Region selects the IBM Cloud endpoints; see credentials.RegionNames.
	Region string `env:"WATSONX_REGION" envDefault:"us-south"`

	// PromptSetupTimeout bounds the wait for a prompt setup to finish and
	// PromptSetupPollInterval spaces its status checks. Zero values select the
	// openscale defaults.
	PromptSetupTimeout      time.Duration `env:"WATSONX_PROMPT_SETUP_TIMEOUT" envDefault:"10m"`
	PromptSetupPollInterval time.Duration `env:"WATSONX_PROMPT_SETUP_POLL_INTERVAL" envDefault:"5s"`

	// Credentials switches to Cloud Pak for Data when set.
	Credentials *credentials.Bundle `env:"-"`
}

// NewConfig reads the configuration from the environment, including the
// CPD_* credential bundle when CPD_URL is set.
func NewConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	bundle, err := credentials.LoadBundle()
	if err != nil {
		return Config{}, err
	}
	cfg.Credentials = bundle
	return cfg, nil
}

// Validate checks that exactly one container id is set.
func (c Config) Validate() error {
	switch {
	case c.SpaceID != "" && c.ProjectID != "":
		return fmt.Errorf("%w: set either space_id or project_id, not both", ErrInvalidConfig)
	case c.SpaceID == "" && c.ProjectID == "":
		return fmt.Errorf("%w: one of space_id or project_id is required", ErrInvalidConfig)
	}
	return nil
}

// ContainerID returns the space or project id.
func (c Config) ContainerID() string {
	if c.SpaceID != "" {
		return c.SpaceID
	}
	return c.ProjectID
}

// ContainerType returns ContainerSpace or ContainerProject.
func (c Config) ContainerType() string {
	if c.SpaceID != "" {
		return ContainerSpace
	}
	return ContainerProject
}

// DeploymentStage returns StageProduction for spaces and StageDevelopment for projects.
func (c Config) DeploymentStage() string {
	if c.SpaceID != "" {
		return StageProduction
	}
	return StageDevelopment
}

func (c Config) onPremises() bool {
	return c.Credentials != nil
}
