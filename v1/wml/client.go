package wml

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labrador-ai/watsonx/v1/observability"
	"github.com/labrador-ai/watsonx/v1/restclient"
)

const (
	componentName   = "wml"
	deploymentsPath = "/ml/v4/deployments"
)

// DeploymentRequest describes a prompt-template deployment.
type DeploymentRequest struct {
	// Name of the deployment; " deployment" is appended.
	Name        string
	Description string

	// AssetID is the prompt-template asset to deploy.
	AssetID string

	// BaseModelID is the model the prompt template targets.
	BaseModelID string

	// Detached marks a prompt template evaluated outside the platform.
	Detached bool

	// SpaceID overrides Config.SpaceID.
	SpaceID string
}

type deployment struct {
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	SpaceID         string    `json:"space_id"`
	PromptTemplate  assetRef  `json:"prompt_template"`
	BaseModelID     string    `json:"base_model_id,omitempty"`
	Detached        *struct{} `json:"detached,omitempty"`
	FoundationModel *struct{} `json:"foundation_model,omitempty"`
}

type assetRef struct {
	ID string `json:"id"`
}

type deploymentResponse struct {
	Metadata struct {
		ID string `json:"id"`
	} `json:"metadata"`
}

// Client creates deployments.
type Client struct {
	rest    *restclient.Client
	version string
	spaceID string
}

// NewClient creates a Client. The observer may be nil.
func NewClient(cfg Config, auth restclient.Authenticator, observer observability.Observer) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rest, err := restclient.New(restclient.Config{
		Component:              componentName,
		BaseURL:                cfg.URL,
		Authenticator:          auth,
		HTTPClient:             cfg.HTTPClient,
		Timeout:                cfg.Timeout,
		DisableSSLVerification: cfg.DisableSSLVerification,
		Observer:               observer,
	})
	if err != nil {
		return nil, err
	}

	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	return &Client{rest: rest, version: version, spaceID: cfg.SpaceID}, nil
}

// SetDefaultSpace sets the space used when a request carries none.
func (c *Client) SetDefaultSpace(spaceID string) {
	c.spaceID = spaceID
}

// CreateDeployment deploys a prompt-template asset and returns the deployment id.
func (c *Client) CreateDeployment(ctx context.Context, r DeploymentRequest) (string, error) {
	if r.AssetID == "" {
		return "", errors.New("wml: asset id is required")
	}
	spaceID := r.SpaceID
	if spaceID == "" {
		spaceID = c.spaceID
	}
	if spaceID == "" {
		return "", errors.New("wml: space id is required")
	}

	body := deployment{
		Name:           r.Name + " deployment",
		Description:    r.Description,
		SpaceID:        spaceID,
		PromptTemplate: assetRef{ID: r.AssetID},
		BaseModelID:    r.BaseModelID,
	}
	if r.Detached {
		body.Detached = &struct{}{}
	} else {
		body.FoundationModel = &struct{}{}
	}

	var out deploymentResponse
	err := c.rest.Do(ctx, restclient.Request{
		Operation: "create_deployment",
		Method:    http.MethodPost,
		Path:      deploymentsPath,
		Query:     url.Values{"version": {c.version}},
		Body:      body,
		Resource:  r.AssetID,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Metadata.ID == "" {
		return "", fmt.Errorf("wml: deployment of asset %s returned no id", r.AssetID)
	}
	return out.Metadata.ID, nil
}
