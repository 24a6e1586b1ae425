package factsheets

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
	componentName = "factsheets"
	promptsPath   = "/wx/v1/prompts"
	inputMode     = "structured"
)

// Client registers prompt-template assets.
type Client struct {
	rest *restclient.Client
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
	return &Client{rest: rest}, nil
}

// CreatePrompt registers a platform-native prompt template and returns its asset id.
func (c *Client) CreatePrompt(ctx context.Context, r PromptRequest) (string, error) {
	body := newPrompt(r)
	body.InputMode = inputMode
	return c.create(ctx, "create_prompt", r, body)
}

// CreateDetachedPrompt registers a prompt template for an externally hosted
// model and returns its asset id.
func (c *Client) CreateDetachedPrompt(ctx context.Context, r PromptRequest) (string, error) {
	if r.External == nil {
		return "", errors.New("factsheets: external information is required for a detached prompt")
	}
	body := newPrompt(r)
	body.Prompt.ExternalInformation = newExternalInformation(*r.External)
	return c.create(ctx, "create_detached_prompt", r, body)
}

func (c *Client) create(ctx context.Context, operation string, r PromptRequest, body prompt) (string, error) {
	query, err := containerQuery(r.ContainerID, r.ContainerType)
	if err != nil {
		return "", err
	}

	var out promptResponse
	err = c.rest.Do(ctx, restclient.Request{
		Operation: operation,
		Method:    http.MethodPost,
		Path:      promptsPath,
		Query:     query,
		Body:      body,
		Resource:  r.Name,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("factsheets: %s returned no asset id", operation)
	}
	return out.ID, nil
}

func containerQuery(id, containerType string) (url.Values, error) {
	if id == "" {
		return nil, errors.New("factsheets: container id is required")
	}
	switch containerType {
	case ContainerSpace:
		return url.Values{"space_id": {id}}, nil
	case ContainerProject:
		return url.Values{"project_id": {id}}, nil
	default:
		return nil, fmt.Errorf("factsheets: unknown container type %q", containerType)
	}
}

func newPrompt(r PromptRequest) prompt {
	p := prompt{
		Name:         r.Name,
		Description:  r.Description,
		ModelVersion: r.ModelVersion,
		Prompt: promptBody{
			ModelID:         r.ModelID,
			ModelParameters: r.ModelParameters,
			Data: promptData{
				Instruction:  r.Instruction,
				InputPrefix:  r.InputPrefix,
				OutputPrefix: r.OutputPrefix,
			},
		},
	}
	if r.TaskID != "" {
		p.TaskIDs = []string{r.TaskID}
	}
	if len(r.PromptVariables) > 0 {
		p.PromptVariables = make(map[string]string, len(r.PromptVariables))
		for _, name := range r.PromptVariables {
			p.PromptVariables[name] = ""
		}
	}
	if r.InputText != "" {
		p.Prompt.Input = [][]string{{r.InputText, ""}}
	}
	return p
}

func newExternalInformation(e ExternalInformation) *externalInformation {
	info := &externalInformation{
		ExternalPromptID:      e.PromptID,
		ExternalModelID:       e.ModelID,
		ExternalModelProvider: e.ModelProvider,
	}
	if e.PromptURL != "" || len(e.AdditionalInfo) > 0 {
		info.ExternalPrompt = &externalPrompt{URL: e.PromptURL, AdditionalInformation: e.AdditionalInfo}
	}
	if e.ModelName != "" || e.ModelURL != "" {
		info.ExternalModel = &externalModel{Name: e.ModelName, URL: e.ModelURL}
	}
	return info
}
