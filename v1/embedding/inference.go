package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labrador-ai/watsonx/v1/auth"
	"github.com/labrador-ai/watsonx/v1/restclient"
)

const embeddingsPath = "/ml/v1/text/embeddings"

type inferenceProvider struct {
	rest      *restclient.Client
	version   string
	modelID   string
	projectID string
	spaceID   string
	truncate  int
}

type embeddingRequest struct {
	Inputs     []string            `json:"inputs"`
	ModelID    string              `json:"model_id"`
	ProjectID  string              `json:"project_id,omitempty"`
	SpaceID    string              `json:"space_id,omitempty"`
	Parameters embeddingParameters `json:"parameters"`
}

type embeddingParameters struct {
	TruncateInputTokens int           `json:"truncate_input_tokens"`
	ReturnOptions       returnOptions `json:"return_options"`
}

type returnOptions struct {
	InputText bool `json:"input_text"`
}

type embeddingResponse struct {
	ModelID string `json:"model_id"`
	Results []struct {
		Embedding Embedding `json:"embedding"`
	} `json:"results"`
	InputTokenCount int `json:"input_token_count"`
}

func newInferenceProvider(cfg *Config) (*inferenceProvider, error) {
	iam, err := auth.NewIAMAuthenticator(auth.IAMConfig{
		APIKey:     cfg.APIKey,
		URL:        cfg.IAMURL,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	rest, err := restclient.New(restclient.Config{
		Component:     "embedding",
		BaseURL:       cfg.URL,
		Authenticator: iam,
		HTTPClient:    cfg.HTTPClient,
		Timeout:       cfg.Timeout,
		Observer:      cfg.Observer,
	})
	if err != nil {
		return nil, err
	}

	p := &inferenceProvider{
		rest:     rest,
		version:  cfg.Version,
		modelID:  cfg.ModelID,
		truncate: cfg.TruncateInputTokens,
	}
	if p.version == "" {
		p.version = DefaultVersion
	}
	if p.modelID == "" {
		p.modelID = DefaultModelID
	}
	if p.truncate == 0 {
		p.truncate = DefaultTruncateInputTokens
	}
	if cfg.ProjectID != "" {
		p.projectID = cfg.ProjectID
	} else {
		p.spaceID = cfg.SpaceID
	}
	return p, nil
}

// Embed sends all texts in one request.
func (p *inferenceProvider) Embed(ctx context.Context, texts []string) ([]Embedding, error) {
	var out embeddingResponse
	err := p.rest.Do(ctx, restclient.Request{
		Operation: "embed_texts",
		Method:    http.MethodPost,
		Path:      embeddingsPath,
		Query:     url.Values{"version": {p.version}},
		Body: embeddingRequest{
			Inputs:    texts,
			ModelID:   p.modelID,
			ProjectID: p.projectID,
			SpaceID:   p.spaceID,
			Parameters: embeddingParameters{
				TruncateInputTokens: p.truncate,
				ReturnOptions:       returnOptions{InputText: false},
			},
		},
		Resource: p.modelID,
		Size:     int64(len(texts)),
	}, &out)
	if err != nil {
		return nil, err
	}

	if len(out.Results) != len(texts) {
		return nil, fmt.Errorf("embedding: got %d embeddings for %d texts", len(out.Results), len(texts))
	}
	embeddings := make([]Embedding, len(out.Results))
	for i, r := range out.Results {
		embeddings[i] = r.Embedding
	}
	return embeddings, nil
}
