package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (endpoints, HTTP, IAM tokens)
// from the application layer.
type Client struct {
	provider Provider
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the inference provider.
// No request is made until the first embedding call.
func NewClient(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newInferenceProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p}, nil
}

// NewClientWithProvider returns a Client backed by p.
func NewClientWithProvider(p Provider) *Client {
	return &Client{provider: p}
}

// GetQueryEmbedding returns the embedding of one query.
func (c *Client) GetQueryEmbedding(ctx context.Context, query string) (Embedding, error) {
	embeddings, err := c.GetTextsEmbedding(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// GetTextsEmbedding returns one embedding per text, in order.
// An empty input returns an empty result without a request.
func (c *Client) GetTextsEmbedding(ctx context.Context, texts []string) ([]Embedding, error) {
	if len(texts) == 0 {
		return []Embedding{}, nil
	}
	embeddings, err := c.provider.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding: got %d embeddings for %d texts", len(embeddings), len(texts))
	}
	return embeddings, nil
}

// GetDocumentsEmbedding returns one embedding per document content, in order.
func (c *Client) GetDocumentsEmbedding(ctx context.Context, docs []Document) ([]Embedding, error) {
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content()
	}
	return c.GetTextsEmbedding(ctx, texts)
}

// EmbedDocuments is GetTextsEmbedding under the name used by retrieval pipelines.
func (c *Client) EmbedDocuments(ctx context.Context, texts []string) ([]Embedding, error) {
	return c.GetTextsEmbedding(ctx, texts)
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
