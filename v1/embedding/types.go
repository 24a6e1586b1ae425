package embedding

import "context"

// Embedding is the vector of one text.
type Embedding []float64

// Document is a text with optional metadata.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// Content returns the text embedded for the document.
func (d Document) Content() string {
	return d.Text
}

// Provider computes embeddings for a batch of texts, in order.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([]Embedding, error)
}
