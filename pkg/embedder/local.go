package embedder

import (
	"context"
	"fmt"

	"github.com/soundprediction/go-embedeverything/pkg/embedder"
)

// LocalClient implements Client over an in-process embedding model,
// useful for development without an API key and for offline tests.
type LocalClient struct {
	client *embedder.Embedder
	config Config
}

var _ Client = (*LocalClient)(nil)

// NewLocalClient loads a local embedding model by name.
func NewLocalClient(config Config) (*LocalClient, error) {
	client, err := embedder.NewEmbedder(config.Model)
	if err != nil {
		return nil, fmt.Errorf("load local embedder: %w", err)
	}
	return &LocalClient{client: client, config: config}, nil
}

// Embed generates embeddings for the given texts.
func (c *LocalClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	// The local model does not take a context; honor cancellation
	// before committing to the call.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	embeddings, err := c.client.Embed(texts)
	if err != nil {
		return nil, fmt.Errorf("local embeddings: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, ErrNoEmbeddings
	}
	return embeddings, nil
}

// EmbedSingle generates an embedding for a single text.
func (c *LocalClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// Dimensions returns the embedding dimensionality.
func (c *LocalClient) Dimensions() int {
	return c.config.Dimensions
}

// Close unloads the local model.
func (c *LocalClient) Close() error {
	c.client.Close()
	return nil
}
