package embedder

import (
	"context"
	"errors"
)

// DefaultBatchSize is the practical per-request cap for embedding
// providers; larger inputs are chunked.
const DefaultBatchSize = 100

// ErrNoEmbeddings is returned when a provider responds successfully but
// yields no vectors.
var ErrNoEmbeddings = errors.New("provider returned no embeddings")

// Client generates embeddings for text.
type Client interface {
	// Embed generates one embedding per input text, in order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedSingle generates an embedding for a single text.
	EmbedSingle(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding dimensionality.
	Dimensions() int

	// Close releases provider resources.
	Close() error
}

// Config holds provider-independent embedding settings.
type Config struct {
	Model      string
	APIKey     string
	BaseURL    string
	BatchSize  int
	Dimensions int
}

// chunk splits texts into batches of at most size.
func chunk(texts []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var batches [][]string
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		batches = append(batches, texts[start:end])
	}
	return batches
}
