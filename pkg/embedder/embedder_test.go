package embedder

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingClient answers every text with a fixed vector, failing the
// first failures calls, and counts Embed invocations.
type countingClient struct {
	mu       sync.Mutex
	calls    int
	embedded int
	failures int
	failWith error
}

func (c *countingClient) Embed(_ context.Context, texts []string) ([][]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.failures > 0 {
		c.failures--
		if c.failWith != nil {
			return nil, c.failWith
		}
		return nil, errors.New("transient provider failure")
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 2, 3}
	}
	c.embedded += len(texts)
	return out, nil
}

func (c *countingClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vecs, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (c *countingClient) Dimensions() int { return 3 }
func (c *countingClient) Close() error    { return nil }

func TestChunk(t *testing.T) {
	texts := make([]string, 250)
	batches := chunk(texts, DefaultBatchSize)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 100)
	assert.Len(t, batches[2], 50)

	assert.Nil(t, chunk(nil, 100))
	assert.Len(t, chunk(make([]string, 100), 100), 1)

	// Non-positive size falls back to the default.
	assert.Len(t, chunk(texts, 0), 3)
}
