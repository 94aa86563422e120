package embedder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, inner Client) *CachedClient {
	t.Helper()
	client, err := NewCachedClient(inner, t.TempDir(), "test-model")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCacheServesRepeatedTexts(t *testing.T) {
	inner := &countingClient{}
	client := newTestCache(t, inner)
	ctx := context.Background()

	first, err := client.Embed(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 2, inner.embedded)

	second, err := client.Embed(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, inner.embedded, "second call is fully cached")
}

func TestCachePartialMiss(t *testing.T) {
	inner := &countingClient{}
	client := newTestCache(t, inner)
	ctx := context.Background()

	_, err := client.Embed(ctx, []string{"a"})
	require.NoError(t, err)
	require.Equal(t, 1, inner.embedded)

	vecs, err := client.Embed(ctx, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vecs, 3)
	assert.Equal(t, 3, inner.embedded, "only the two misses hit the provider")
	for _, v := range vecs {
		assert.Equal(t, []float32{1, 2, 3}, v)
	}
}

func TestCacheEmptyInput(t *testing.T) {
	client := newTestCache(t, &countingClient{})

	vecs, err := client.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
}

func TestVectorRoundTrip(t *testing.T) {
	vec := []float32{0.5, -1.25, 3e7, 0}
	assert.Equal(t, vec, decodeVector(encodeVector(vec)))
}
