package embedder

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	badger "github.com/dgraph-io/badger/v4"
)

// CachedClient wraps a Client with a badger-backed embedding cache
// keyed by (model, content hash). Node texts rarely change between
// process restarts, so a warm cache makes index rebuilds free of
// provider round trips.
type CachedClient struct {
	client Client
	db     *badger.DB
	model  string
}

var _ Client = (*CachedClient)(nil)

// NewCachedClient opens (or creates) a badger store at dir and wraps
// client with it. The model name namespaces cache keys so switching
// models never serves stale vectors.
func NewCachedClient(client Client, dir, model string) (*CachedClient, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open embedding cache: %w", err)
	}
	return &CachedClient{client: client, db: db, model: model}, nil
}

// Embed serves cached vectors where possible and fetches only the
// misses from the wrapped client, preserving input order.
func (c *CachedClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int

	err := c.db.View(func(txn *badger.Txn) error {
		for i, text := range texts {
			item, err := txn.Get(c.key(text))
			if err == badger.ErrKeyNotFound {
				missing = append(missing, text)
				missingIdx = append(missingIdx, i)
				continue
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				embeddings[i] = decodeVector(val)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read embedding cache: %w", err)
	}

	if len(missing) > 0 {
		fetched, err := c.client.Embed(ctx, missing)
		if err != nil {
			return nil, err
		}
		if len(fetched) != len(missing) {
			return nil, fmt.Errorf("embedding cache: got %d vectors for %d texts", len(fetched), len(missing))
		}
		err = c.db.Update(func(txn *badger.Txn) error {
			for i, vec := range fetched {
				embeddings[missingIdx[i]] = vec
				if err := txn.Set(c.key(missing[i]), encodeVector(vec)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("write embedding cache: %w", err)
		}
	}

	return embeddings, nil
}

// EmbedSingle serves a single embedding through the cache.
func (c *CachedClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := c.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// Dimensions returns the wrapped client's dimensionality.
func (c *CachedClient) Dimensions() int { return c.client.Dimensions() }

// Close closes the cache store and the wrapped client.
func (c *CachedClient) Close() error {
	if err := c.db.Close(); err != nil {
		c.client.Close()
		return err
	}
	return c.client.Close()
}

func (c *CachedClient) key(text string) []byte {
	h := sha256.Sum256([]byte(c.model + "\x00" + text))
	return h[:]
}

func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(buf []byte) []float32 {
	vec := make([]float32, len(buf)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return vec
}
