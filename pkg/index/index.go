package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/dilshankm/echo-home/pkg/embedder"
	"github.com/dilshankm/echo-home/pkg/types"
	"github.com/dilshankm/echo-home/pkg/utils"
)

// Hit is one nearest-neighbor result: a node id with its cosine
// similarity to the query in [-1, 1].
type Hit struct {
	NodeID     string
	Similarity float64
}

// Index is the vector search surface. Implementations are immutable
// after Build and safe for concurrent Search calls.
type Index interface {
	// Search embeds the query and returns the topK most similar node
	// ids, most similar first.
	Search(ctx context.Context, query string, topK int) ([]Hit, error)

	// Size returns the number of indexed vectors.
	Size() int
}

// FlatIndex is an exact brute-force cosine index over L2-normalized
// node embeddings.
type FlatIndex struct {
	embedder embedder.Client
	ids      []string
	vectors  [][]float32
	dim      int
}

var _ Index = (*FlatIndex)(nil)

// Build embeds the given (id, text) corpus and constructs the index.
// The build is synchronous and happens once at startup; provider
// failures and empty results surface as *types.IndexBuildError.
func Build(ctx context.Context, client embedder.Client, ids, texts []string) (*FlatIndex, error) {
	if len(ids) != len(texts) {
		return nil, &types.IndexBuildError{Err: fmt.Errorf("got %d ids for %d texts", len(ids), len(texts))}
	}
	if len(ids) == 0 {
		return nil, &types.IndexBuildError{Err: fmt.Errorf("empty corpus")}
	}

	embeddings, err := client.Embed(ctx, texts)
	if err != nil {
		return nil, &types.IndexBuildError{Err: err}
	}
	if len(embeddings) != len(ids) {
		return nil, &types.IndexBuildError{Err: fmt.Errorf("got %d vectors for %d texts", len(embeddings), len(ids))}
	}

	idx := &FlatIndex{
		embedder: client,
		ids:      make([]string, 0, len(ids)),
		vectors:  make([][]float32, 0, len(ids)),
	}
	for i, raw := range embeddings {
		vec := utils.Normalize(raw)
		if vec == nil {
			return nil, &types.IndexBuildError{Err: fmt.Errorf("zero-magnitude embedding for node %s", ids[i])}
		}
		if idx.dim == 0 {
			idx.dim = len(vec)
		} else if len(vec) != idx.dim {
			return nil, &types.IndexBuildError{Err: fmt.Errorf("dimension mismatch for node %s: %d != %d", ids[i], len(vec), idx.dim)}
		}
		idx.ids = append(idx.ids, ids[i])
		idx.vectors = append(idx.vectors, vec)
	}
	return idx, nil
}

// Search embeds and normalizes the query, then scans all vectors.
// Inner product over unit vectors is cosine similarity, so hits come
// back as true cosine scores.
func (idx *FlatIndex) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	if topK <= 0 {
		return nil, nil
	}

	raw, err := idx.embedder.EmbedSingle(ctx, strings.ReplaceAll(query, "\n", " "))
	if err != nil {
		return nil, err
	}
	queryVec := utils.Normalize(raw)
	if queryVec == nil {
		return nil, fmt.Errorf("query produced a zero-magnitude embedding")
	}

	scored := make([]utils.ScoredItem[string], len(idx.vectors))
	for i, vec := range idx.vectors {
		scored[i] = utils.ScoredItem[string]{Item: idx.ids[i], Score: utils.Dot(queryVec, vec)}
	}

	top := utils.TopKByScore(scored, topK)
	hits := make([]Hit, len(top))
	for i, item := range top {
		hits[i] = Hit{NodeID: item.Item, Similarity: item.Score}
	}
	return hits, nil
}

// Size returns the number of indexed vectors.
func (idx *FlatIndex) Size() int {
	return len(idx.ids)
}

// Dimensions returns the uniform vector dimensionality.
func (idx *FlatIndex) Dimensions() int {
	return idx.dim
}
