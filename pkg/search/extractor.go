package search

import (
	"context"

	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/types"
)

// Extraction defaults.
const (
	// DefaultHops is how far the induced subgraph reaches around the
	// matched seed set.
	DefaultHops = 2
	// DefaultMaxPathLength bounds connecting paths between seeds;
	// longer chains stop explaining anything in a graph this shallow.
	DefaultMaxPathLength = 4
)

// Extractor expands a ranked seed set into its local subgraph and the
// short paths that connect the seeds to each other.
type Extractor struct {
	store   graph.Store
	hops    int
	pathLen int
}

// NewExtractor builds an Extractor; non-positive hops or maxPathLength
// select the defaults.
func NewExtractor(store graph.Store, hops, maxPathLength int) *Extractor {
	if hops <= 0 {
		hops = DefaultHops
	}
	if maxPathLength <= 0 {
		maxPathLength = DefaultMaxPathLength
	}
	return &Extractor{store: store, hops: hops, pathLen: maxPathLength}
}

// Extract returns the induced k-hop subgraph around seedIDs plus every
// simple path of at most the configured length between each unordered
// pair of seeds. Paths found for different pairs are kept as found,
// with no global dedup.
func (e *Extractor) Extract(ctx context.Context, seedIDs []string) (*types.Subgraph, [][]string, error) {
	sub, err := e.store.KHopSubgraph(ctx, seedIDs, e.hops)
	if err != nil {
		return nil, nil, err
	}

	var paths [][]string
	for i := 0; i < len(seedIDs); i++ {
		for j := i + 1; j < len(seedIDs); j++ {
			found, err := e.store.FindPaths(ctx, seedIDs[i], seedIDs[j], e.pathLen)
			if err != nil {
				return nil, nil, err
			}
			paths = append(paths, found...)
		}
	}
	return sub, paths, nil
}
