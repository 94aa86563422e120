// Package search combines vector similarity with graph topology.
//
// The Ranker re-scores vector-index candidates with a hybrid score
// blending cosine similarity and cached graph centrality, then filters
// and truncates. The Extractor expands the surviving seed set into an
// induced k-hop subgraph and collects short connecting paths between
// seeds for explanation.
//
// Both are stateless compositions over the graph store and vector
// index; every call is independent and concurrency-safe.
package search
