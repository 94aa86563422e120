// Package graph implements the knowledge-graph store for echo-home.
//
// The primary implementation is MemoryStore: an immutable-after-load
// directed multigraph held in adjacency lists over an arena of nodes.
// Lookup, neighbor, k-hop, path and centrality queries are all total:
// unknown ids degrade to empty results rather than errors, because
// callers may hold stale ids from the vector index.
//
// PageRank centrality is computed once at load time and cached; the
// graph never changes afterwards, so queries need no locking and are
// safe for arbitrary concurrency.
//
// A read-only Neo4j-backed Store is provided for deployments that keep
// the energy graph in a database instead of loading the seed dataset
// in-process. Both implementations satisfy the Store interface.
package graph
