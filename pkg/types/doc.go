// Package types defines the core data model shared across echo-home:
// knowledge-graph nodes and edges, query context, and retrieval results.
//
// Nodes form a tagged union keyed by Label. Every node carries the shared
// (ID, Label) pair plus exactly one populated label-specific struct
// (Category, FuelType, Tip or HouseType). Label-specific fields are
// validated when the graph is loaded, so downstream ranking and
// personalization code can rely on them being well formed.
//
// All types in this package are plain values. The graph itself is
// immutable once loaded; per-query artifacts (RetrievalResult,
// PersonalizedTip) are created per call and discarded after use.
package types
