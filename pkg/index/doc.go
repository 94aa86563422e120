// Package index provides the vector similarity index over graph-node
// embeddings.
//
// Each node is rendered to prose (its typed properties plus a summary
// of its 1-hop neighborhood) and embedded once at build time. Vectors
// are L2-normalized on the way in, so exact nearest-neighbor search
// reduces to an inner-product scan and scores are true cosine
// similarities in [-1, 1].
//
// FlatIndex is a brute-force exact index, which is the right trade at
// this graph's scale; the Index interface lets an approximate
// implementation slot in without touching callers.
package index
