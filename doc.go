// Package echohome provides graph-augmented retrieval of personalized
// household energy savings advice, built on official UK ECUK 2025
// consumption data.
//
// A knowledge graph of energy categories, fuel types, saving tips and
// house types is paired with a vector index over prose renderings of
// its nodes. A query is matched semantically, re-ranked by graph
// centrality, expanded into its local subgraph, and the tips it
// surfaces are re-weighted for the asker's dwelling before the result
// is rendered into context and explanation text for a downstream
// language model.
//
// The Client type is the main entry point:
//
//	store, _ := graph.Load(graph.SeedGraph())
//	client, _ := echohome.NewClient(ctx, store, embedderClient, nil, nil)
//	result, _ := client.Retrieve(ctx, "How can I cut my heating bills?", nil)
package echohome
