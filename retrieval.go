package echohome

import (
	"context"
	"time"

	"github.com/dilshankm/echo-home/pkg/analyzer"
	"github.com/dilshankm/echo-home/pkg/personalize"
	"github.com/dilshankm/echo-home/pkg/telemetry"
	"github.com/dilshankm/echo-home/pkg/types"
)

// Analyze extracts structured entities from a free-text query. When a
// refiner is attached its answer fills fields the patterns left empty;
// refiner failures fall back to the pattern result.
func (c *Client) Analyze(ctx context.Context, query string) types.QueryContext {
	qctx := c.analyzer.Analyze(query)
	if c.refiner == nil {
		return qctx
	}
	refined, err := c.refiner.Refine(ctx, query, qctx)
	if err != nil {
		c.logger.Warn("entity refinement failed, using pattern result", "error", err)
		return qctx
	}
	return refined
}

// Retrieve runs the full retrieval pipeline for one query.
//
// The query is analyzed for entities (unless a context is supplied),
// enhanced with them, and matched against the vector index with
// centrality re-ranking. Matched nodes seed a subgraph expansion and
// path search; tips in the subgraph are personalized for the asker's
// house type and the whole result is rendered into context and
// explanation text. An empty match set short-circuits to an empty
// result rather than an error.
func (c *Client) Retrieve(ctx context.Context, query string, qctx *types.QueryContext) (*types.RetrievalResult, error) {
	start := time.Now()

	var entities types.QueryContext
	if qctx != nil {
		entities = qctx.WithDefaults()
	} else {
		entities = c.Analyze(ctx, query)
	}

	enhanced := analyzer.EnhanceQuery(query, entities)

	matched, err := c.ranker.Rank(ctx, enhanced, c.config.TopK, c.config.MinScore)
	if err != nil {
		return nil, err
	}

	if len(matched) == 0 {
		c.logger.Info("no nodes matched", "query", query)
		result := &types.RetrievalResult{
			MatchedNodes:     []types.ScoredNode{},
			Subgraph:         &types.Subgraph{},
			Paths:            [][]string{},
			PersonalizedTips: []types.PersonalizedTip{},
			ContextText:      personalize.BuildContext(nil, nil, nil, entities, c.houses),
			ExplanationText:  personalize.NoMatchExplanation,
		}
		c.record(query, entities, result, start)
		return result, nil
	}

	seedIDs := make([]string, len(matched))
	for i, sn := range matched {
		seedIDs[i] = sn.Node.ID
	}

	subgraph, paths, err := c.extractor.Extract(ctx, seedIDs)
	if err != nil {
		return nil, err
	}

	tips := c.personalizer.Personalize(subgraph.Nodes, entities)

	result := &types.RetrievalResult{
		MatchedNodes:     matched,
		Subgraph:         subgraph,
		Paths:            paths,
		PersonalizedTips: tips,
		ContextText:      personalize.BuildContext(matched, paths, tips, entities, c.houses),
		ExplanationText:  personalize.BuildExplanation(matched, paths),
	}

	c.logger.Debug("retrieval complete",
		"query", query,
		"matched", len(matched),
		"subgraph_nodes", len(subgraph.Nodes),
		"paths", len(paths),
		"tips", len(tips),
		"duration", time.Since(start))

	c.record(query, entities, result, start)
	return result, nil
}

// record writes one telemetry row when a recorder is attached.
func (c *Client) record(query string, entities types.QueryContext, result *types.RetrievalResult, start time.Time) {
	if c.recorder == nil {
		return
	}
	record := telemetry.QueryRecord{
		Query:        query,
		HouseType:    entities.HouseType,
		Category:     entities.Category,
		Intent:       entities.Intent,
		MatchedNodes: len(result.MatchedNodes),
		Paths:        len(result.Paths),
		Tips:         len(result.PersonalizedTips),
		DurationMs:   time.Since(start).Milliseconds(),
	}
	if result.Subgraph != nil {
		record.SubgraphNodes = len(result.Subgraph.Nodes)
		record.SubgraphEdges = len(result.Subgraph.Edges)
	}
	if len(result.MatchedNodes) > 0 {
		record.TopScore = result.MatchedNodes[0].Score
	}
	c.recorder.Record(record)
}
