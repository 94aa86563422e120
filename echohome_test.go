package echohome

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/types"
)

// topicEmbedder embeds text as binary energy-topic indicators plus a
// constant bias dimension, making similarity deterministic.
type topicEmbedder struct{}

var embedTopics = []string{"heating", "lighting", "appliance", "water", "cooking"}

func (topicEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, len(embedTopics)+1)
		lower := strings.ToLower(text)
		for j, topic := range embedTopics {
			if strings.Contains(lower, topic) {
				vec[j] = 1
			}
		}
		vec[len(embedTopics)] = 0.1
		out[i] = vec
	}
	return out, nil
}

func (e topicEmbedder) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (topicEmbedder) Dimensions() int { return len(embedTopics) + 1 }
func (topicEmbedder) Close() error    { return nil }

// failingEmbedder simulates a dead provider.
type failingEmbedder struct{}

func (failingEmbedder) Embed(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("provider unreachable")
}

func (failingEmbedder) EmbedSingle(context.Context, string) ([]float32, error) {
	return nil, errors.New("provider unreachable")
}

func (failingEmbedder) Dimensions() int { return 6 }
func (failingEmbedder) Close() error    { return nil }

func seedStore(t *testing.T) *graph.MemoryStore {
	t.Helper()
	store, err := graph.Load(graph.SeedGraph())
	require.NoError(t, err)
	return store
}

func newSeedClient(t *testing.T, config *Config) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), seedStore(t), topicEmbedder{}, config, nil)
	require.NoError(t, err)
	return client
}

func TestRetrieveHeatingQueryForFlat(t *testing.T) {
	client := newSeedClient(t, nil)
	ctx := context.Background()

	result, err := client.Retrieve(ctx, "I have high heating costs in my 2-bed flat", nil)
	require.NoError(t, err)
	require.False(t, result.Empty())

	// Heating nodes dominate the match set.
	var sawThermostatTip bool
	for _, sn := range result.MatchedNodes {
		if sn.Node.ID == "tip_thermostat" {
			sawThermostatTip = true
		}
	}
	assert.True(t, sawThermostatTip, "thermostat tip should rank within the top matches")

	// Scores are sorted and within the hybrid range.
	for i, sn := range result.MatchedNodes {
		assert.GreaterOrEqual(t, sn.Score, DefaultMinScore)
		assert.LessOrEqual(t, sn.Score, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, sn.Score, result.MatchedNodes[i-1].Score)
		}
	}

	// Heating savings carry the flat's 0.8 factor; other categories
	// keep their raw figures.
	require.NotEmpty(t, result.PersonalizedTips)
	var thermostat, lighting *types.PersonalizedTip
	for i := range result.PersonalizedTips {
		tip := &result.PersonalizedTips[i]
		switch {
		case tip.ID == "tip_thermostat":
			thermostat = tip
		case tip.Category == "lighting" && lighting == nil:
			lighting = tip
		}
	}
	require.NotNil(t, thermostat)
	assert.InDelta(t, 36, thermostat.PersonalizedSavingsGBP, 1e-9)
	assert.InDelta(t, 45, thermostat.SavingsGBP, 1e-9)
	assert.InDelta(t, 36, thermostat.ROI, 1e-9)
	if lighting != nil {
		assert.InDelta(t, lighting.SavingsGBP, lighting.PersonalizedSavingsGBP, 1e-9)
	}

	// Tips come back best return-for-effort first.
	for i := 1; i < len(result.PersonalizedTips); i++ {
		assert.GreaterOrEqual(t, result.PersonalizedTips[i-1].ROI, result.PersonalizedTips[i].ROI)
	}

	assert.NotNil(t, result.Subgraph)
	assert.NotEmpty(t, result.Subgraph.Nodes)
	assert.Contains(t, result.ContextText, "flat")
	assert.Contains(t, result.ExplanationText, "relevant nodes")
}

func TestRetrieveWithExplicitContext(t *testing.T) {
	client := newSeedClient(t, nil)

	qctx := &types.QueryContext{HouseType: "detached", Category: "heating"}
	result, err := client.Retrieve(context.Background(), "how can I save on heating?", qctx)
	require.NoError(t, err)
	require.False(t, result.Empty())

	for _, tip := range result.PersonalizedTips {
		if tip.ID == "tip_thermostat" {
			// 45 scaled by the detached factor of 1.2.
			assert.InDelta(t, 54, tip.PersonalizedSavingsGBP, 1e-9)
			return
		}
	}
	t.Fatal("thermostat tip missing from personalized results")
}

func TestRetrieveNoMatches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinScore = 0.8
	client := newSeedClient(t, cfg)

	result, err := client.Retrieve(context.Background(), "recommend me a holiday destination", nil)
	require.NoError(t, err)
	assert.True(t, result.Empty())
	assert.Empty(t, result.MatchedNodes)
	assert.Empty(t, result.PersonalizedTips)
	assert.Empty(t, result.Paths)
	assert.Equal(t, "No matching nodes found", result.ExplanationText)
}

func TestRetrieveTopKExceedsGraph(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopK = 500
	client := newSeedClient(t, cfg)

	result, err := client.Retrieve(context.Background(), "heating advice", nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.MatchedNodes), client.Index().Size())
	assert.NotEmpty(t, result.MatchedNodes)
}

func TestAnalyzeExtractsEntities(t *testing.T) {
	client := newSeedClient(t, nil)

	qctx := client.Analyze(context.Background(), "my 3 bedroom terraced house has huge heating bills")
	assert.Equal(t, "terraced", qctx.HouseType)
	assert.Equal(t, 3, qctx.Bedrooms)
	assert.Equal(t, "heating", qctx.Category)
}

func TestStatsReportsSeedGraph(t *testing.T) {
	client := newSeedClient(t, nil)

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 39, stats.TotalNodes)
	assert.Equal(t, 145, stats.TotalEdges)
}

func TestNewClientRequiresEmbedder(t *testing.T) {
	_, err := NewClient(context.Background(), seedStore(t), nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoEmbedder)
}

func TestNewClientSurfacesIndexBuildFailure(t *testing.T) {
	_, err := NewClient(context.Background(), seedStore(t), failingEmbedder{}, nil, nil)
	require.Error(t, err)

	var buildErr *types.IndexBuildError
	assert.ErrorAs(t, err, &buildErr)
}

func TestCloseIsIdempotentWithoutRecorder(t *testing.T) {
	client := newSeedClient(t, nil)
	assert.NoError(t, client.Close())
}
