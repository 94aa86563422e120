package echohome

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dilshankm/echo-home/pkg/analyzer"
	"github.com/dilshankm/echo-home/pkg/embedder"
	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/index"
	"github.com/dilshankm/echo-home/pkg/personalize"
	"github.com/dilshankm/echo-home/pkg/search"
	"github.com/dilshankm/echo-home/pkg/telemetry"
	"github.com/dilshankm/echo-home/pkg/types"
)

// Coach is the main interface for retrieving personalized energy
// savings advice from the knowledge graph.
type Coach interface {
	// Retrieve runs the full pipeline for one query: entity analysis,
	// hybrid ranking, subgraph extraction, personalization and text
	// building. A nil QueryContext means entities are extracted from
	// the query text.
	Retrieve(ctx context.Context, query string, qctx *types.QueryContext) (*types.RetrievalResult, error)

	// Analyze extracts structured entities from a free-text query
	// without running retrieval.
	Analyze(ctx context.Context, query string) types.QueryContext

	// Stats summarizes the loaded knowledge graph.
	Stats(ctx context.Context) (*types.GraphStats, error)

	// Close releases the embedder and flushes telemetry.
	Close() error
}

// Config holds tuning parameters for the Client.
type Config struct {
	// TopK is how many matched nodes ranking returns.
	TopK int
	// MinScore filters hybrid scores below the threshold.
	MinScore float64
	// Hops is the subgraph expansion radius around matched nodes.
	Hops int
	// MaxPathLength bounds connecting paths between matched nodes.
	MaxPathLength int
}

// Retrieval defaults.
const (
	DefaultTopK     = 10
	DefaultMinScore = 0.3
)

// DefaultConfig returns the standard retrieval configuration.
func DefaultConfig() *Config {
	return &Config{
		TopK:          DefaultTopK,
		MinScore:      DefaultMinScore,
		Hops:          search.DefaultHops,
		MaxPathLength: search.DefaultMaxPathLength,
	}
}

// Client is the main implementation of the Coach interface.
type Client struct {
	store        graph.Store
	embedder     embedder.Client
	index        *index.FlatIndex
	ranker       *search.Ranker
	extractor    *search.Extractor
	analyzer     *analyzer.Analyzer
	refiner      *analyzer.LLMRefiner
	personalizer *personalize.Personalizer
	houses       *houseDirectory
	recorder     *telemetry.Recorder
	config       *Config
	logger       *slog.Logger
}

var _ Coach = (*Client)(nil)

// ErrNoEmbedder is returned when NewClient is given a nil embedder.
var ErrNoEmbedder = errors.New("embedder client is required")

// NewClient builds a Client over the given store, embedding the whole
// corpus up front. Construction fails if the index cannot be built.
func NewClient(ctx context.Context, store graph.Store, embedderClient embedder.Client, config *Config, logger *slog.Logger) (*Client, error) {
	if embedderClient == nil {
		return nil, ErrNoEmbedder
	}
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	ids, texts, err := index.RenderCorpus(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("rendering corpus: %w", err)
	}
	idx, err := index.Build(ctx, embedderClient, ids, texts)
	if err != nil {
		return nil, err
	}
	logger.Info("vector index built", "nodes", idx.Size(), "dimensions", idx.Dimensions())

	houses, err := newHouseDirectory(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("loading house types: %w", err)
	}

	return &Client{
		store:        store,
		embedder:     embedderClient,
		index:        idx,
		ranker:       search.NewRanker(store, idx),
		extractor:    search.NewExtractor(store, config.Hops, config.MaxPathLength),
		analyzer:     analyzer.New(),
		personalizer: personalize.New(houses),
		houses:       houses,
		config:       config,
		logger:       logger,
	}, nil
}

// WithRefiner attaches an optional LLM entity refiner consulted after
// pattern analysis.
func (c *Client) WithRefiner(refiner *analyzer.LLMRefiner) *Client {
	c.refiner = refiner
	return c
}

// WithRecorder attaches an optional telemetry recorder.
func (c *Client) WithRecorder(recorder *telemetry.Recorder) *Client {
	c.recorder = recorder
	return c
}

// Stats summarizes the loaded knowledge graph.
func (c *Client) Stats(ctx context.Context) (*types.GraphStats, error) {
	return c.store.Stats(ctx)
}

// Store returns the underlying graph store.
func (c *Client) Store() graph.Store {
	return c.store
}

// Index returns the vector index.
func (c *Client) Index() *index.FlatIndex {
	return c.index
}

// Close releases the embedder and flushes telemetry.
func (c *Client) Close() error {
	if c.recorder != nil {
		c.recorder.Flush()
	}
	return c.embedder.Close()
}

// houseDirectory resolves house type names against the loaded graph.
// It backs both personalization factors and context facts.
type houseDirectory struct {
	byType map[string]*types.HouseType
}

func newHouseDirectory(ctx context.Context, store graph.Store) (*houseDirectory, error) {
	nodes, err := store.GetNodesByLabel(ctx, types.HouseTypeLabel)
	if err != nil {
		return nil, err
	}
	d := &houseDirectory{byType: make(map[string]*types.HouseType, len(nodes))}
	for _, n := range nodes {
		if n.HouseType != nil {
			d.byType[n.HouseType.Type] = n.HouseType
		}
	}
	return d, nil
}

// HeatingFactor implements personalize.HouseFactors.
func (d *houseDirectory) HeatingFactor(houseType string) (float64, bool) {
	ht, ok := d.byType[houseType]
	if !ok {
		return 0, false
	}
	return ht.HeatingFactor, true
}

// HouseType implements personalize.HouseFacts.
func (d *houseDirectory) HouseType(name string) *types.HouseType {
	return d.byType[name]
}
