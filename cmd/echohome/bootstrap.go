package echohome

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	echohome "github.com/dilshankm/echo-home"
	"github.com/dilshankm/echo-home/pkg/analyzer"
	"github.com/dilshankm/echo-home/pkg/config"
	"github.com/dilshankm/echo-home/pkg/embedder"
	"github.com/dilshankm/echo-home/pkg/generator"
	"github.com/dilshankm/echo-home/pkg/graph"
	"github.com/dilshankm/echo-home/pkg/logger"
	"github.com/dilshankm/echo-home/pkg/telemetry"
)

// buildCoach assembles the full client from configuration: graph store,
// embedder chain, vector index, and optional refiner and telemetry.
// The returned cleanup releases everything the build opened.
func buildCoach(ctx context.Context, cfg *config.Config) (*echohome.Client, *slog.Logger, func(), error) {
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}

	embedderClient, err := buildEmbedder(cfg)
	if err != nil {
		closeStore()
		return nil, nil, nil, err
	}

	client, err := echohome.NewClient(ctx, store, embedderClient, &echohome.Config{
		TopK:          cfg.Retrieval.TopK,
		MinScore:      cfg.Retrieval.MinScore,
		Hops:          cfg.Retrieval.SubgraphHops,
		MaxPathLength: cfg.Retrieval.MaxPathLength,
	}, log)
	if err != nil {
		embedderClient.Close()
		closeStore()
		return nil, nil, nil, err
	}

	if cfg.Chat.Enabled && cfg.Chat.APIKey != "" {
		client.WithRefiner(analyzer.NewLLMRefiner(chatClient(cfg), cfg.Chat.Model))
	}

	if cfg.Telemetry.Enabled {
		recorder, err := telemetry.NewRecorder(cfg.Telemetry.ParquetPath, log)
		if err != nil {
			log.Warn("telemetry disabled", "error", err)
		} else {
			client.WithRecorder(recorder)
		}
	}

	cleanup := func() {
		client.Close()
		closeStore()
	}
	return client, log, cleanup, nil
}

// openStore opens the configured graph source.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (graph.Store, func(), error) {
	if log == nil {
		log = slog.Default()
	}
	switch cfg.Graph.Source {
	case "", "builtin":
		store, err := graph.Load(graph.SeedGraph())
		if err != nil {
			return nil, nil, fmt.Errorf("loading builtin graph: %w", err)
		}
		return store, func() {}, nil

	case "file":
		store, err := graph.LoadFile(cfg.Graph.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading graph file %s: %w", cfg.Graph.Path, err)
		}
		return store, func() {}, nil

	case "neo4j":
		store, err := graph.NewNeo4jStore(cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password, cfg.Graph.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to neo4j: %w", err)
		}
		closeStore := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				log.Warn("closing neo4j store", "error", err)
			}
		}
		return store, closeStore, nil

	default:
		return nil, nil, fmt.Errorf("unsupported graph source: %s", cfg.Graph.Source)
	}
}

// buildEmbedder builds the configured provider wrapped with retries,
// circuit breaking and optional on-disk caching.
func buildEmbedder(cfg *config.Config) (embedder.Client, error) {
	econf := embedder.Config{
		Model:   cfg.Embedding.Model,
		APIKey:  cfg.Embedding.APIKey,
		BaseURL: cfg.Embedding.BaseURL,
	}

	var client embedder.Client
	var err error
	switch cfg.Embedding.Provider {
	case "openai":
		client, err = embedder.NewOpenAIClient(econf)
	case "", "local":
		client, err = embedder.NewLocalClient(econf)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Embedding.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	retryConf := embedder.DefaultRetryConfig()
	if cfg.Embedding.MaxRetries > 0 {
		retryConf.MaxRetries = cfg.Embedding.MaxRetries
	}
	if cfg.Embedding.TimeoutSec > 0 {
		retryConf.Timeout = time.Duration(cfg.Embedding.TimeoutSec) * time.Second
	}
	client = embedder.NewRetryClient(client, retryConf)

	if cfg.CircuitBreaker.Enabled {
		client = embedder.NewBreakerClient(client, embedder.BreakerConfig{
			MaxRequests:      cfg.CircuitBreaker.MaxRequests,
			Interval:         time.Duration(cfg.CircuitBreaker.Interval) * time.Second,
			Timeout:          time.Duration(cfg.CircuitBreaker.Timeout) * time.Second,
			ReadyToTripRatio: cfg.CircuitBreaker.ReadyToTripRatio,
		})
	}

	if cfg.Embedding.CachePath != "" {
		client, err = embedder.NewCachedClient(client, cfg.Embedding.CachePath, cfg.Embedding.Model)
		if err != nil {
			return nil, fmt.Errorf("opening embedding cache: %w", err)
		}
	}

	return client, nil
}

// chatClient creates the OpenAI-compatible chat client.
func chatClient(cfg *config.Config) *openai.Client {
	if cfg.Chat.BaseURL != "" {
		c := openai.DefaultConfig(cfg.Chat.APIKey)
		c.BaseURL = cfg.Chat.BaseURL
		return openai.NewClientWithConfig(c)
	}
	return openai.NewClient(cfg.Chat.APIKey)
}

// buildGenerator creates the response generator; without chat enabled
// it runs in template-fallback mode.
func buildGenerator(cfg *config.Config, log *slog.Logger) *generator.Generator {
	var client *openai.Client
	if cfg.Chat.Enabled && cfg.Chat.APIKey != "" {
		client = chatClient(cfg)
	}
	return generator.New(client, generator.Config{
		Model:       cfg.Chat.Model,
		Temperature: cfg.Chat.Temperature,
		MaxTokens:   cfg.Chat.MaxTokens,
	}, log)
}
