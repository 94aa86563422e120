package embedder

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerConfig holds circuit breaker settings for the embedding
// provider.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	ReadyToTripRatio float64
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          30 * time.Second,
		ReadyToTripRatio: 0.6,
	}
}

// BreakerClient wraps a Client with a circuit breaker. Once the
// provider fails often enough the breaker opens and calls fail fast
// until the cool-down elapses, instead of stacking up timeouts.
type BreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker
}

var _ Client = (*BreakerClient)(nil)

// NewBreakerClient wraps client with a circuit breaker.
func NewBreakerClient(client Client, config BreakerConfig) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        "embedding-provider",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= config.ReadyToTripRatio
		},
	}
	return &BreakerClient{
		client: client,
		cb:     gobreaker.NewCircuitBreaker(settings),
	}
}

// Embed implements Client through the breaker.
func (b *BreakerClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return b.client.Embed(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return result.([][]float32), nil
}

// EmbedSingle implements Client through the breaker.
func (b *BreakerClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	result, err := b.cb.Execute(func() (any, error) {
		return b.client.EmbedSingle(ctx, text)
	})
	if err != nil {
		return nil, err
	}
	return result.([]float32), nil
}

// Dimensions returns the wrapped client's dimensionality.
func (b *BreakerClient) Dimensions() int { return b.client.Dimensions() }

// Close closes the wrapped client.
func (b *BreakerClient) Close() error { return b.client.Close() }
