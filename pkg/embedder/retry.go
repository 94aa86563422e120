package embedder

import (
	"context"
	"errors"
	"time"

	"github.com/dilshankm/echo-home/pkg/types"
)

// RetryConfig holds retry behavior for embedding calls.
type RetryConfig struct {
	// MaxRetries is the number of retry attempts after the first call.
	MaxRetries int
	// InitialDelay before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
	// BackoffMultiplier scales the delay each attempt.
	BackoffMultiplier float64
	// Timeout bounds each individual provider call.
	Timeout time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		InitialDelay:      time.Second,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2.0,
		Timeout:           30 * time.Second,
	}
}

// RetryClient wraps a Client with per-call timeouts and bounded retries
// with exponential backoff. Exhausting the budget surfaces a
// *types.ProviderTimeoutError so callers can fail just the affected
// query.
type RetryClient struct {
	client Client
	config RetryConfig
}

var _ Client = (*RetryClient)(nil)

// NewRetryClient wraps client with retry behavior.
func NewRetryClient(client Client, config RetryConfig) *RetryClient {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = time.Second
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.BackoffMultiplier <= 0 {
		config.BackoffMultiplier = 2.0
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &RetryClient{client: client, config: config}
}

// Embed implements Client with retries.
func (r *RetryClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(r.delay(attempt)):
			case <-ctx.Done():
				return nil, &types.ProviderTimeoutError{Attempts: attempt, Err: ctx.Err()}
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
		embeddings, err := r.client.Embed(callCtx, texts)
		cancel()
		if err == nil {
			return embeddings, nil
		}
		lastErr = err

		// The parent context expiring means the caller is gone;
		// a per-call timeout is worth retrying.
		if ctx.Err() != nil {
			break
		}
		if !retryable(err) {
			return nil, err
		}
	}

	return nil, &types.ProviderTimeoutError{Attempts: r.config.MaxRetries + 1, Err: lastErr}
}

// EmbedSingle implements Client with retries.
func (r *RetryClient) EmbedSingle(ctx context.Context, text string) ([]float32, error) {
	embeddings, err := r.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// Dimensions returns the wrapped client's dimensionality.
func (r *RetryClient) Dimensions() int { return r.client.Dimensions() }

// Close closes the wrapped client.
func (r *RetryClient) Close() error { return r.client.Close() }

func (r *RetryClient) delay(attempt int) time.Duration {
	d := r.config.InitialDelay
	for i := 1; i < attempt; i++ {
		d = time.Duration(float64(d) * r.config.BackoffMultiplier)
		if d >= r.config.MaxDelay {
			return r.config.MaxDelay
		}
	}
	if d > r.config.MaxDelay {
		return r.config.MaxDelay
	}
	return d
}

func retryable(err error) bool {
	// Timeouts and transient transport failures are retryable; a
	// malformed request or empty response will not improve on retry.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, ErrNoEmbeddings) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
