package catalog

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures retry behavior for catalog source operations
type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" yaml:"max_attempts"`
	InitialDelay  time.Duration `json:"initial_delay" yaml:"initial_delay"`
	MaxDelay      time.Duration `json:"max_delay" yaml:"max_delay"`
	BackoffFactor float64       `json:"backoff_factor" yaml:"backoff_factor"`
	JitterEnabled bool          `json:"jitter_enabled" yaml:"jitter_enabled"`
}

// DefaultRetryConfig returns a sensible default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// RetryableOperation represents an operation that can be retried
type RetryableOperation func(ctx context.Context) error

// WithRetry executes an operation with retry logic
func WithRetry(ctx context.Context, config *RetryConfig, op RetryableOperation) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := op(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt >= config.MaxAttempts || !IsRetryable(err) {
			break
		}

		delay := config.calculateDelay(attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// calculateDelay calculates the delay before the next retry attempt
func (c *RetryConfig) calculateDelay(attempt int) time.Duration {
	delay := float64(c.InitialDelay) * math.Pow(c.BackoffFactor, float64(attempt-1))

	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	if c.JitterEnabled {
		jitter := rand.Float64() * 0.1 * delay // Up to 10% jitter
		delay += jitter
	}

	return time.Duration(delay)
}

// RetryableSource wraps a Source implementation with retry logic
type RetryableSource struct {
	source Source
	config *RetryConfig
}

// NewRetryableSource creates a new RetryableSource
func NewRetryableSource(source Source, config *RetryConfig) *RetryableSource {
	if config == nil {
		config = DefaultRetryConfig()
	}

	return &RetryableSource{
		source: source,
		config: config,
	}
}

// List implements Source.List with retries
func (r *RetryableSource) List(ctx context.Context, opts *ListOptions) ([]string, error) {
	var keys []string
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		var opErr error
		keys, opErr = r.source.List(ctx, opts)
		return opErr
	})
	return keys, err
}

// Read implements Source.Read with retries
func (r *RetryableSource) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		var opErr error
		data, opErr = r.source.Read(ctx, key)
		return opErr
	})
	return data, err
}

// Exists implements Source.Exists with retries
func (r *RetryableSource) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		var opErr error
		exists, opErr = r.source.Exists(ctx, key)
		return opErr
	})
	return exists, err
}

// Close implements Source.Close
func (r *RetryableSource) Close() error {
	return r.source.Close()
}
