// Package retry provides exponential backoff for outbound calls to flaky
// collaborators (geocoder, payment gateway).
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
)

// RetryableFunc represents a function that can be retried
type RetryableFunc func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries    int              // Maximum number of retry attempts
	BaseDelay     time.Duration    // Base delay between retries
	MaxDelay      time.Duration    // Maximum delay between retries
	Multiplier    float64          // Exponential backoff multiplier
	Jitter        bool             // Add randomization to prevent thundering herd
	RetryableFunc func(error) bool // Function to determine if error is retryable
}

// DefaultConfig returns a default retry configuration
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  100 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		RetryableFunc: func(err error) bool {
			return true
		},
	}
}

// Retrier handles retry logic with exponential backoff
type Retrier struct {
	config Config
}

// New creates a new retrier with the given configuration
func New(config Config) *Retrier {
	return &Retrier{config: config}
}

// NewWithDefaults creates a new retrier with default configuration
func NewWithDefaults() *Retrier {
	return New(DefaultConfig())
}

// Execute executes the function with retry logic
func (r *Retrier) Execute(ctx context.Context, fn RetryableFunc) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("call succeeded after retries",
					logger.Int("attempts", attempt+1))
			}
			return nil
		}

		lastErr = err

		if !r.config.RetryableFunc(err) {
			return err
		}

		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.calculateDelay(attempt)
		logger.Debug("call failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

// calculateDelay calculates the delay for the given attempt number
func (r *Retrier) calculateDelay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))

	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}

	if r.config.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}

	return time.Duration(delay)
}
