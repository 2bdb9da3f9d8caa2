// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned when the breaker rejects a request because the
// remote catalog has failed repeatedly.
var ErrCircuitOpen = errors.New("catalog circuit breaker is open")

const (
	// DefaultBreakerMaxFailures is used when BreakerConfig.MaxFailures is zero.
	DefaultBreakerMaxFailures = 5

	// DefaultBreakerTimeout is used when BreakerConfig.Timeout is not positive.
	DefaultBreakerTimeout = 30 * time.Second
)

// BreakerConfig configures the circuit breaker around catalog requests.
type BreakerConfig struct {
	// MaxFailures is the number of consecutive failures that opens the circuit.
	MaxFailures uint32

	// Timeout is how long the circuit stays open before allowing a probe.
	Timeout time.Duration
}

// Breaker wraps gobreaker so a failing catalog is not hammered by a batch of
// concurrent fetches. An open circuit fails fast; it never retries.
type Breaker struct {
	cb *gobreaker.CircuitBreaker
}

// NewBreaker creates a Breaker. State changes are logged at warn level.
func NewBreaker(cfg BreakerConfig, logger *zap.Logger) *Breaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = DefaultBreakerMaxFailures
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultBreakerTimeout
	}

	settings := gobreaker.Settings{
		Name:        "pokeapi",
		MaxRequests: 1,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A cancelled caller says nothing about the remote's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &Breaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Execute runs fn through the breaker. Rejections are reported as
// ErrCircuitOpen.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCircuitOpen
	}
	return err
}

// State reports the current breaker state ("closed", "open", "half-open").
func (b *Breaker) State() string {
	return b.cb.State().String()
}
