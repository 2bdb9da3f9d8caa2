// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{MaxFailures: 3, Timeout: time.Minute}, nil)
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(context.Background(), func() error { return boom }), boom)
	}
	assert.Equal(t, "open", b.State())

	called := false
	err := b.Execute(context.Background(), func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreakerSuccessResetsCount(t *testing.T) {
	b := NewBreaker(BreakerConfig{MaxFailures: 2}, nil)
	boom := errors.New("boom")

	_ = b.Execute(context.Background(), func() error { return boom })
	_ = b.Execute(context.Background(), func() error { return nil })
	_ = b.Execute(context.Background(), func() error { return boom })
	assert.Equal(t, "closed", b.State())
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	b := NewBreaker(BreakerConfig{MaxFailures: 1}, nil)

	err := b.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "closed", b.State())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err = b.Execute(ctx, func() error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
