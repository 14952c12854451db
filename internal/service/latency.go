package service

import (
	"context"
	"time"
)

// simulateLatency stands in for the network round-trip of a real backend.
// It honors context cancellation so callers can abandon a stale call.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
