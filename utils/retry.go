package utils

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Retry runs fn up to attempts times with exponential backoff between
// failures. The first retry waits base, the next 2*base, and so on. A
// cancelled context aborts the wait and returns the context error. Callers
// opt in per call site; nothing in the gateway retries automatically.
func Retry(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	var err error
	delay := base
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		GetLogger().Debug("retrying after failure",
			zap.Int("attempt", attempt), zap.Duration("delay", delay), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
