// File: barberbook/store/kv.go
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("key not found")

// KV is the injectable key-value store behind the session, cart and booking
// state. Production uses Redis; tests use the in-memory implementation.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	// Members and SAdd/SRem maintain index sets (e.g. active booking drafts).
	SAdd(ctx context.Context, key, member string) error
	SRem(ctx context.Context, key, member string) error
	Members(ctx context.Context, key string) ([]string, error)
}
