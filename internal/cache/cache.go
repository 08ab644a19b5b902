package cache

import (
	"context"
	"time"
)

// Cache is a best-effort freshness optimization for read-heavy catalog
// listings. Misses and errors always degrade to a store read; nothing
// depends on it for correctness.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
