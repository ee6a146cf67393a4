// Package cache provides byte caching for generated model documents.
//
// Generation is deterministic, so a cached document keyed by the full
// parameter set is exact: a hit returns byte-for-byte what a fresh
// generation would produce. The preview server caches rendered JSON and
// SVG this way, and the CLI uses the file backend between runs.
//
// Three backends implement [Cache]: [FileCache] for CLI usage,
// [RedisCache] for the preview server, and [NullCache] to disable
// caching. [Scoped] layers a key prefix over any backend so JSON and SVG
// documents for the same parameters never collide.
package cache

import (
	"context"
	"time"

	"github.com/mtkb13/framegen/pkg/topology"
)

// Cache stores opaque byte values under string keys with optional
// expiration. Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ParamsKey generates the cache key for a parameter set. Equal parameters
// always produce the same key and any field change produces a new one.
func ParamsKey(p topology.Params) string {
	return hashKey("model", p)
}

// Scoped wraps a cache so every key gets a namespace prefix. The preview
// server uses one scope per output format over a shared backend.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a scoped view of inner with the given namespace.
func NewScoped(inner Cache, namespace string) *Scoped {
	return &Scoped{inner: inner, prefix: namespace + ":"}
}

// Get retrieves a value from the namespace.
func (c *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores a value in the namespace.
func (c *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes a value from the namespace.
func (c *Scoped) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the underlying cache.
func (c *Scoped) Close() error {
	return c.inner.Close()
}

// Ensure Scoped implements Cache.
var _ Cache = (*Scoped)(nil)
