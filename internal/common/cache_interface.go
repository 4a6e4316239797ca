package common

import "time"

// CacheInterface abstracts the catalog cache so the in-memory and Redis
// implementations are interchangeable at startup.
type CacheInterface interface {
	// Set stores a value under key for the given duration
	Set(key string, value interface{}, duration time.Duration)

	// Get returns the cached value and true, or nil and false on a miss
	Get(key string) (interface{}, bool)

	// Delete drops a key; used to invalidate catalogs after writes
	Delete(key string)

	// GetOrSet returns the cached value, loading and storing it on a miss
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections (Redis)
	Close() error
}
