// Package store provides expiring key-value storage for session page state.
// Providers are registered by name ("memory", "redis") and created through New.
package store

// EvictCallback is called when an entry leaves the store (capacity, expiry or Delete).
// Only the memory provider reports evictions; Redis expires keys server-side.
type EvictCallback func(key string, value []byte)

// Logger receives errors from providers that cannot return them, such as
// a failed Redis write inside Set.
type Logger interface {
	Error(msg string, err error)
}

// Store is an expiring key-value store.
type Store interface {
	// Get returns the value for key and refreshes its TTL.
	Get(key string) ([]byte, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte)

	// Delete removes key. Missing keys are ignored.
	Delete(key string)

	// Len returns the number of live entries.
	Len() int

	// Close releases any resources held by the store (e.g., network connections).
	Close() error
}
