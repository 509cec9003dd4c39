package store

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryStore)
}

// memoryStore keeps entries in a size-bounded expirable LRU. Get re-adds the
// entry so that active sessions keep their TTL.
type memoryStore struct {
	inner *lru.LRU[string, []byte]
}

func newMemoryStore(cfg ProviderConfig) (Store, error) {
	var onEvict func(string, []byte)
	if cfg.OnEvict != nil {
		onEvict = func(key string, value []byte) {
			cfg.OnEvict(key, value)
		}
	}
	size := cfg.Size
	if size <= 0 {
		size = 1000
	}
	return &memoryStore{
		inner: lru.NewLRU[string, []byte](size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryStore) Get(key string) ([]byte, bool) {
	val, ok := m.inner.Get(key)
	if ok {
		m.inner.Add(key, val)
	}
	return val, ok
}

func (m *memoryStore) Set(key string, value []byte) {
	m.inner.Add(key, value)
}

func (m *memoryStore) Delete(key string) {
	m.inner.Remove(key)
}

func (m *memoryStore) Len() int {
	return m.inner.Len()
}

func (m *memoryStore) Close() error {
	return nil
}
