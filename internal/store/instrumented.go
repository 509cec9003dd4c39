package store

// instrumentedStore wraps a Store and records restored and missing session
// views, saved view sizes and the live view count under the group label.
type instrumentedStore struct {
	inner Store
	group string
}

func newInstrumentedStore(inner Store, group string) *instrumentedStore {
	trackLiveViews(group, inner.Len)
	return &instrumentedStore{inner: inner, group: group}
}

func (s *instrumentedStore) Get(key string) ([]byte, bool) {
	val, ok := s.inner.Get(key)
	if ok {
		ViewsRestored.WithLabelValues(s.group).Inc()
	} else {
		ViewsMissing.WithLabelValues(s.group).Inc()
	}
	return val, ok
}

func (s *instrumentedStore) Set(key string, value []byte) {
	SavedViewBytes.WithLabelValues(s.group).Observe(float64(len(value)))
	s.inner.Set(key, value)
}

func (s *instrumentedStore) Delete(key string) {
	s.inner.Delete(key)
}

func (s *instrumentedStore) Len() int {
	return s.inner.Len()
}

// Close drops the live view gauge and closes the underlying store.
func (s *instrumentedStore) Close() error {
	untrackLiveViews(s.group)
	return s.inner.Close()
}
