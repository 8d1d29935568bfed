package visitor

import "sync"

// SyncMap is a thread-safe insert once map
type SyncMap[K comparable, V any] struct {
	m sync.Map
}

// Get returns a value from the map
func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.m.Load(k)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// GetOrCreate returns existing value or stores the created one, concurrent callers all get the stored value
func (m *SyncMap[K, V]) GetOrCreate(k K, create func() V) V {
	if v, ok := m.m.Load(k); ok {
		return v.(V)
	}
	actual, _ := m.m.LoadOrStore(k, create())
	return actual.(V)
}

// Clear removes all entries
func (m *SyncMap[K, V]) Clear() {
	m.m.Range(func(k, _ interface{}) bool {
		m.m.Delete(k)
		return true
	})
}

// Len returns number of entries
func (m *SyncMap[K, V]) Len() int {
	count := 0
	m.m.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return count
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{}
}
