package status

import "sync"

// MetricMap holds the named metrics of one kind in the order they were first requested,
// so a session's summary reads in the order its metrics were declared.
// Holders keep the returned pointer; only registration takes the lock.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	index map[string]int
	names []string
	items []*T
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{index: make(map[string]int)}
}

// Get returns the metric for name, registering it on first use
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	i, ok := m.index[name]
	m.mu.RUnlock()
	if ok {
		return m.at(i)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if i, ok := m.index[name]; ok {
		return m.items[i]
	}
	m.index[name] = len(m.items)
	m.names = append(m.names, name)
	m.items = append(m.items, new(T))
	return m.items[len(m.items)-1]
}

func (m *MetricMap[T]) at(i int) *T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[i]
}

// Each visits every metric in registration order
func (m *MetricMap[T]) Each(fn func(name string, ptr *T)) {
	m.mu.RLock()
	names := append([]string(nil), m.names...)
	items := append([]*T(nil), m.items...)
	m.mu.RUnlock()

	for i, name := range names {
		fn(name, items[i])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
