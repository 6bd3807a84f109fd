package internal

// BiMap is a one-to-one mapping kept consistent in both directions. Putting a pair evicts any
// previous pairing of either side.
type BiMap[K comparable, V comparable] struct {
	forward map[K]V
	inverse map[V]K
}

func NewBiMap[K comparable, V comparable]() *BiMap[K, V] {
	return &BiMap[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V]K),
	}
}

func (m *BiMap[K, V]) Put(k K, v V) {
	if old, ok := m.forward[k]; ok {
		delete(m.inverse, old)
	}
	if old, ok := m.inverse[v]; ok {
		delete(m.forward, old)
	}
	m.forward[k] = v
	m.inverse[v] = k
}

func (m *BiMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.forward[k]
	return v, ok
}

func (m *BiMap[K, V]) Inverse(v V) (K, bool) {
	k, ok := m.inverse[v]
	return k, ok
}

func (m *BiMap[K, V]) ContainsKey(k K) bool {
	_, ok := m.forward[k]
	return ok
}

func (m *BiMap[K, V]) ContainsValue(v V) bool {
	_, ok := m.inverse[v]
	return ok
}

func (m *BiMap[K, V]) Delete(k K) {
	if v, ok := m.forward[k]; ok {
		delete(m.forward, k)
		delete(m.inverse, v)
	}
}

func (m *BiMap[K, V]) Len() int {
	return len(m.forward)
}
