// SPDX-License-Identifier: MIT
//
// File: nodemap.go
// Role: Hash containers keyed through an Identity.
//
// Determinism:
//   - No iteration API is exposed, so bucket order never leaks into results.
//
// Concurrency:
//   - Not safe for concurrent use. Searches allocate one per call.

package core

// entry is one key/value pair inside a hash bucket.
type entry[N, V any] struct {
	key N
	val V
}

// NodeMap maps nodes to values using a caller-supplied Identity.
// Keys with equal hashes share a bucket; collisions are resolved with Equal.
type NodeMap[N, V any] struct {
	id      Identity[N]
	buckets map[uint64][]entry[N, V]
	size    int
}

// NewNodeMap returns an empty NodeMap. id must be complete (see Identity.Validate).
func NewNodeMap[N, V any](id Identity[N]) *NodeMap[N, V] {
	return &NodeMap[N, V]{
		id:      id,
		buckets: make(map[uint64][]entry[N, V]),
	}
}

// Len returns the number of stored keys.
func (m *NodeMap[N, V]) Len() int { return m.size }

// Get returns the value stored for key and whether it was present.
// Complexity: O(1) expected, O(bucket) on collisions.
func (m *NodeMap[N, V]) Get(key N) (V, bool) {
	for _, e := range m.buckets[m.id.Hash(key)] {
		if m.id.Equal(e.key, key) {
			return e.val, true
		}
	}
	var zero V

	return zero, false
}

// Has reports whether key is present.
func (m *NodeMap[N, V]) Has(key N) bool {
	_, ok := m.Get(key)

	return ok
}

// Put stores val under key, replacing any previous value.
// The first stored key value is kept as the representative of its class.
func (m *NodeMap[N, V]) Put(key N, val V) {
	h := m.id.Hash(key)
	bucket := m.buckets[h]
	for i := range bucket {
		if m.id.Equal(bucket[i].key, key) {
			bucket[i].val = val

			return
		}
	}
	m.buckets[h] = append(bucket, entry[N, V]{key: key, val: val})
	m.size++
}

// Delete removes key and reports whether it was present.
func (m *NodeMap[N, V]) Delete(key N) bool {
	h := m.id.Hash(key)
	bucket := m.buckets[h]
	for i := range bucket {
		if !m.id.Equal(bucket[i].key, key) {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		var zero entry[N, V]
		bucket[last] = zero
		if last == 0 {
			delete(m.buckets, h)
		} else {
			m.buckets[h] = bucket[:last]
		}
		m.size--

		return true
	}

	return false
}

// NodeSet is a set of nodes under an Identity.
type NodeSet[N any] struct {
	m *NodeMap[N, struct{}]
}

// NewNodeSet returns an empty NodeSet.
func NewNodeSet[N any](id Identity[N]) *NodeSet[N] {
	return &NodeSet[N]{m: NewNodeMap[N, struct{}](id)}
}

// Add inserts n; adding a present node is a no-op.
func (s *NodeSet[N]) Add(n N) { s.m.Put(n, struct{}{}) }

// Has reports membership of n.
func (s *NodeSet[N]) Has(n N) bool { return s.m.Has(n) }

// Remove deletes n and reports whether it was present.
func (s *NodeSet[N]) Remove(n N) bool { return s.m.Delete(n) }

// Len returns the number of members.
func (s *NodeSet[N]) Len() int { return s.m.Len() }
