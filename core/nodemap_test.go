// SPDX-License-Identifier: MIT
package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/core"
)

// collidingIdentity hashes every byte slice to the same bucket so that
// NodeMap has to fall back to Equal for every lookup.
func collidingIdentity() core.Identity[[]byte] {
	return core.Identity[[]byte]{
		Equal: bytes.Equal,
		Hash:  func([]byte) uint64 { return 42 },
	}
}

func TestIdentity_Validate(t *testing.T) {
	assert.NoError(t, core.ComparableIdentity[int]().Validate())
	assert.ErrorIs(t, core.Identity[int]{}.Validate(), core.ErrIncompleteIdentity)
	assert.ErrorIs(t, core.Identity[int]{Equal: func(x, y int) bool { return x == y }}.Validate(),
		core.ErrIncompleteIdentity)
}

func TestComparableIdentity_ConsistentHash(t *testing.T) {
	id := core.ComparableIdentity[[2]int]()
	a, b := [2]int{3, 4}, [2]int{3, 4}
	assert.True(t, id.Equal(a, b))
	assert.Equal(t, id.Hash(a), id.Hash(b))
	assert.False(t, id.Equal(a, [2]int{4, 3}))
}

func TestNodeMap_PutGetReplace(t *testing.T) {
	m := core.NewNodeMap[[]byte, int](collidingIdentity())

	m.Put([]byte{1, 2}, 10)
	m.Put([]byte{2, 1}, 20)
	m.Put([]byte{1, 2}, 11) // replaces, distinct backing array

	assert.Equal(t, 2, m.Len())
	v, ok := m.Get([]byte{1, 2})
	require.True(t, ok)
	assert.Equal(t, 11, v)
	v, ok = m.Get([]byte{2, 1})
	require.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = m.Get([]byte{9})
	assert.False(t, ok)
	assert.False(t, m.Has([]byte{9}))
}

func TestNodeMap_Delete(t *testing.T) {
	m := core.NewNodeMap[[]byte, string](collidingIdentity())
	m.Put([]byte{1}, "a")
	m.Put([]byte{2}, "b")
	m.Put([]byte{3}, "c")

	assert.True(t, m.Delete([]byte{1}))
	assert.False(t, m.Delete([]byte{1}), "second delete must report absence")
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has([]byte{2}))
	assert.True(t, m.Has([]byte{3}))

	assert.True(t, m.Delete([]byte{2}))
	assert.True(t, m.Delete([]byte{3}))
	assert.Equal(t, 0, m.Len())

	// Bucket was dropped entirely; re-adding works from scratch.
	m.Put([]byte{2}, "again")
	v, ok := m.Get([]byte{2})
	assert.True(t, ok)
	assert.Equal(t, "again", v)
}

func TestNodeSet_Membership(t *testing.T) {
	s := core.NewNodeSet(core.ComparableIdentity[string]())
	s.Add("A")
	s.Add("A")
	s.Add("B")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("A"))
	assert.True(t, s.Remove("A"))
	assert.False(t, s.Has("A"))
	assert.False(t, s.Remove("Z"))
	assert.Equal(t, 1, s.Len())
}
