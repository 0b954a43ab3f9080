package handle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/handle"
)

type fooTag struct{}

func TestArena_InsertGetRemove(t *testing.T) {
	a := handle.NewArena[fooTag, string]()

	h1 := a.Insert("alpha")
	h2 := a.Insert("beta")
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, a.Len())

	v, ok := a.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	require.True(t, a.Remove(h1))
	assert.False(t, a.Contains(h1))
	assert.Equal(t, 1, a.Len())

	// Recycled slot must not resolve under the old generation's handle.
	h3 := a.Insert("gamma")
	assert.NotEqual(t, h1, h3)
}

func TestArena_Clone_IsIndependent(t *testing.T) {
	a := handle.NewArena[fooTag, int]()
	h := a.Insert(1)

	b := a.Clone()
	b.Set(h, 99)

	av, _ := a.Get(h)
	bv, _ := b.Get(h)
	assert.Equal(t, 1, av)
	assert.Equal(t, 99, bv)
}

func TestAssoc_SetGetUnset(t *testing.T) {
	a := handle.NewArena[fooTag, int]()
	h := a.Insert(0)

	m := handle.NewAssoc[fooTag, string]()
	_, ok := m.Get(h)
	assert.False(t, ok)

	m.Set(h, "rep")
	v, ok := m.Get(h)
	require.True(t, ok)
	assert.Equal(t, "rep", v)

	m.Unset(h)
	_, ok = m.Get(h)
	assert.False(t, ok)
}

func TestIndexMap_BindAndLookup(t *testing.T) {
	a := handle.NewArena[fooTag, int]()
	h := a.Insert(42)

	im := handle.NewIndexMap[fooTag]()
	im.Bind(3, h)

	got, ok := im.Handle(3)
	require.True(t, ok)
	assert.Equal(t, h, got)

	idx, ok := im.Index(h)
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 1, im.Len())
}
