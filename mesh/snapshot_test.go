package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/mesh"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	m := mesh.New()
	v1 := m.AddVertex(mgl64.Vec3{1, 2, 3})
	v2 := m.AddVertex(mgl64.Vec3{4, 5, 6})

	snap := m.Snapshot()

	m.SetPosition(v1, mgl64.Vec3{9, 9, 9})
	m.AddVertex(mgl64.Vec3{0, 0, 0})
	assert.Equal(t, 3, m.NrVerts())

	m.Restore(snap)
	assert.Equal(t, 2, m.NrVerts())

	p, ok := m.Position(v1)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, p)

	p2, ok := m.Position(v2)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{4, 5, 6}, p2)
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	m := mesh.New()
	v := m.AddVertex(mgl64.Vec3{1, 1, 1})

	snap := m.Snapshot()
	snap.SetPosition(v, mgl64.Vec3{0, 0, 0})

	p, ok := m.Position(v)
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, p)
}
