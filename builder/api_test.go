package builder_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/builder"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
)

var tetraPositions = []mgl64.Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// TestBuild_Tetrahedron builds four triangular faces sharing every edge
// with exactly one twin.
func TestBuild_Tetrahedron(t *testing.T) {
	faces := [][]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}

	m, vmap, fmap, err := builder.Build(faces, tetraPositions)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 4, m.NrVerts())
	assert.Equal(t, 12, m.NrEdges())
	assert.Equal(t, 4, m.NrFaces())
	assert.Equal(t, 4, vmap.Len())
	assert.Equal(t, 4, fmap.Len())

	for _, f := range m.FaceIDs() {
		assert.Len(t, topo.FaceVertices(m, f), 3)
	}
}

// TestBuild_Cube builds six quads, 24 half-edges, every face of degree 4.
func TestBuild_Cube(t *testing.T) {
	faces, positions := builder.Cube()
	m, vmap, fmap, err := builder.Build(faces, positions)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, 8, m.NrVerts())
	assert.Equal(t, 24, m.NrEdges())
	assert.Equal(t, 6, m.NrFaces())
	assert.Equal(t, 8, vmap.Len())
	assert.Equal(t, 6, fmap.Len())

	for _, f := range m.FaceIDs() {
		assert.Len(t, topo.FaceVertices(m, f), 4)
	}
}

// TestBuild_Tetrahedron_Preset cross-checks the hand-rolled Tetrahedron
// preset against the same expectations as the manually indexed input
// above.
func TestBuild_Tetrahedron_Preset(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	assert.Equal(t, 4, m.NrVerts())
	assert.Equal(t, 12, m.NrEdges())
	assert.Equal(t, 4, m.NrFaces())
}

// TestBuild_RejectsNonManifoldDuplicateEdge feeds in a directed edge
// declared by two distinct faces.
func TestBuild_RejectsNonManifoldDuplicateEdge(t *testing.T) {
	faces := [][]int{{0, 1, 2}, {0, 1, 3}} // both declare 0->1
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	_, _, _, err := builder.Build(faces, positions)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesherr.ErrDuplicateEdge)
}

// TestBuild_RejectsOpenSurfaceNoTwin feeds in a lone triangle, which has
// no reverse direction for any of its edges.
func TestBuild_RejectsOpenSurfaceNoTwin(t *testing.T) {
	faces := [][]int{{0, 1, 2}}
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, _, _, err := builder.Build(faces, positions)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesherr.ErrNoTwin)
}

func TestBuild_RejectsOutOfRangeVertexIndex(t *testing.T) {
	faces := [][]int{{0, 1, 5}}
	positions := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, _, _, err := builder.Build(faces, positions)
	require.Error(t, err)
}
