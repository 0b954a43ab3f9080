package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/builder"
	"github.com/polymesh/polymesh/refine"
	"github.com/polymesh/polymesh/topo"
)

// TestTriangulate_Cube triangulates a cube's six quads into 12 triangular
// faces, with exactly two triangles mapping back to each original quad.
func TestTriangulate_Cube(t *testing.T) {
	faces, positions := builder.Cube()
	src, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	dst, origin, err := refine.Triangulate(src)
	require.NoError(t, err)

	assert.Equal(t, src.NrVerts(), dst.NrVerts())
	assert.Equal(t, 12, dst.NrFaces())

	counts := make(map[interface{}]int)
	for _, f := range dst.FaceIDs() {
		assert.Len(t, topo.FaceVertices(dst, f), 3)
		orig, ok := origin.Get(f)
		require.True(t, ok)
		counts[orig]++
	}
	for _, f := range src.FaceIDs() {
		assert.Equal(t, 2, counts[f], "quad face %v should back-map from exactly two triangles", f)
	}
}

// TestTriangulate_AlreadyTriangular is a no-op shape check: triangulating
// a mesh that is already all-triangles must not change its face count.
func TestTriangulate_AlreadyTriangular(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	src, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	dst, _, err := refine.Triangulate(src)
	require.NoError(t, err)
	assert.Equal(t, src.NrFaces(), dst.NrFaces())
	assert.Equal(t, src.NrVerts(), dst.NrVerts())
}
