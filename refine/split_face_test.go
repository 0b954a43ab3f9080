package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/builder"
	"github.com/polymesh/polymesh/refine"
	"github.com/polymesh/polymesh/topo"
	"github.com/polymesh/polymesh/verify"
)

// TestSplitFace_Tetrahedron checks that splitting one triangular face
// increases vertex count by 1, face count by 2, half-edge count by 6, and
// that the new vertex has degree 3.
func TestSplitFace_Tetrahedron(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	f := m.FaceIDs()[0]
	vertsBefore, edgesBefore, facesBefore := m.NrVerts(), m.NrEdges(), m.NrFaces()

	x, newFaces, err := refine.SplitFace(m, f)
	require.NoError(t, err)

	assert.Equal(t, vertsBefore+1, m.NrVerts())
	assert.Equal(t, edgesBefore+6, m.NrEdges())
	assert.Equal(t, facesBefore+2, m.NrFaces())
	assert.Len(t, newFaces, 3)

	assert.Empty(t, verify.Properties(m))
	assert.Empty(t, verify.References(m))
	assert.Empty(t, verify.Invariants(m, verify.DefaultMaxFaceDegree))

	assert.Len(t, topo.VertNeighbors(m, x), 3)
}

func TestSplitFace_RejectsNonTriangleFace(t *testing.T) {
	facesIn, positions := builder.Cube()
	m, _, _, err := builder.Build(facesIn, positions)
	require.NoError(t, err)

	f := m.FaceIDs()[0]
	_, _, err = refine.SplitFace(m, f)
	require.Error(t, err)
}
