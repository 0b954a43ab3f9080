package topo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polymesh/polymesh/builder"
	"github.com/polymesh/polymesh/topo"
)

// TestDefectSumGaussBonnet checks Gauss-Bonnet directly: for a closed
// orientable surface, the angular defect summed over all vertices equals
// 2*pi*chi. A tetrahedron has Euler characteristic 2, so the sum must be
// 4*pi.
func TestDefectSumGaussBonnet(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range m.VertIDs() {
		sum += topo.Defect(m, v)
	}

	assert.InDelta(t, 4*math.Pi, sum, 1e-9)
}

func TestDistance_AdjacentTetrahedronVertices(t *testing.T) {
	faces, positions := builder.Tetrahedron()
	m, _, _, err := builder.Build(faces, positions)
	require.NoError(t, err)

	verts := m.VertIDs()
	d, ok := topo.Distance(m, verts[0], verts[1])
	require.True(t, ok)
	assert.Greater(t, d, 0.0)
}
