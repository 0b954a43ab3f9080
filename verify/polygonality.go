package verify

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
)

// polygonalityEps is the tolerance passed to the 3D segment intersection
// test used to detect self-crossing face boundaries.
const polygonalityEps = 1e-9

// Polygonality checks that every face has at least three distinct
// vertices and that no two non-adjacent boundary segments cross.
func Polygonality(m *mesh.Mesh) []Violation {
	var out []Violation
	for _, f := range m.FaceIDs() {
		verts := topo.FaceVertices(m, f)
		distinct := make(map[mesh.VertHandle]bool, len(verts))
		for _, v := range verts {
			distinct[v] = true
		}
		if len(verts) < 3 || len(distinct) < len(verts) {
			out = append(out, Violation{"Polygonality", mesherr.FaceNotPolygon(f).Error()})
			continue
		}

		n := len(verts)
		positions := make([]mgl64.Vec3, n)
		ok := true
		for i, v := range verts {
			p, found := m.Position(v)
			if !found {
				ok = false
				break
			}
			positions[i] = p
		}
		if !ok {
			continue
		}

		for i := 0; i < n; i++ {
			a0, a1 := positions[i], positions[(i+1)%n]
			for j := i + 1; j < n; j++ {
				if j == i || j == (i+1)%n || (j+1)%n == i {
					continue
				}
				b0, b1 := positions[j], positions[(j+1)%n]
				if _, crossed := SegmentSegment3D(a0, a1, b0, b1, polygonalityEps); crossed {
					out = append(out, Violation{"Polygonality", mesherr.FaceNotSimple(f).Error()})
					break
				}
			}
		}
	}
	return out
}
