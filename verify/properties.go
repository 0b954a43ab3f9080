package verify

import (
	"fmt"

	"github.com/polymesh/polymesh/mesh"
)

// Properties checks that every half-edge has all four associations set
// and that every vertex and face has a representative pointing at an
// extant half-edge.
func Properties(m *mesh.Mesh) []Violation {
	var out []Violation
	for _, e := range m.EdgeIDs() {
		if _, ok := m.Root(e); !ok {
			out = append(out, Violation{"Properties", fmt.Sprintf("half-edge %v has no root", e)})
		}
		if _, ok := m.Face(e); !ok {
			out = append(out, Violation{"Properties", fmt.Sprintf("half-edge %v has no face", e)})
		}
		if _, ok := m.Next(e); !ok {
			out = append(out, Violation{"Properties", fmt.Sprintf("half-edge %v has no next", e)})
		}
		if _, ok := m.Twin(e); !ok {
			out = append(out, Violation{"Properties", fmt.Sprintf("half-edge %v has no twin", e)})
		}
	}
	for _, v := range m.VertIDs() {
		rep, ok := m.VertRep(v)
		if !ok || !m.HasEdge(rep) {
			out = append(out, Violation{"Properties", fmt.Sprintf("vertex %v has no valid representative", v)})
		}
	}
	for _, f := range m.FaceIDs() {
		rep, ok := m.FaceRep(f)
		if !ok || !m.HasEdge(rep) {
			out = append(out, Violation{"Properties", fmt.Sprintf("face %v has no valid representative", f)})
		}
	}
	return out
}
