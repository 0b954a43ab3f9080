package verify

import (
	"fmt"

	"github.com/polymesh/polymesh/mesh"
)

// References checks that every association on every half-edge points to
// an element that still exists in the arena.
func References(m *mesh.Mesh) []Violation {
	var out []Violation
	for _, e := range m.EdgeIDs() {
		if root, ok := m.Root(e); ok && !m.HasVert(root) {
			out = append(out, Violation{"References", fmt.Sprintf("half-edge %v root %v does not exist", e, root)})
		}
		if f, ok := m.Face(e); ok && !m.HasFace(f) {
			out = append(out, Violation{"References", fmt.Sprintf("half-edge %v face %v does not exist", e, f)})
		}
		if n, ok := m.Next(e); ok && !m.HasEdge(n) {
			out = append(out, Violation{"References", fmt.Sprintf("half-edge %v next %v does not exist", e, n)})
		}
		if t, ok := m.Twin(e); ok && !m.HasEdge(t) {
			out = append(out, Violation{"References", fmt.Sprintf("half-edge %v twin %v does not exist", e, t)})
		}
	}
	for _, v := range m.VertIDs() {
		if rep, ok := m.VertRep(v); ok && !m.HasEdge(rep) {
			out = append(out, Violation{"References", fmt.Sprintf("vertex %v representative %v does not exist", v, rep)})
		}
	}
	for _, f := range m.FaceIDs() {
		if rep, ok := m.FaceRep(f); ok && !m.HasEdge(rep) {
			out = append(out, Violation{"References", fmt.Sprintf("face %v representative %v does not exist", f, rep)})
		}
	}
	return out
}
