package verify

import (
	"fmt"

	"github.com/polymesh/polymesh/mesh"
)

// DefaultMaxFaceDegree bounds the number of next-steps I4 will follow
// before declaring a face cycle broken. It is far above any legitimate
// face this kernel constructs (triangles and quads from the builder, at
// most a few dozen sides from a hand-authored polygon) and exists only to
// turn an infinite loop from a corrupted next chain into a reported
// violation.
const DefaultMaxFaceDegree = 4096

// Invariants checks I1-I4 over every half-edge and face. maxFaceDegree
// bounds the I4 cycle-closure walk; pass DefaultMaxFaceDegree unless a
// caller has a specific reason to expect larger faces.
func Invariants(m *mesh.Mesh, maxFaceDegree int) []Violation {
	var out []Violation

	for _, e := range m.EdgeIDs() {
		// I1: twin(twin(e)) == e.
		if t, ok := m.Twin(e); ok {
			if tt, ok2 := m.Twin(t); !ok2 || tt != e {
				out = append(out, Violation{"I1", fmt.Sprintf("twin(twin(%v)) != %v", e, e)})
			}
			// I2: root(next(twin(e))) == root(e).
			if nt, ok2 := m.Next(t); ok2 {
				rootNT, ok3 := m.Root(nt)
				rootE, ok4 := m.Root(e)
				if !ok3 || !ok4 || rootNT != rootE {
					out = append(out, Violation{"I2", fmt.Sprintf("root(next(twin(%v))) != root(%v)", e, e)})
				}
			}
		}
		// I3: face(next(e)) == face(e).
		if n, ok := m.Next(e); ok {
			faceN, ok2 := m.Face(n)
			faceE, ok3 := m.Face(e)
			if !ok2 || !ok3 || faceN != faceE {
				out = append(out, Violation{"I3", fmt.Sprintf("face(next(%v)) != face(%v)", e, e)})
			}
		}
	}

	// I4: following next from a face's representative returns to it
	// within the face's degree.
	for _, f := range m.FaceIDs() {
		rep, ok := m.FaceRep(f)
		if !ok {
			continue
		}
		cur := rep
		closed := false
		for i := 0; i < maxFaceDegree; i++ {
			nxt, ok := m.Next(cur)
			if !ok {
				break
			}
			cur = nxt
			if cur == rep {
				closed = true
				break
			}
		}
		if !closed {
			out = append(out, Violation{"I4", fmt.Sprintf("face %v cycle did not close within %d steps", f, maxFaceDegree)})
		}
	}

	return out
}
