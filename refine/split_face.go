package refine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
)

// SplitFace inserts a new vertex X inside triangular face f and replaces
// f with three triangles fanning out from X to each original corner. f
// must be a triangle. X is assigned position (0,0,0); the caller
// repositions it.
//
// Reuses one face handle, allocates two new faces, six new half-edges
// (three radial pairs), and one new vertex.
func SplitFace(m *mesh.Mesh, f mesh.FaceHandle) (mesh.VertHandle, [3]mesh.FaceHandle, error) {
	var zero [3]mesh.FaceHandle

	edges := topo.FaceEdges(m, f)
	if len(edges) != 3 {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitFace: face %v is not a triangle", f)
	}
	e1, e2, e3 := edges[0], edges[1], edges[2] // A->B, B->C, C->A
	a, _ := m.Root(e1)
	b, _ := m.Root(e2)
	c, _ := m.Root(e3)

	x := m.AddVertex(mgl64.Vec3{})

	eBX := m.AddEdge()
	eXB := m.AddEdge()
	eCX := m.AddEdge()
	eXC := m.AddEdge()
	eAX := m.AddEdge()
	eXA := m.AddEdge()
	f2 := m.AddFace()
	f3 := m.AddFace()

	// f reused: A -> B -> X -> A.
	m.SetNext(e1, eBX)
	m.SetRoot(eBX, b)
	m.SetFace(eBX, f)
	m.SetNext(eBX, eXA)
	m.SetRoot(eXA, x)
	m.SetFace(eXA, f)
	m.SetNext(eXA, e1)
	m.SetFace(e1, f)
	m.SetFaceRep(f, e1)

	// f2: B -> C -> X -> B.
	m.SetNext(e2, eCX)
	m.SetRoot(eCX, c)
	m.SetFace(eCX, f2)
	m.SetNext(eCX, eXB)
	m.SetRoot(eXB, x)
	m.SetFace(eXB, f2)
	m.SetNext(eXB, e2)
	m.SetFace(e2, f2)
	m.SetFaceRep(f2, e2)

	// f3: C -> A -> X -> C.
	m.SetNext(e3, eAX)
	m.SetRoot(eAX, a)
	m.SetFace(eAX, f3)
	m.SetNext(eAX, eXC)
	m.SetRoot(eXC, x)
	m.SetFace(eXC, f3)
	m.SetNext(eXC, e3)
	m.SetFace(e3, f3)
	m.SetFaceRep(f3, e3)

	m.SetTwin(eBX, eXB)
	m.SetTwin(eXB, eBX)
	m.SetTwin(eCX, eXC)
	m.SetTwin(eXC, eCX)
	m.SetTwin(eAX, eXA)
	m.SetTwin(eXA, eAX)

	m.SetVertRep(a, e1)
	m.SetVertRep(b, e2)
	m.SetVertRep(c, e3)
	m.SetVertRep(x, eXA)

	return x, [3]mesh.FaceHandle{f, f2, f3}, nil
}
