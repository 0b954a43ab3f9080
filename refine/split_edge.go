// Package refine implements the mesh kernel's mutating algorithms: edge
// split, face split, planar-embedding edge refinement, and polygonal
// triangulation. Every algorithm here leaves invariants I1-I7 satisfied
// on return — intermediate steps may leave representatives stale, but no
// public call does.
package refine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
)

// SplitEdge replaces the two triangles incident to e with four triangles
// sharing a new vertex X placed on the segment root(e)-toor(e):
//
//	      P                     P
//	     / \                   /|\
//	    /   \                 / | \
//	   /     \    split      /  |  \
//	  A-------B   ----->    A---X---B
//	   \     /               \  |  /
//	    \   /                 \ | /
//	     \ /                   \|/
//	      Q                     Q
//
// Both faces incident to e must be triangles. X is assigned position
// (0,0,0); the caller repositions it via mesh.SetPosition (SplitEdge
// itself never guesses a "correct" position — that policy decision
// belongs one level up, in RefineAtPlanarCrossing).
//
// Reuses two face handles (one per original triangle) and allocates two
// new face handles, six new half-edges, and one new vertex.
func SplitEdge(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.VertHandle, [4]mesh.FaceHandle, error) {
	var zero [4]mesh.FaceHandle

	a, ok := m.Root(e)
	if !ok {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitEdge: edge %v has no root", e)
	}
	te, ok := m.Twin(e)
	if !ok {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitEdge: edge %v has no twin", e)
	}
	b, ok := m.Root(te)
	if !ok {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitEdge: twin %v has no root", te)
	}

	faceAXP, ok := m.Face(e)
	if !ok || len(topo.FaceEdges(m, faceAXP)) != 3 {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitEdge: face incident to %v is not a triangle", e)
	}
	faceXAQ, ok := m.Face(te)
	if !ok || len(topo.FaceEdges(m, faceXAQ)) != 3 {
		return mesh.VertHandle{}, zero, mesherr.Unknownf("SplitEdge: face incident to twin %v is not a triangle", te)
	}

	n1, _ := m.Next(e)   // B -> P
	n2, _ := m.Next(n1)  // P -> A
	p, _ := m.Root(n2)   // P
	tn1, _ := m.Next(te) // A -> Q
	tn2, _ := m.Next(tn1) // Q -> B
	q, _ := m.Root(tn2)  // Q

	x := m.AddVertex(mgl64.Vec3{})

	eXB := m.AddEdge()
	eBX := m.AddEdge()
	eXP := m.AddEdge()
	ePX := m.AddEdge()
	eXQ := m.AddEdge()
	eQX := m.AddEdge()
	faceXBP := m.AddFace()
	faceBXQ := m.AddFace()

	// e (A->X) stays in faceAXP: A -> X -> P -> A.
	m.SetRoot(te, x) // twin(e) becomes X -> A
	m.SetNext(e, eXP)
	m.SetRoot(eXP, x)
	m.SetFace(eXP, faceAXP)
	m.SetNext(eXP, n2)
	m.SetFace(n2, faceAXP)
	m.SetNext(n2, e)
	m.SetFaceRep(faceAXP, e)

	// faceXBP: X -> B -> P -> X.
	m.SetRoot(eXB, x)
	m.SetFace(eXB, faceXBP)
	m.SetNext(eXB, n1)
	m.SetFace(n1, faceXBP)
	m.SetNext(n1, ePX)
	m.SetRoot(ePX, p)
	m.SetFace(ePX, faceXBP)
	m.SetNext(ePX, eXB)
	m.SetFaceRep(faceXBP, eXB)

	// faceXAQ: X -> A -> Q -> X (te reused as X -> A).
	m.SetNext(tn1, eQX)
	m.SetRoot(eQX, q)
	m.SetFace(eQX, faceXAQ)
	m.SetNext(eQX, te)
	m.SetFaceRep(faceXAQ, te)

	// faceBXQ: B -> X -> Q -> B.
	m.SetRoot(eBX, b)
	m.SetFace(eBX, faceBXQ)
	m.SetNext(eBX, eXQ)
	m.SetRoot(eXQ, x)
	m.SetFace(eXQ, faceBXQ)
	m.SetNext(eXQ, tn2)
	m.SetFace(tn2, faceBXQ)
	m.SetNext(tn2, eBX)
	m.SetFaceRep(faceBXQ, eBX)

	m.SetTwin(eXP, ePX)
	m.SetTwin(ePX, eXP)
	m.SetTwin(eXB, eBX)
	m.SetTwin(eBX, eXB)
	m.SetTwin(eQX, eXQ)
	m.SetTwin(eXQ, eQX)

	m.SetVertRep(a, e)
	m.SetVertRep(b, n1)
	m.SetVertRep(p, n2)
	m.SetVertRep(q, tn2)
	m.SetVertRep(x, eXP)

	return x, [4]mesh.FaceHandle{faceAXP, faceXBP, faceXAQ, faceBXQ}, nil
}
