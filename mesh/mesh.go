// Package mesh holds the DCEL store: vertex positions and the six
// associations (root, face, next, twin per half-edge; a representative
// half-edge per vertex and per face) that together define a half-edge
// mesh's connectivity. Mesh itself enforces nothing — it is a dumb
// container over handle.Arena/handle.Assoc. Invariants I1–I7 are the
// responsibility of the builder and the mutating algorithms in package
// refine; read-only derived queries live in package topo.
//
// Mesh is not safe for concurrent use. Every exported mutating method
// requires exclusive access to the receiver; callers must serialize their
// own access the way any non-thread-safe Go value requires.
package mesh

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/handle"
)

// VertTag, EdgeTag, and FaceTag are phantom marker types distinguishing
// the three handle kinds at compile time. No value of these types is ever
// constructed; they exist only to parameterize handle.Handle.
type (
	VertTag struct{}
	EdgeTag struct{}
	FaceTag struct{}
)

// VertHandle, EdgeHandle, and FaceHandle name a vertex, half-edge, or face
// respectively. A VertHandle cannot be passed where an EdgeHandle or
// FaceHandle is expected — the Go compiler rejects the mismatch.
type (
	VertHandle = handle.Handle[VertTag]
	EdgeHandle = handle.Handle[EdgeTag]
	FaceHandle = handle.Handle[FaceTag]
)

// Mesh is the half-edge store. Zero value is not usable; construct with
// New.
type Mesh struct {
	verts *handle.Arena[VertTag, mgl64.Vec3]
	edges *handle.Arena[EdgeTag, struct{}]
	faces *handle.Arena[FaceTag, struct{}]

	vertRep  *handle.Assoc[VertTag, EdgeHandle] // vertex -> one outgoing half-edge
	edgeRoot *handle.Assoc[EdgeTag, VertHandle]  // half-edge -> tail vertex
	edgeFace *handle.Assoc[EdgeTag, FaceHandle]  // half-edge -> incident face
	edgeNext *handle.Assoc[EdgeTag, EdgeHandle]  // half-edge -> successor on face
	edgeTwin *handle.Assoc[EdgeTag, EdgeHandle]  // half-edge -> opposing half-edge
	faceRep  *handle.Assoc[FaceTag, EdgeHandle]  // face -> one boundary half-edge
}

// New returns an empty Mesh.
func New() *Mesh {
	return &Mesh{
		verts:    handle.NewArena[VertTag, mgl64.Vec3](),
		edges:    handle.NewArena[EdgeTag, struct{}](),
		faces:    handle.NewArena[FaceTag, struct{}](),
		vertRep:  handle.NewAssoc[VertTag, EdgeHandle](),
		edgeRoot: handle.NewAssoc[EdgeTag, VertHandle](),
		edgeFace: handle.NewAssoc[EdgeTag, FaceHandle](),
		edgeNext: handle.NewAssoc[EdgeTag, EdgeHandle](),
		edgeTwin: handle.NewAssoc[EdgeTag, EdgeHandle](),
		faceRep:  handle.NewAssoc[FaceTag, EdgeHandle](),
	}
}

// AddVertex allocates a vertex at position and returns its handle. The new
// vertex has no representative until SetVertRep is called (normally done
// by the builder as soon as one outgoing half-edge is known).
func (m *Mesh) AddVertex(position mgl64.Vec3) VertHandle {
	return m.verts.Insert(position)
}

// AddEdge allocates an empty half-edge slot; its four associations are set
// separately via SetRoot/SetFace/SetNext/SetTwin as the caller establishes
// them. This two-phase shape mirrors the builder's algorithm, which must
// allocate every half-edge of a ring before it can link Next around it.
func (m *Mesh) AddEdge() EdgeHandle {
	return m.edges.Insert(struct{}{})
}

// AddFace allocates a face with no representative yet.
func (m *Mesh) AddFace() FaceHandle {
	return m.faces.Insert(struct{}{})
}

// RemoveVertex frees a vertex slot. Only called by algorithms that have
// already cleared every reference to it.
func (m *Mesh) RemoveVertex(v VertHandle) bool {
	m.vertRep.Unset(v)
	return m.verts.Remove(v)
}

// RemoveEdge frees a half-edge slot and its associations.
func (m *Mesh) RemoveEdge(e EdgeHandle) bool {
	m.edgeRoot.Unset(e)
	m.edgeFace.Unset(e)
	m.edgeNext.Unset(e)
	m.edgeTwin.Unset(e)
	return m.edges.Remove(e)
}

// RemoveFace frees a face slot and its representative.
func (m *Mesh) RemoveFace(f FaceHandle) bool {
	m.faceRep.Unset(f)
	return m.faces.Remove(f)
}

// Position returns a vertex's stored position.
func (m *Mesh) Position(v VertHandle) (mgl64.Vec3, bool) {
	return m.verts.Get(v)
}

// SetPosition overwrites a vertex's position; used after a split by
// callers repositioning the new vertex (see package refine's
// split_edge/split_face position policy).
func (m *Mesh) SetPosition(v VertHandle, position mgl64.Vec3) bool {
	return m.verts.Set(v, position)
}

// VertRep returns the vertex's representative outgoing half-edge.
func (m *Mesh) VertRep(v VertHandle) (EdgeHandle, bool) { return m.vertRep.Get(v) }

// SetVertRep sets the vertex's representative outgoing half-edge.
func (m *Mesh) SetVertRep(v VertHandle, e EdgeHandle) { m.vertRep.Set(v, e) }

// Root returns the half-edge's tail vertex.
func (m *Mesh) Root(e EdgeHandle) (VertHandle, bool) { return m.edgeRoot.Get(e) }

// SetRoot sets the half-edge's tail vertex.
func (m *Mesh) SetRoot(e EdgeHandle, v VertHandle) { m.edgeRoot.Set(e, v) }

// Face returns the half-edge's incident (left) face.
func (m *Mesh) Face(e EdgeHandle) (FaceHandle, bool) { return m.edgeFace.Get(e) }

// SetFace sets the half-edge's incident face.
func (m *Mesh) SetFace(e EdgeHandle, f FaceHandle) { m.edgeFace.Set(e, f) }

// Next returns the half-edge's successor along its face boundary.
func (m *Mesh) Next(e EdgeHandle) (EdgeHandle, bool) { return m.edgeNext.Get(e) }

// SetNext sets the half-edge's successor.
func (m *Mesh) SetNext(e EdgeHandle, next EdgeHandle) { m.edgeNext.Set(e, next) }

// Twin returns the half-edge's opposing half-edge.
func (m *Mesh) Twin(e EdgeHandle) (EdgeHandle, bool) { return m.edgeTwin.Get(e) }

// SetTwin sets the half-edge's opposing half-edge. Callers are expected to
// call this symmetrically (SetTwin(e, f) and SetTwin(f, e)) to maintain I1.
func (m *Mesh) SetTwin(e, twin EdgeHandle) { m.edgeTwin.Set(e, twin) }

// FaceRep returns the face's representative boundary half-edge.
func (m *Mesh) FaceRep(f FaceHandle) (EdgeHandle, bool) { return m.faceRep.Get(f) }

// SetFaceRep sets the face's representative boundary half-edge.
func (m *Mesh) SetFaceRep(f FaceHandle, e EdgeHandle) { m.faceRep.Set(f, e) }

// NrVerts, NrEdges, NrFaces return live element counts.
func (m *Mesh) NrVerts() int { return m.verts.Len() }
func (m *Mesh) NrEdges() int { return m.edges.Len() }
func (m *Mesh) NrFaces() int { return m.faces.Len() }

// VertIDs, EdgeIDs, FaceIDs enumerate live handles in insertion-stable order.
func (m *Mesh) VertIDs() []VertHandle { return m.verts.IDs() }
func (m *Mesh) EdgeIDs() []EdgeHandle { return m.edges.IDs() }
func (m *Mesh) FaceIDs() []FaceHandle { return m.faces.IDs() }

// HasVert, HasEdge, HasFace report liveness of a handle.
func (m *Mesh) HasVert(v VertHandle) bool { return m.verts.Contains(v) }
func (m *Mesh) HasEdge(e EdgeHandle) bool { return m.edges.Contains(e) }
func (m *Mesh) HasFace(f FaceHandle) bool { return m.faces.Contains(f) }

// RandomVerts, RandomEdges, RandomFaces sample n distinct handles uniformly
// without replacement, using the caller-supplied rng for all randomness —
// there is no package-level RNG, so determinism is entirely in the
// caller's hands (benchmark and fuzz harnesses seed their own *rand.Rand).
func (m *Mesh) RandomVerts(n int, rng *rand.Rand) []VertHandle {
	return handle.SampleN(m.verts.IDs(), n, rng)
}
func (m *Mesh) RandomEdges(n int, rng *rand.Rand) []EdgeHandle {
	return handle.SampleN(m.edges.IDs(), n, rng)
}
func (m *Mesh) RandomFaces(n int, rng *rand.Rand) []FaceHandle {
	return handle.SampleN(m.faces.IDs(), n, rng)
}
