package topo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
)

// FaceEdges returns f's boundary half-edges starting at rep(f) and
// following next until the cycle closes back to rep(f).
func FaceEdges(m *mesh.Mesh, f mesh.FaceHandle) []mesh.EdgeHandle {
	rep, ok := m.FaceRep(f)
	if !ok {
		return nil
	}
	out := []mesh.EdgeHandle{rep}
	limit := m.NrEdges() + 1
	cur := rep
	for i := 0; i < limit; i++ {
		nxt, ok := m.Next(cur)
		if !ok || nxt == rep {
			return out
		}
		out = append(out, nxt)
		cur = nxt
	}
	return out
}

// FaceVertices returns the root vertices of f's boundary half-edges, in
// boundary order.
func FaceVertices(m *mesh.Mesh, f mesh.FaceHandle) []mesh.VertHandle {
	edges := FaceEdges(m, f)
	out := make([]mesh.VertHandle, 0, len(edges))
	for _, e := range edges {
		if root, ok := Root(m, e); ok {
			out = append(out, root)
		}
	}
	return out
}

// FaceNeighbors returns the face across each boundary half-edge's twin,
// in boundary order (parallel to FaceEdges).
func FaceNeighbors(m *mesh.Mesh, f mesh.FaceHandle) []mesh.FaceHandle {
	var out []mesh.FaceHandle
	for _, e := range FaceEdges(m, f) {
		t, ok := m.Twin(e)
		if !ok {
			continue
		}
		nf, ok := m.Face(t)
		if !ok {
			continue
		}
		out = append(out, nf)
	}
	return out
}

// VectorArea returns an oriented normal scaled by twice f's area:
// sum over boundary edges of position(root(e)) x position(toor(e)).
func VectorArea(m *mesh.Mesh, f mesh.FaceHandle) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, e := range FaceEdges(m, f) {
		tail, ok := Root(m, e)
		if !ok {
			continue
		}
		head, ok := Toor(m, e)
		if !ok {
			continue
		}
		p0, ok := m.Position(tail)
		if !ok {
			continue
		}
		p1, ok := m.Position(head)
		if !ok {
			continue
		}
		sum = sum.Add(p0.Cross(p1))
	}
	return sum
}

// FaceSize returns f's area, |vector_area(f)| / 2.
func FaceSize(m *mesh.Mesh, f mesh.FaceHandle) float64 {
	return VectorArea(m, f).Len() / 2
}

// FacePosition returns f's centroid: the arithmetic mean of its boundary
// vertex positions.
func FacePosition(m *mesh.Mesh, f mesh.FaceHandle) (mgl64.Vec3, bool) {
	verts := FaceVertices(m, f)
	if len(verts) == 0 {
		return mgl64.Vec3{}, false
	}
	var sum mgl64.Vec3
	for _, v := range verts {
		p, ok := m.Position(v)
		if !ok {
			return mgl64.Vec3{}, false
		}
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(verts))), true
}

// FaceNormal returns the unit vector (p1-p0) x (p2-p0) from f's first
// three boundary vertices. For non-planar faces this picks the plane
// through the first three vertices only — callers needing a
// best-fit normal must planarize first.
func FaceNormal(m *mesh.Mesh, f mesh.FaceHandle) (mgl64.Vec3, bool) {
	verts := FaceVertices(m, f)
	if len(verts) < 3 {
		return mgl64.Vec3{}, false
	}
	p0, ok := m.Position(verts[0])
	if !ok {
		return mgl64.Vec3{}, false
	}
	p1, ok := m.Position(verts[1])
	if !ok {
		return mgl64.Vec3{}, false
	}
	p2, ok := m.Position(verts[2])
	if !ok {
		return mgl64.Vec3{}, false
	}
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	if n.Len() == 0 {
		return mgl64.Vec3{}, false
	}
	return n.Normalize(), true
}

// FaceBetweenVerts returns the face on the left of the directed half-edge
// a->b, if that half-edge exists.
func FaceBetweenVerts(m *mesh.Mesh, a, b mesh.VertHandle) (mesh.FaceHandle, bool) {
	e, ok := EdgeBetweenVerts(m, a, b)
	if !ok {
		return mesh.FaceHandle{}, false
	}
	return m.Face(e)
}
