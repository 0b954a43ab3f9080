// Package topo implements the read-only derived queries over a mesh.Mesh:
// walks along half-edges, vertex one-rings, face boundaries, and a few
// mesh-wide summaries (bounding box, scale, center). Nothing here mutates
// the mesh; every function takes a *mesh.Mesh and returns a value or a
// (value, bool)/(value, error) pair. Orbits are derived by walking
// next/twin on demand, never cached — callers needing the cost amortized
// must memoize themselves and invalidate on every mutation.
package topo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
)

// Root returns e's tail vertex.
func Root(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.VertHandle, bool) {
	return m.Root(e)
}

// Toor returns e's head vertex: the root of e's twin.
func Toor(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.VertHandle, bool) {
	t, ok := m.Twin(e)
	if !ok {
		return mesh.VertHandle{}, false
	}
	return m.Root(t)
}

// Twin returns e's opposing half-edge.
func Twin(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.EdgeHandle, bool) {
	return m.Twin(e)
}

// Next returns e's successor along its face boundary.
func Next(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.EdgeHandle, bool) {
	return m.Next(e)
}

// Face returns e's incident face.
func Face(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.FaceHandle, bool) {
	return m.Face(e)
}

// Vector returns the displacement from e's root to e's head.
func Vector(m *mesh.Mesh, e mesh.EdgeHandle) (mgl64.Vec3, bool) {
	root, ok := Root(m, e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	head, ok := Toor(m, e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	p0, ok := m.Position(root)
	if !ok {
		return mgl64.Vec3{}, false
	}
	p1, ok := m.Position(head)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p1.Sub(p0), true
}

// Size returns e's length.
func Size(m *mesh.Mesh, e mesh.EdgeHandle) (float64, bool) {
	v, ok := Vector(m, e)
	if !ok {
		return 0, false
	}
	return v.Len(), true
}

// MidpointOffset returns position(root(e)) + t*vector(e). t = 0.5 gives
// the conventional "position of an edge" (its midpoint).
func MidpointOffset(m *mesh.Mesh, e mesh.EdgeHandle, t float64) (mgl64.Vec3, bool) {
	root, ok := Root(m, e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	p0, ok := m.Position(root)
	if !ok {
		return mgl64.Vec3{}, false
	}
	v, ok := Vector(m, e)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p0.Add(v.Mul(t)), true
}

// Angle returns the angle in radians between vector(a) and vector(b).
func Angle(m *mesh.Mesh, a, b mesh.EdgeHandle) (float64, bool) {
	va, ok := Vector(m, a)
	if !ok {
		return 0, false
	}
	vb, ok := Vector(m, b)
	if !ok {
		return 0, false
	}
	denom := va.Len() * vb.Len()
	if denom == 0 {
		return 0, false
	}
	cos := va.Dot(vb) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), true
}

// Quad returns the four half-edges neighboring e inside the two faces
// meeting at e: next(e), next(next(e)), next(twin(e)), next(next(twin(e))).
func Quad(m *mesh.Mesh, e mesh.EdgeHandle) ([4]mesh.EdgeHandle, bool) {
	var out [4]mesh.EdgeHandle
	n1, ok := m.Next(e)
	if !ok {
		return out, false
	}
	n2, ok := m.Next(n1)
	if !ok {
		return out, false
	}
	t, ok := m.Twin(e)
	if !ok {
		return out, false
	}
	n3, ok := m.Next(t)
	if !ok {
		return out, false
	}
	n4, ok := m.Next(n3)
	if !ok {
		return out, false
	}
	out = [4]mesh.EdgeHandle{n1, n2, n3, n4}
	return out, true
}

// Neighbors returns the other half-edges on e's face cycle, in boundary
// order starting from next(e).
func Neighbors(m *mesh.Mesh, e mesh.EdgeHandle) []mesh.EdgeHandle {
	var out []mesh.EdgeHandle
	cur, ok := m.Next(e)
	for ok && cur != e {
		out = append(out, cur)
		cur, ok = m.Next(cur)
	}
	return out
}

// EdgeBetweenVerts returns the directed half-edge u->v, if one exists, by
// walking u's one-ring. Returns false if no such half-edge is found.
func EdgeBetweenVerts(m *mesh.Mesh, u, v mesh.VertHandle) (mesh.EdgeHandle, bool) {
	for _, e := range VertEdges(m, u) {
		head, ok := Toor(m, e)
		if ok && head == v {
			return e, true
		}
	}
	return mesh.EdgeHandle{}, false
}
