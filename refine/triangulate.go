package refine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/handle"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
)

// Triangulate returns a copy of src whose faces are all triangles, plus a
// mapping from each newly emitted triangle face back to the original face
// it came from.
//
// Per face of degree d:
//   - d < 3: mesherr.FaceNotPolygon(face).
//   - d == 3: left untouched — same face handle, same three edges, no
//     entry in the origin map.
//   - d > 3: projected into 2D using a reference frame anchored at its
//     first vertex (edge direction for x; edge x normal for y), ear-clipped
//     into d-2 triangles, and replaced: the original face handle is freed
//     and every resulting triangle gets a fresh face handle. Each
//     triangle's three directed edges reuse the original polygon's
//     boundary half-edge wherever one already runs in that direction
//     (leaving its twin into the neighboring face untouched) and allocate
//     a new half-edge pair only for the ear-clipping diagonals internal to
//     this one face.
//
// Failures: mesherr.ErrFaceNotPolygon, mesherr.ErrFaceNotPlanar (the 2D
// projection frame cannot be built: the first boundary edge has zero
// length or the first three vertices are collinear; a face that is merely
// non-planar is projected onto the plane of its first three vertices and
// is not rejected), mesherr.ErrNoTwin
// (a diagonal's reverse direction was never emitted by a sibling
// triangle — indicates the face's boundary was not a simple polygon).
func Triangulate(src *mesh.Mesh) (*mesh.Mesh, *handle.Assoc[mesh.FaceTag, mesh.FaceHandle], error) {
	dst := src.Snapshot()
	origin := handle.NewAssoc[mesh.FaceTag, mesh.FaceHandle]()

	for _, f := range src.FaceIDs() {
		verts := topo.FaceVertices(dst, f)
		d := len(verts)
		if d < 3 {
			return nil, nil, mesherr.FaceNotPolygon(f)
		}
		if d == 3 {
			continue
		}

		edges := topo.FaceEdges(dst, f)
		proj, ok := projectFace(dst, f, verts)
		if !ok {
			return nil, nil, mesherr.FaceNotPlanar(f)
		}
		tris := earClip(proj)

		boundary := make(map[[2]mesh.VertHandle]mesh.EdgeHandle, d)
		for i, e := range edges {
			boundary[[2]mesh.VertHandle{verts[i], verts[(i+1)%d]}] = e
		}

		dst.RemoveFace(f)

		diagonals := make(map[[2]mesh.VertHandle]mesh.EdgeHandle)
		for _, tri := range tris {
			triVerts := [3]mesh.VertHandle{verts[tri[0]], verts[tri[1]], verts[tri[2]]}
			newFace := dst.AddFace()
			origin.Set(newFace, f)

			var triEdges [3]mesh.EdgeHandle
			for k := 0; k < 3; k++ {
				v1, v2 := triVerts[k], triVerts[(k+1)%3]
				if e, ok := boundary[[2]mesh.VertHandle{v1, v2}]; ok {
					triEdges[k] = e
				} else if e, ok := diagonals[[2]mesh.VertHandle{v1, v2}]; ok {
					triEdges[k] = e
				} else {
					e := dst.AddEdge()
					dst.SetRoot(e, v1)
					diagonals[[2]mesh.VertHandle{v1, v2}] = e
					triEdges[k] = e
				}
				dst.SetFace(triEdges[k], newFace)
			}
			for k := 0; k < 3; k++ {
				dst.SetNext(triEdges[k], triEdges[(k+1)%3])
			}
			dst.SetFaceRep(newFace, triEdges[0])
			for k := 0; k < 3; k++ {
				dst.SetVertRep(triVerts[k], triEdges[k])
			}
		}

		for pair, e := range diagonals {
			reverse := [2]mesh.VertHandle{pair[1], pair[0]}
			twin, ok := diagonals[reverse]
			if !ok {
				return nil, nil, mesherr.NoTwin(pair[0], pair[1])
			}
			dst.SetTwin(e, twin)
		}
	}

	return dst, origin, nil
}

// projectFace projects f's boundary vertices into a 2D plane anchored at
// verts[0]: the first boundary edge's direction is the x-axis, and that
// edge crossed with the face normal is the y-axis.
func projectFace(m *mesh.Mesh, f mesh.FaceHandle, verts []mesh.VertHandle) ([]mgl64.Vec2, bool) {
	if len(verts) < 3 {
		return nil, false
	}
	p0, ok := m.Position(verts[0])
	if !ok {
		return nil, false
	}
	p1, ok := m.Position(verts[1])
	if !ok {
		return nil, false
	}
	normal, ok := topo.FaceNormal(m, f)
	if !ok {
		return nil, false
	}
	ex := p1.Sub(p0)
	if ex.Len() == 0 {
		return nil, false
	}
	ex = ex.Normalize()
	ey := ex.Cross(normal)
	if ey.Len() == 0 {
		return nil, false
	}
	ey = ey.Normalize()

	out := make([]mgl64.Vec2, len(verts))
	for i, v := range verts {
		p, ok := m.Position(v)
		if !ok {
			return nil, false
		}
		rel := p.Sub(p0)
		out[i] = mgl64.Vec2{rel.Dot(ex), rel.Dot(ey)}
	}
	return out, true
}
