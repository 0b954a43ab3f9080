package topo

import (
	"math"

	"github.com/polymesh/polymesh/mesh"
)

// VertEdges enumerates v's outgoing half-edges by walking e <- next(twin(e))
// starting from rep(v) until the orbit closes. This traverses the vertex's
// one-ring in a consistent rotational sense; a orbit that never closes
// (exceeding the mesh's half-edge count) indicates a broken invariant
// rather than a degenerate vertex; the walk then stops at that bound and
// returns what was walked so far, since this package does not panic.
func VertEdges(m *mesh.Mesh, v mesh.VertHandle) []mesh.EdgeHandle {
	rep, ok := m.VertRep(v)
	if !ok {
		return nil
	}
	out := []mesh.EdgeHandle{rep}
	limit := m.NrEdges() + 1
	cur := rep
	for i := 0; i < limit; i++ {
		t, ok := m.Twin(cur)
		if !ok {
			return out
		}
		nxt, ok := m.Next(t)
		if !ok {
			return out
		}
		if nxt == rep {
			return out
		}
		out = append(out, nxt)
		cur = nxt
	}
	return out
}

// VertFaces returns the distinct faces incident to v's outgoing edges.
func VertFaces(m *mesh.Mesh, v mesh.VertHandle) []mesh.FaceHandle {
	var out []mesh.FaceHandle
	seen := make(map[mesh.FaceHandle]bool)
	for _, e := range VertEdges(m, v) {
		f, ok := m.Face(e)
		if !ok || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// VertNeighbors returns the vertices at the far end of v's outgoing edges.
func VertNeighbors(m *mesh.Mesh, v mesh.VertHandle) []mesh.VertHandle {
	var out []mesh.VertHandle
	for _, e := range VertEdges(m, v) {
		if head, ok := Toor(m, e); ok {
			out = append(out, head)
		}
	}
	return out
}

// Distance returns the Euclidean distance between two vertex positions.
func Distance(m *mesh.Mesh, a, b mesh.VertHandle) (float64, bool) {
	pa, ok := m.Position(a)
	if !ok {
		return 0, false
	}
	pb, ok := m.Position(b)
	if !ok {
		return 0, false
	}
	return pa.Sub(pb).Len(), true
}

// VertexAngle returns the angle at b of triangle a-b-c.
func VertexAngle(m *mesh.Mesh, a, b, c mesh.VertHandle) (float64, bool) {
	pa, ok := m.Position(a)
	if !ok {
		return 0, false
	}
	pb, ok := m.Position(b)
	if !ok {
		return 0, false
	}
	pc, ok := m.Position(c)
	if !ok {
		return 0, false
	}
	u := pa.Sub(pb)
	w := pc.Sub(pb)
	denom := u.Len() * w.Len()
	if denom == 0 {
		return 0, false
	}
	cos := u.Dot(w) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), true
}

// Defect returns the angular defect at v: 2*pi minus the sum of the
// corner angles of every outgoing edge against its one-ring successor.
// This is the discrete curvature used in the Gauss-Bonnet identity: the
// sum of Defect over every vertex of a closed orientable surface equals
// 2*pi times the Euler characteristic.
func Defect(m *mesh.Mesh, v mesh.VertHandle) float64 {
	sum := 0.0
	for _, e := range VertEdges(m, v) {
		t, ok := m.Twin(e)
		if !ok {
			continue
		}
		next, ok := m.Next(t)
		if !ok {
			continue
		}
		a, ok := Angle(m, e, next)
		if !ok {
			continue
		}
		sum += a
	}
	return 2*math.Pi - sum
}

// Wedge is one of the two arcs of a vertex's one-ring separated by two
// boundary vertices, together with its total angular measure.
type Wedge struct {
	Edges []mesh.EdgeHandle
	Angle float64
}

// Wedges returns the two arcs of b's one-ring separated by a and c, in
// the order (arc from a to c, arc from c to a) walking outgoing edges in
// the orbit's natural rotational order. If a or c do not appear among b's
// neighbors, ok is false.
func Wedges(m *mesh.Mesh, a, b, c mesh.VertHandle) (w1, w2 Wedge, ok bool) {
	edges := VertEdges(m, b)
	if len(edges) == 0 {
		return Wedge{}, Wedge{}, false
	}
	idxOf := func(target mesh.VertHandle) int {
		for i, e := range edges {
			if head, ok := Toor(m, e); ok && head == target {
				return i
			}
		}
		return -1
	}
	ia, ic := idxOf(a), idxOf(c)
	if ia < 0 || ic < 0 {
		return Wedge{}, Wedge{}, false
	}
	n := len(edges)
	collect := func(from, to int) []mesh.EdgeHandle {
		var arc []mesh.EdgeHandle
		for i := from; i != to; i = (i + 1) % n {
			arc = append(arc, edges[i])
		}
		arc = append(arc, edges[to])
		return arc
	}
	angleOf := func(arc []mesh.EdgeHandle) float64 {
		total := 0.0
		for i := 0; i+1 < len(arc); i++ {
			if ang, ok := Angle(m, arc[i], arc[i+1]); ok {
				total += ang
			}
		}
		return total
	}
	arc1 := collect(ia, ic)
	arc2 := collect(ic, ia)
	w1 = Wedge{Edges: arc1, Angle: angleOf(arc1)}
	w2 = Wedge{Edges: arc2, Angle: angleOf(arc2)}
	return w1, w2, true
}

// ShortestWedge returns whichever of w1, w2 has the smaller angular
// measure; ties break toward w1.
func ShortestWedge(w1, w2 Wedge) Wedge {
	if w2.Angle < w1.Angle {
		return w2
	}
	return w1
}
