package refine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/topo"
	"github.com/polymesh/polymesh/verify"
)

// planarSnapEps is the normalized-x tolerance within which a crossing is
// treated as landing exactly on an endpoint of a-b.
const planarSnapEps = 1e-3

// planarIntersectEps is the tolerance passed to the underlying 2D segment
// intersection test.
const planarIntersectEps = 1e-9

// RefineAtPlanarCrossing embeds the two triangles sharing edge a-b into a
// plane using only the five measured edge lengths (|ab|, |a-c1|, |b-c1|,
// |a-c2|, |b-c2|), with a at the origin, b on the positive x-axis, c1
// below the x-axis and c2 above it, then finds where segment c1-c2
// crosses a-b. Let t be the normalized x-coordinate of that crossing:
//
//   - t < 1e-3: returns a (snap), no split performed.
//   - t > 1-1e-3: returns b (snap), no split performed.
//   - otherwise: splits a-b via SplitEdge, repositions the new vertex to
//     position(a) + t*(position(b)-position(a)), and returns it.
//
// Policy decision: if the two segments do not intersect in this planar
// embedding, this is a successful no-op — it returns the zero VertHandle,
// false, and a nil error, since a non-crossing pair is routine for a
// caller probing many edges during geodesic refinement, not exceptional.
func RefineAtPlanarCrossing(m *mesh.Mesh, a, b mesh.VertHandle) (mesh.VertHandle, bool, error) {
	e, ok := topo.EdgeBetweenVerts(m, a, b)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: no edge between given vertices")
	}
	te, ok := m.Twin(e)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: edge %v has no twin", e)
	}
	n1, ok := m.Next(e)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: malformed face at %v", e)
	}
	c1, ok := topo.Toor(m, n1)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: malformed face at %v", e)
	}
	tn1, ok := m.Next(te)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: malformed face at %v", te)
	}
	c2, ok := topo.Toor(m, tn1)
	if !ok {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: malformed face at %v", te)
	}

	dAB, ok := topo.Distance(m, a, b)
	if !ok || dAB == 0 {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: degenerate edge a-b")
	}
	dAC1, _ := topo.Distance(m, a, c1)
	dBC1, _ := topo.Distance(m, b, c1)
	dAC2, _ := topo.Distance(m, a, c2)
	dBC2, _ := topo.Distance(m, b, c2)

	pa := mgl64.Vec2{0, 0}
	pb := mgl64.Vec2{dAB, 0}
	pc1, ok1 := placeBySideLengths(dAB, dAC1, dBC1, -1)
	pc2, ok2 := placeBySideLengths(dAB, dAC2, dBC2, 1)
	if !ok1 || !ok2 {
		return mesh.VertHandle{}, false, mesherr.Unknownf("RefineAtPlanarCrossing: degenerate triangle in planar embedding")
	}

	hit, crossed := verify.SegmentSegment2D(pa, pb, pc1, pc2, planarIntersectEps)
	if !crossed {
		return mesh.VertHandle{}, false, nil
	}

	t := hit[0] / dAB
	if t < planarSnapEps {
		return a, false, nil
	}
	if t > 1-planarSnapEps {
		return b, false, nil
	}

	x, _, err := SplitEdge(m, e)
	if err != nil {
		return mesh.VertHandle{}, false, err
	}
	posA, _ := m.Position(a)
	posB, _ := m.Position(b)
	m.SetPosition(x, posA.Add(posB.Sub(posA).Mul(t)))
	return x, true, nil
}

// placeBySideLengths places the third vertex of a triangle given the base
// length (along the positive x-axis, from the origin), the distance from
// the origin to the third vertex, and the distance from the base's far
// endpoint to the third vertex, via the law of cosines. ySign selects
// which side of the base the point is placed on (-1 below, +1 above).
func placeBySideLengths(base, distFromOrigin, distFromFar float64, ySign float64) (mgl64.Vec2, bool) {
	x := (base*base + distFromOrigin*distFromOrigin - distFromFar*distFromFar) / (2 * base)
	y2 := distFromOrigin*distFromOrigin - x*x
	if y2 < 0 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{x, ySign * math.Sqrt(y2)}, true
}
