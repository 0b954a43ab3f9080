package verify

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TriangleArea returns the area of triangle a-b-c.
func TriangleArea(a, b, c mgl64.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

// TriangleContainsPoint reports whether p, assumed coplanar with a, b, c,
// lies within the closed triangle a-b-c (barycentric sign test).
func TriangleContainsPoint(a, b, c, p mgl64.Vec3) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	total := n.Dot(n)
	if total == 0 {
		return false
	}
	u := c.Sub(b).Cross(p.Sub(b)).Dot(n)
	v := a.Sub(c).Cross(p.Sub(c)).Dot(n)
	w := b.Sub(a).Cross(p.Sub(a)).Dot(n)
	const eps = -1e-9 * 1
	return u >= eps*math.Abs(total) && v >= eps*math.Abs(total) && w >= eps*math.Abs(total)
}

// ProjectPointOntoPlane projects p onto the plane through planePoint with
// unit normal planeNormal.
func ProjectPointOntoPlane(p, planePoint, planeNormal mgl64.Vec3) mgl64.Vec3 {
	n := planeNormal.Normalize()
	d := p.Sub(planePoint).Dot(n)
	return p.Sub(n.Mul(d))
}

// SegmentSegment2D returns the intersection point of segments p0-p1 and
// p2-p3 in the plane, if one exists within tolerance eps (proper crossing
// or an endpoint touch). ok is false for parallel, non-intersecting, or
// purely-collinear-overlapping segments (the overlapping case is reported
// as no single intersection point).
func SegmentSegment2D(p0, p1, p2, p3 mgl64.Vec2, eps float64) (mgl64.Vec2, bool) {
	r := p1.Sub(p0)
	s := p3.Sub(p2)
	denom := r[0]*s[1] - r[1]*s[0]
	qmp := p2.Sub(p0)
	if math.Abs(denom) < eps {
		return mgl64.Vec2{}, false // parallel (including collinear-overlap)
	}
	t := (qmp[0]*s[1] - qmp[1]*s[0]) / denom
	u := (qmp[0]*r[1] - qmp[1]*r[0]) / denom
	lo, hi := -eps, 1+eps
	if t < lo || t > hi || u < lo || u > hi {
		return mgl64.Vec2{}, false
	}
	return p0.Add(r.Mul(t)), true
}

// SegmentSegment3D returns the intersection point of segments p0-p1 and
// p2-p3 in 3-space, if one exists within tolerance eps. The four points
// must be coplanar (within eps); the routine checks this, then reduces to
// a 2D problem in that plane.
func SegmentSegment3D(p0, p1, p2, p3 mgl64.Vec3, eps float64) (mgl64.Vec3, bool) {
	d1 := p1.Sub(p0)
	d2 := p3.Sub(p2)
	n := d1.Cross(d2)
	if n.Len() < eps {
		// directions parallel; fall back to checking coplanarity via the
		// triangle formed by p0,p1,p2 and testing p3's distance from it.
		n = d1.Cross(p2.Sub(p0))
		if n.Len() < eps {
			return mgl64.Vec3{}, false
		}
	}
	// coplanarity check: signed distance of p2 (and p3) from the plane
	// through p0 spanned by d1 and (p2-p0).
	planeNormal := d1.Cross(p2.Sub(p0))
	if planeNormal.Len() < eps {
		planeNormal = d1.Cross(d2)
	}
	if planeNormal.Len() < eps {
		return mgl64.Vec3{}, false
	}
	planeNormal = planeNormal.Normalize()
	if math.Abs(p3.Sub(p0).Dot(planeNormal)) > eps {
		return mgl64.Vec3{}, false // not coplanar
	}

	// build a 2D basis in the plane.
	ex := d1.Normalize()
	ey := planeNormal.Cross(ex).Normalize()
	to2D := func(p mgl64.Vec3) mgl64.Vec2 {
		rel := p.Sub(p0)
		return mgl64.Vec2{rel.Dot(ex), rel.Dot(ey)}
	}
	q0, q1, q2, q3 := to2D(p0), to2D(p1), to2D(p2), to2D(p3)
	hit2D, ok := SegmentSegment2D(q0, q1, q2, q3, eps)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return p0.Add(ex.Mul(hit2D[0])).Add(ey.Mul(hit2D[1])), true
}

// DistancePointTriangle returns the Euclidean distance from p to the
// closest point on the (filled) triangle a-b-c.
func DistancePointTriangle(p, a, b, c mgl64.Vec3) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return p.Sub(a).Len()
	}

	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return p.Sub(b).Len()
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return p.Sub(a.Add(ab.Mul(v))).Len()
	}

	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return p.Sub(c).Len()
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return p.Sub(a.Add(ac.Mul(w))).Len()
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return p.Sub(b.Add(c.Sub(b).Mul(w))).Len()
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	closest := a.Add(ab.Mul(v)).Add(ac.Mul(w))
	return p.Sub(closest).Len()
}
