package refine

import "github.com/go-gl/mathgl/mgl64"

func signedArea2D(poly []mgl64.Vec2) float64 {
	sum := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		sum += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return sum / 2
}

func cross2D(a, b, c mgl64.Vec2) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func pointInTriangle2D(a, b, c, p mgl64.Vec2) bool {
	d1 := cross2D(a, b, p)
	d2 := cross2D(b, c, p)
	d3 := cross2D(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// earClip triangulates the simple polygon poly (indices 0..len(poly)-1,
// in boundary order) via classical ear clipping, returning d-2 triangles
// as index triples into poly. It preserves poly's own winding: the
// returned triangles wind the same way (CW or CCW) as the input polygon.
func earClip(poly []mgl64.Vec2) [][3]int {
	n := len(poly)
	if n < 3 {
		return nil
	}
	ccw := signedArea2D(poly) >= 0

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	var triangles [][3]int
	guard := 0
	maxGuard := n * n * 2
	for len(indices) > 3 && guard < maxGuard {
		guard++
		m := len(indices)
		earFound := false
		for i := 0; i < m; i++ {
			iPrev := indices[(i-1+m)%m]
			iCur := indices[i]
			iNext := indices[(i+1)%m]

			cr := cross2D(poly[iPrev], poly[iCur], poly[iNext])
			convex := cr > 0
			if !ccw {
				convex = cr < 0
			}
			if !convex {
				continue
			}

			isEar := true
			for _, j := range indices {
				if j == iPrev || j == iCur || j == iNext {
					continue
				}
				if pointInTriangle2D(poly[iPrev], poly[iCur], poly[iNext], poly[j]) {
					isEar = false
					break
				}
			}
			if !isEar {
				continue
			}

			triangles = append(triangles, [3]int{iPrev, iCur, iNext})
			indices = append(indices[:i], indices[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			break // degenerate or self-intersecting input; stop rather than loop forever
		}
	}
	if len(indices) == 3 {
		triangles = append(triangles, [3]int{indices[0], indices[1], indices[2]})
	}
	return triangles
}
