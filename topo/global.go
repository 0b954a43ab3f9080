package topo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/mesh"
)

// AABB is an axis-aligned bounding box expressed as a center and
// half-extents, matching the convention the external render adapter
// (out of scope here) expects.
type AABB struct {
	Center      mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// Aabb returns the bounding box of m's vertex point cloud. ok is false for
// an empty mesh.
func Aabb(m *mesh.Mesh) (AABB, bool) {
	ids := m.VertIDs()
	if len(ids) == 0 {
		return AABB{}, false
	}
	min, _ := m.Position(ids[0])
	max := min
	for _, v := range ids[1:] {
		p, _ := m.Position(v)
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	center := min.Add(max).Mul(0.5)
	half := max.Sub(min).Mul(0.5)
	return AABB{Center: center, HalfExtents: half}, true
}

// Center returns the center of m's bounding box.
func Center(m *mesh.Mesh) (mgl64.Vec3, bool) {
	box, ok := Aabb(m)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return box.Center, true
}

// Scale returns a uniform scale factor derived from the bounding box
// using the render adapter's own convention: 20 divided by the largest
// half-extent component.
func Scale(m *mesh.Mesh) (float64, bool) {
	box, ok := Aabb(m)
	if !ok {
		return 0, false
	}
	maxHalf := box.HalfExtents[0]
	if box.HalfExtents[1] > maxHalf {
		maxHalf = box.HalfExtents[1]
	}
	if box.HalfExtents[2] > maxHalf {
		maxHalf = box.HalfExtents[2]
	}
	if maxHalf == 0 {
		return 0, false
	}
	return 20 / maxHalf, true
}
