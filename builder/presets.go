package builder

import "github.com/go-gl/mathgl/mgl64"

// Tetrahedron returns flat polygon input for a regular tetrahedron: four
// triangular faces, outward-facing and counter-clockwise when viewed from
// outside, ready to hand to Build. The vertex coordinates are the
// standard tetrahedron inscribed in a cube
// ((1,1,1),(1,-1,-1),(-1,1,-1),(-1,-1,1)), and the four faces are the
// combinatorics of K4 oriented outward.
func Tetrahedron() (faces [][]int, positions []mgl64.Vec3) {
	positions = []mgl64.Vec3{
		{1, 1, 1},
		{1, -1, -1},
		{-1, 1, -1},
		{-1, -1, 1},
	}
	faces = [][]int{
		{1, 2, 0},
		{3, 1, 0},
		{3, 2, 1},
		{2, 3, 0},
	}
	return faces, positions
}

// Cube returns flat polygon input for the axis-aligned cube with corners
// at (±1, ±1, ±1): eight vertices, six
// quadrilateral faces, outward-facing and counter-clockwise when viewed
// from outside, ready to hand to Build.
func Cube() (faces [][]int, positions []mgl64.Vec3) {
	positions = []mgl64.Vec3{
		{-1, -1, -1}, // 0
		{1, -1, -1},  // 1
		{1, 1, -1},   // 2
		{-1, 1, -1},  // 3
		{-1, -1, 1},  // 4
		{1, -1, 1},   // 5
		{1, 1, 1},    // 6
		{-1, 1, 1},   // 7
	}
	faces = [][]int{
		{0, 3, 2, 1}, // bottom (z = -1), viewed from outside (below)
		{4, 5, 6, 7}, // top (z = +1), viewed from outside (above)
		{0, 1, 5, 4}, // front (y = -1)
		{1, 2, 6, 5}, // right (x = +1)
		{2, 3, 7, 6}, // back (y = +1)
		{3, 0, 4, 7}, // left (x = -1)
	}
	return faces, positions
}
