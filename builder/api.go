package builder

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/polymesh/polymesh/handle"
	"github.com/polymesh/polymesh/mesh"
	"github.com/polymesh/polymesh/mesherr"
	"github.com/polymesh/polymesh/verify"
)

// directedKey is the (u, v) lookup key used to pair each half-edge with
// its twin during construction — the same key shape the triangulator
// (package refine) reuses for diagonal twin-assignment.
type directedKey struct {
	u, v mesh.VertHandle
}

// Build constructs a mesh from faces (each a list of 0-based indices into
// positions, ordered counter-clockwise when viewed from outside the
// surface) and the parallel positions array.
//
// Algorithm:
//  1. Allocate a vertex for every input index that appears in any
//     polygon, recording index<->handle in the returned vmap.
//  2. For each polygon in order: allocate a face, allocate one half-edge
//     per boundary edge with root/face set and next linked around the
//     ring, and record (start, end) -> half-edge.
//  3. Twin assignment: for each recorded (u, v) -> e, look up (v, u). If
//     present, link the two half-edges as twins. If absent, fail with
//     mesherr.NoTwin(u, v). A directed pair recorded twice fails with
//     mesherr.DuplicateEdge(u, v).
//
// On success, the result has already passed Properties, References,
// Invariants, and Polygonality; Build never returns a mesh that fails any
// of those checks. On any error, the returned mesh and maps are nil — no
// partially built mesh is ever handed back.
func Build(faces [][]int, positions []mgl64.Vec3) (*mesh.Mesh, *handle.IndexMap[mesh.VertTag], *handle.IndexMap[mesh.FaceTag], error) {
	m := mesh.New()
	vmap := handle.NewIndexMap[mesh.VertTag]()
	fmap := handle.NewIndexMap[mesh.FaceTag]()

	byIndex := make(map[int]mesh.VertHandle)
	for _, poly := range faces {
		for _, idx := range poly {
			if _, ok := byIndex[idx]; ok {
				continue
			}
			if idx < 0 || idx >= len(positions) {
				return nil, nil, nil, mesherr.Unknownf("vertex index %d out of range [0,%d)", idx, len(positions))
			}
			v := m.AddVertex(positions[idx])
			byIndex[idx] = v
			vmap.Bind(idx, v)
		}
	}

	// pairOrder preserves first-seen order of (u,v) pairs so a missing
	// twin or a duplicate is always reported against the same pair
	// regardless of map iteration order.
	pairs := make(map[directedKey]mesh.EdgeHandle)
	var pairOrder []directedKey

	for fi, poly := range faces {
		f := m.AddFace()
		fmap.Bind(fi, f)

		n := len(poly)
		edges := make([]mesh.EdgeHandle, n)
		for i := 0; i < n; i++ {
			e := m.AddEdge()
			edges[i] = e
			u := byIndex[poly[i]]
			m.SetRoot(e, u)
			m.SetFace(e, f)
			m.SetVertRep(u, e) // last write wins: any one outgoing edge suffices as a representative
		}
		for i := 0; i < n; i++ {
			m.SetNext(edges[i], edges[(i+1)%n])
		}
		m.SetFaceRep(f, edges[0])

		for i := 0; i < n; i++ {
			u := byIndex[poly[i]]
			v := byIndex[poly[(i+1)%n]]
			key := directedKey{u, v}
			if _, dup := pairs[key]; dup {
				return nil, nil, nil, mesherr.DuplicateEdge(u, v)
			}
			pairs[key] = edges[i]
			pairOrder = append(pairOrder, key)
		}
	}

	for _, key := range pairOrder {
		e := pairs[key]
		twinKey := directedKey{key.v, key.u}
		te, ok := pairs[twinKey]
		if !ok {
			return nil, nil, nil, mesherr.NoTwin(key.u, key.v)
		}
		m.SetTwin(e, te)
	}

	if violations := verify.Properties(m); len(violations) > 0 {
		return nil, nil, nil, mesherr.Unknownf("post-construction property check failed: %s", violations[0].Error())
	}
	if violations := verify.References(m); len(violations) > 0 {
		return nil, nil, nil, mesherr.Unknownf("post-construction reference check failed: %s", violations[0].Error())
	}
	if violations := verify.Invariants(m, verify.DefaultMaxFaceDegree); len(violations) > 0 {
		return nil, nil, nil, mesherr.Unknownf("post-construction invariant check failed: %s", violations[0].Error())
	}
	if violations := verify.Polygonality(m); len(violations) > 0 {
		return nil, nil, nil, mesherr.Unknownf("post-construction polygonality check failed: %s", violations[0].Error())
	}

	return m, vmap, fmap, nil
}
