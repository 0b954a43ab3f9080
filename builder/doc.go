// Package builder constructs a half-edge mesh from flat polygon input: a
// list of polygons, each a list of input-vertex indices, plus a parallel
// array of positions. Build is the single orchestrator — there is no
// functional-options surface here: construction has no configurable
// variants, only a fixed sequence followed by post-construction
// verification.
//
// Build never returns a partially constructed mesh: any topology error
// (mesherr.ErrDuplicateEdge, mesherr.ErrNoTwin) or verification failure
// aborts before the mesh is handed back.
package builder
