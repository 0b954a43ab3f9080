// Package mesherr defines the kernel's error taxonomy: a small set of
// sentinel errors plus typed wrappers that carry the offending handles.
//
// Error policy (mirrors the construction-layer discipline elsewhere in
// this module):
//   - Only sentinel variables are exposed for errors.Is comparisons.
//   - Sentinels are never constructed with formatted text; context is
//     attached by wrapping with %w.
//   - Callers that need the concrete vertices/face involved use
//     errors.As against the typed wrapper types below.
//
// Invariant violations caught by package verify are a separate concern —
// they are programming errors, reported as a []verify.Violation, not as
// an error value from this package. See verify.MustHold.
package mesherr

import (
	"errors"
	"fmt"

	"github.com/polymesh/polymesh/mesh"
)

// Sentinel errors. Branch on these with errors.Is; never compare strings.
var (
	// ErrNoTwin: a directed half-edge (u->v) exists without its opposing
	// (v->u). Indicates an unclosed surface or non-manifold input.
	ErrNoTwin = errors.New("mesherr: no twin for directed edge")

	// ErrDuplicateEdge: the directed half-edge (u->v) was declared by two
	// distinct faces.
	ErrDuplicateEdge = errors.New("mesherr: duplicate directed edge")

	// ErrNotOrientable: consistent face winding could not be established.
	ErrNotOrientable = errors.New("mesherr: mesh is not orientable")

	// ErrNotConnected: reserved; construction does not itself require
	// connectivity, but algorithms that do can report this.
	ErrNotConnected = errors.New("mesherr: mesh is not connected")

	// ErrFaceNotPolygon: a face has fewer than three vertices.
	ErrFaceNotPolygon = errors.New("mesherr: face is not a polygon")

	// ErrFaceNotPlanar: a face's vertices are not coplanar within tolerance.
	ErrFaceNotPlanar = errors.New("mesherr: face is not planar")

	// ErrFaceNotSimple: two non-adjacent boundary segments of a face cross.
	ErrFaceNotSimple = errors.New("mesherr: face boundary is not simple")

	// ErrUnknown: adapter-layer I/O or parse failure reflected through.
	ErrUnknown = errors.New("mesherr: unknown error")
)

// TwinError wraps ErrNoTwin with the directed edge's endpoints.
type TwinError struct {
	U, V mesh.VertHandle
}

func (e *TwinError) Error() string {
	return fmt.Sprintf("mesherr: no twin for directed edge (%v -> %v)", e.U, e.V)
}

func (e *TwinError) Unwrap() error { return ErrNoTwin }

// DuplicateEdgeError wraps ErrDuplicateEdge with the directed edge's
// endpoints.
type DuplicateEdgeError struct {
	U, V mesh.VertHandle
}

func (e *DuplicateEdgeError) Error() string {
	return fmt.Sprintf("mesherr: duplicate directed edge (%v -> %v)", e.U, e.V)
}

func (e *DuplicateEdgeError) Unwrap() error { return ErrDuplicateEdge }

// FaceError wraps one of the face-shaped sentinels with the offending face.
type FaceError struct {
	Face FaceHandleAlias
	Kind error // one of ErrFaceNotPolygon, ErrFaceNotPlanar, ErrFaceNotSimple
}

// FaceHandleAlias avoids importing mesh twice under two names; it is
// simply mesh.FaceHandle.
type FaceHandleAlias = mesh.FaceHandle

func (e *FaceError) Error() string {
	return fmt.Sprintf("mesherr: face %v: %s", e.Face, e.Kind)
}

func (e *FaceError) Unwrap() error { return e.Kind }

// NoTwin builds a *TwinError for the directed edge (u, v).
func NoTwin(u, v mesh.VertHandle) error { return &TwinError{U: u, V: v} }

// DuplicateEdge builds a *DuplicateEdgeError for the directed edge (u, v).
func DuplicateEdge(u, v mesh.VertHandle) error { return &DuplicateEdgeError{U: u, V: v} }

// FaceNotPolygon builds a *FaceError reporting that f has fewer than three
// vertices.
func FaceNotPolygon(f mesh.FaceHandle) error { return &FaceError{Face: f, Kind: ErrFaceNotPolygon} }

// FaceNotPlanar builds a *FaceError reporting that f's vertices are not
// coplanar within tolerance.
func FaceNotPlanar(f mesh.FaceHandle) error { return &FaceError{Face: f, Kind: ErrFaceNotPlanar} }

// FaceNotSimple builds a *FaceError reporting that f's boundary
// self-intersects.
func FaceNotSimple(f mesh.FaceHandle) error { return &FaceError{Face: f, Kind: ErrFaceNotSimple} }

// Unknownf wraps an adapter-layer failure with formatted context under
// ErrUnknown.
func Unknownf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnknown)
}
