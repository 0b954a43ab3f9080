package mesh

// Snapshot returns a deep, independent copy of m: every association map
// and every stored position, with handle identity preserved exactly — a
// VertHandle valid in m names the same slot and generation, with the same
// position, in the returned copy. Mutating the snapshot never affects m
// and vice versa.
func (m *Mesh) Snapshot() *Mesh {
	return &Mesh{
		verts:    m.verts.Clone(),
		edges:    m.edges.Clone(),
		faces:    m.faces.Clone(),
		vertRep:  m.vertRep.Clone(),
		edgeRoot: m.edgeRoot.Clone(),
		edgeFace: m.edgeFace.Clone(),
		edgeNext: m.edgeNext.Clone(),
		edgeTwin: m.edgeTwin.Clone(),
		faceRep:  m.faceRep.Clone(),
	}
}

// Restore replaces the receiver's entire contents with a deep copy of
// src's, preserving src's handle identity in the receiver. It is the
// inverse of Snapshot: m.Restore(snap) after any sequence of mutations on
// m returns m to exactly the state snap was taken in.
func (m *Mesh) Restore(src *Mesh) {
	*m = *src.Snapshot()
}
