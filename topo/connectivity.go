package topo

import "github.com/polymesh/polymesh/mesh"

// IsConnected reports whether every face of m is reachable from every
// other face via shared edges. It performs a breadth-first search over
// the face-adjacency graph (FaceNeighbors), starting from the first face
// in m.FaceIDs() (insertion-stable order) for a deterministic traversal,
// and compares
// the number of faces visited against m.NrFaces(). An empty mesh is
// considered connected (vacuously).
func IsConnected(m *mesh.Mesh) bool {
	faces := m.FaceIDs()
	if len(faces) <= 1 {
		return true
	}
	visited := make(map[mesh.FaceHandle]bool, len(faces))
	queue := []mesh.FaceHandle{faces[0]}
	visited[faces[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nf := range FaceNeighbors(m, cur) {
			if visited[nf] {
				continue
			}
			visited[nf] = true
			queue = append(queue, nf)
		}
	}
	return len(visited) == len(faces)
}
