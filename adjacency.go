package crease

// EdgeFaces builds the edge-face incidence index: every edge of every
// triangle maps to the ordered list of faces containing it, in face scan
// order. The total number of incidence entries is 3x the face count by
// construction. Incidence cardinality classifies the edge: 1 boundary,
// 2 manifold interior, >=3 non-manifold.
func EdgeFaces(m Mesh) map[Edge][]int {
	index := make(map[Edge][]int, 3*len(m.Triangles)/2)
	for fi, tri := range m.Triangles {
		for j := 0; j < 3; j++ {
			e := NewEdge(tri[j], tri[(j+1)%3])
			index[e] = append(index[e], fi)
		}
	}
	return index
}
