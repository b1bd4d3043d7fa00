package crease

// SmoothRegions partitions faces into maximal regions connected through
// smooth shared edges. Two faces are adjacent iff they share an interior
// edge that is not sharp. Components are found by breadth-first search
// seeded from faces in scan order, so region ids form a dense range
// [0, n) and the id assignment is deterministic for a given mesh and
// labeling. A face with no smooth edges forms a singleton region.
func SmoothRegions(m Mesh, edgeFaces map[Edge][]int, sharp map[Edge]bool) (faceRegion []int, n int) {
	adj := make([][]int, len(m.Triangles))
	for e, faces := range edgeFaces {
		if sharp[e] || len(faces) != 2 {
			continue
		}
		a, b := faces[0], faces[1]
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	faceRegion = make([]int, len(m.Triangles))
	for i := range faceRegion {
		faceRegion[i] = -1
	}
	queue := make([]int, 0, len(m.Triangles))
	for start := range m.Triangles {
		if faceRegion[start] >= 0 {
			continue
		}
		faceRegion[start] = n
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[f] {
				if faceRegion[nbr] < 0 {
					faceRegion[nbr] = n
					queue = append(queue, nbr)
				}
			}
		}
		n++
	}
	return faceRegion, n
}
