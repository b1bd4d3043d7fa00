package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/meshtk/crease"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReadOBJ parses a Wavefront OBJ stream. Only v and f records are
// consumed; texture/normal indices in face tokens (v/vt/vn) are ignored.
// Polygonal faces are fan-triangulated around their first vertex, so the
// result is always a triangle mesh. Negative indices are resolved
// relative to the vertices read so far, per the OBJ specification.
func ReadOBJ(r io.Reader) (crease.Mesh, error) {
	var m crease.Mesh
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return crease.Mesh{}, fmt.Errorf("meshio: obj line %d: vertex needs 3 coordinates", line)
			}
			var v r3.Vec
			var err error
			if v.X, err = strconv.ParseFloat(fields[1], 64); err == nil {
				if v.Y, err = strconv.ParseFloat(fields[2], 64); err == nil {
					v.Z, err = strconv.ParseFloat(fields[3], 64)
				}
			}
			if err != nil {
				return crease.Mesh{}, fmt.Errorf("meshio: obj line %d: %v", line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			idx, err := parseFaceIndices(fields[1:], len(m.Vertices), line)
			if err != nil {
				return crease.Mesh{}, err
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Triangles = append(m.Triangles, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return crease.Mesh{}, fmt.Errorf("meshio: reading obj: %w", err)
	}
	return m, nil
}

func parseFaceIndices(tokens []string, nverts, line int) ([]int, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("meshio: obj line %d: face needs at least 3 vertices", line)
	}
	idx := make([]int, len(tokens))
	for i, tok := range tokens {
		// Face tokens may carry texture/normal references: v, v/vt,
		// v//vn or v/vt/vn. Only the vertex index matters here.
		if slash := strings.IndexByte(tok, '/'); slash >= 0 {
			tok = tok[:slash]
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("meshio: obj line %d: bad face index %q", line, tok)
		}
		switch {
		case v > 0 && v <= nverts:
			idx[i] = v - 1
		case v < 0 && -v <= nverts:
			idx[i] = nverts + v
		default:
			return nil, fmt.Errorf("meshio: obj line %d: %w", line, crease.ErrVertexIndex)
		}
	}
	return idx, nil
}
