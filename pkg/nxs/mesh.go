package nxs

import "fmt"

// DefaultGroupCount is the number of material groups exported by default.
const DefaultGroupCount = 10

// Validate checks that the arrays match the header counts and that every
// triangle references an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Positions) != int(m.Header.VertexCount) {
		return fmt.Errorf("%w: %d positions, header declares %d",
			ErrMalformed, len(m.Positions), m.Header.VertexCount)
	}
	if len(m.Triangles) != int(m.Header.TriangleCount) || len(m.Materials) != len(m.Triangles) {
		return fmt.Errorf("%w: %d triangles and %d materials, header declares %d",
			ErrMalformed, len(m.Triangles), len(m.Materials), m.Header.TriangleCount)
	}

	n := uint32(len(m.Positions))
	for i, t := range m.Triangles {
		if t.I >= n || t.J >= n || t.K >= n {
			return fmt.Errorf("%w: triangle %d (%d, %d, %d) references a vertex outside [0, %d)",
				ErrMalformed, i, t.I, t.J, t.K, n)
		}
	}
	return nil
}

// Groups partitions triangle indices by material for materials 0 through
// count-1. Triangles with a material outside that range appear in no group.
// Order within a group follows the triangle array.
func (m *Mesh) Groups(count int) [][]int {
	count = max(count, 0)
	groups := make([][]int, count)
	for i, mat := range m.Materials {
		if int(mat) < count {
			groups[mat] = append(groups[mat], i)
		}
	}
	return groups
}
