package scene

import "tumblecube/internal/mathutil"

// Tri is one triangle: vertex indices and UV indices into the mesh arrays.
type Tri struct {
	VI [3]int
	TI [3]int
}

// Mesh is an indexed triangle mesh in model space.
type Mesh struct {
	Verts []mathutil.Vec3
	UVs   [][2]float32
	Tris  []Tri
}

// quad appends two triangles for the face (a, b, c, d), reusing the four
// shared corner UVs.
func (m *Mesh) quad(a, b, c, d int) {
	m.Tris = append(m.Tris,
		Tri{VI: [3]int{a, b, c}, TI: [3]int{0, 1, 2}},
		Tri{VI: [3]int{a, c, d}, TI: [3]int{0, 2, 3}},
	)
}

// CubeMesh builds a cube of the given edge length centered on the origin.
// All six faces map the full texture.
func CubeMesh(edge float64) *Mesh {
	h := edge / 2
	m := &Mesh{
		Verts: []mathutil.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		UVs: [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	}
	m.quad(0, 1, 2, 3) // -z
	m.quad(5, 4, 7, 6) // +z
	m.quad(4, 0, 3, 7) // -x
	m.quad(1, 5, 6, 2) // +x
	m.quad(3, 2, 6, 7) // top
	m.quad(4, 5, 1, 0) // bottom
	return m
}

// FloorMesh builds the grid floor covering cells [-extent, extent]² at
// y = 0. Each cell's corners map to its own patch of the floor texture, so
// a texture with one checker square per cell lines up with the grid lines.
func FloorMesh(extent int) *Mesh {
	m := &Mesh{}
	side := float32(2*extent + 1)
	for z := -extent; z <= extent; z++ {
		for x := -extent; x <= extent; x++ {
			fx, fz := float64(x), float64(z)
			u0 := float32(x+extent) / side
			u1 := float32(x+extent+1) / side
			v0 := float32(z+extent) / side
			v1 := float32(z+extent+1) / side

			vb := len(m.Verts)
			tb := len(m.UVs)
			m.Verts = append(m.Verts,
				mathutil.Vec3{fx - 0.5, 0, fz - 0.5},
				mathutil.Vec3{fx + 0.5, 0, fz - 0.5},
				mathutil.Vec3{fx + 0.5, 0, fz + 0.5},
				mathutil.Vec3{fx - 0.5, 0, fz + 0.5},
			)
			m.UVs = append(m.UVs,
				[2]float32{u0, v0}, [2]float32{u1, v0},
				[2]float32{u1, v1}, [2]float32{u0, v1},
			)
			m.Tris = append(m.Tris,
				Tri{VI: [3]int{vb, vb + 1, vb + 2}, TI: [3]int{tb, tb + 1, tb + 2}},
				Tri{VI: [3]int{vb, vb + 2, vb + 3}, TI: [3]int{tb, tb + 2, tb + 3}},
			)
		}
	}
	return m
}
