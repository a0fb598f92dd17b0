package scene

import (
	"math"
	"testing"

	"tumblecube/internal/mathutil"
)

func TestCubeMeshShape(t *testing.T) {
	m := CubeMesh(1)
	if len(m.Verts) != 8 {
		t.Errorf("verts = %d, want 8", len(m.Verts))
	}
	if len(m.Tris) != 12 {
		t.Errorf("tris = %d, want 12", len(m.Tris))
	}
	for _, v := range m.Verts {
		for k := 0; k < 3; k++ {
			if math.Abs(v[k]) != 0.5 {
				t.Fatalf("vertex %v not on the half-edge shell", v)
			}
		}
	}
	for _, tri := range m.Tris {
		for _, vi := range tri.VI {
			if vi < 0 || vi >= len(m.Verts) {
				t.Fatalf("triangle references vertex %d", vi)
			}
		}
		for _, ti := range tri.TI {
			if ti < 0 || ti >= len(m.UVs) {
				t.Fatalf("triangle references UV %d", ti)
			}
		}
	}
}

func TestFloorMeshCoversGrid(t *testing.T) {
	extent := 2
	m := FloorMesh(extent)

	side := 2*extent + 1
	wantTiles := side * side
	if got := len(m.Tris) / 2; got != wantTiles {
		t.Errorf("tiles = %d, want %d", got, wantTiles)
	}

	// All floor verts at y = 0, all UVs inside the unit square.
	for _, v := range m.Verts {
		if v[1] != 0 {
			t.Fatalf("floor vertex %v above/below ground", v)
		}
	}
	for _, uv := range m.UVs {
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("floor UV %v outside [0,1]", uv)
		}
	}
	for _, tri := range m.Tris {
		for _, ti := range tri.TI {
			if ti < 0 || ti >= len(m.UVs) {
				t.Fatalf("triangle references UV %d", ti)
			}
		}
	}

	// The center cell maps to the middle patch of the texture.
	vb := ((side*side - 1) / 2) * 4 // tile index of cell (0,0), four UVs each
	u0 := float32(extent) / float32(side)
	if m.UVs[vb][0] != u0 || m.UVs[vb][1] != u0 {
		t.Errorf("center tile UV %v, want (%v,%v)", m.UVs[vb], u0, u0)
	}
}

func TestNodeMatrixIdentity(t *testing.T) {
	n := &Node{}
	if !n.Matrix().IsIdentity() {
		t.Error("zero node matrix not identity")
	}
}

func TestBodyWorldFollowsCarrierRotation(t *testing.T) {
	s := New(3, 0, 0)
	s.Carrier.Position = mathutil.Vec3{0.5, 0, 0}
	s.Body.Position = mathutil.Vec3{-0.5, 0.5, 0}

	// No rotation: body sits at carrier + local offset.
	got := s.BodyWorld()
	want := mathutil.Vec3{0, 0.5, 0}
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("unrotated body world %v, want %v", got, want)
	}

	// A -90° pivot about z swings the body to the adjacent cell.
	s.Carrier.Rotation = mathutil.Vec3{0, 0, -math.Pi / 2}
	got = s.BodyWorld()
	want = mathutil.Vec3{1, 0.5, 0}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("rotated body world %v, want %v", got, want)
	}
}

func TestDrawablesListsFloorAndCube(t *testing.T) {
	s := New(2, 0, 0)
	items := s.Drawables()
	if len(items) != 2 {
		t.Fatalf("drawables = %d, want floor and cube", len(items))
	}
	if items[0].Texture != FloorTexture {
		t.Errorf("floor texture %q, want %q", items[0].Texture, FloorTexture)
	}
	cube := items[1]
	if cube.Texture != CubeTexture {
		t.Errorf("cube texture %q, want %q", cube.Texture, CubeTexture)
	}
	// Idle cube model places the mesh origin at resting height.
	got := cube.Model.MulPoint(mathutil.Vec3{})
	want := mathutil.Vec3{0, CubeEdge / 2, 0}
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("cube model origin %v, want %v", got, want)
	}
}

func TestDefaultTexturesCoverDrawableStems(t *testing.T) {
	s := New(2, 0, 0)
	fallback := DefaultTextures(2)
	for _, it := range s.Drawables() {
		if fallback.Resolve(it.Texture) == nil {
			t.Errorf("no procedural fallback for stem %q", it.Texture)
		}
	}

	// One checker square per floor cell keeps the pattern on the grid.
	floor := fallback.Resolve(FloorTexture)
	side := 2*2 + 1
	if floor.Bounds().Dx() != side*32 {
		t.Errorf("floor texture width %d, want %d", floor.Bounds().Dx(), side*32)
	}
}
