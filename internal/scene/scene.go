package scene

import (
	"tumblecube/internal/mathutil"
	"tumblecube/internal/texture"
)

// CubeEdge is the cube edge length and also the grid cell size.
const CubeEdge = 1.0

// CubeTexture and FloorTexture are the texture stems the renderer
// resolves for the cube faces and the floor plane.
const (
	CubeTexture  = "cube"
	FloorTexture = "floor"
)

// Item is one drawable: a mesh, its model transform, and its appearance.
// Texture is a resolver stem; Color is the flat fallback when the texture
// is empty or unresolvable.
type Item struct {
	Mesh    *Mesh
	Model   mathutil.Mat4
	Texture string
	Color   [4]uint8
}

// Scene owns the static floor geometry and the movable cube's two
// cooperating transforms. The carrier is authoritative while the cube is
// idle; the body is the mesh offset inside the carrier that the tumble
// animation pivots around.
type Scene struct {
	Carrier *Node
	Body    *Node

	cube  *Mesh
	floor *Mesh
}

// New builds a scene with a floor of the given cell extent and the cube
// resting on cell (cellX, cellZ).
func New(extent, cellX, cellZ int) *Scene {
	return &Scene{
		Carrier: &Node{
			Position: mathutil.Vec3{float64(cellX), CubeEdge / 2, float64(cellZ)},
		},
		Body:  &Node{},
		cube:  CubeMesh(CubeEdge),
		floor: FloorMesh(extent),
	}
}

// Drawables returns the current frame's draw list. The cube's model matrix
// is the carrier transform composed with the body's local offset, so pivot
// rotation during a move carries the mesh exactly as the scene graph would.
func (s *Scene) Drawables() []Item {
	cubeModel := mathutil.Mat4Mul(s.Carrier.Matrix(), mathutil.Translation(s.Body.Position))
	return []Item{
		{Mesh: s.floor, Model: mathutil.Mat4Identity(), Texture: FloorTexture, Color: [4]uint8{144, 150, 158, 255}},
		{Mesh: s.cube, Model: cubeModel, Texture: CubeTexture, Color: [4]uint8{224, 96, 60, 255}},
	}
}

// Center returns the camera focus point over the middle of the grid.
func Center() mathutil.Vec3 {
	return mathutil.Vec3{0, CubeEdge / 2, 0}
}

// BodyWorld returns the visual body's current world-space position.
func (s *Scene) BodyWorld() mathutil.Vec3 {
	return s.Carrier.Matrix().MulPoint(s.Body.Position)
}

// DefaultTextures returns procedural fallbacks for every stem Drawables
// emits, so the binaries run with no assets on disk: a bordered tile for
// the cube faces and a checkerboard with one square per floor cell.
func DefaultTextures(extent int) texture.Static {
	side := 2*extent + 1
	return texture.Static{
		CubeTexture: texture.CubeFace(128,
			[4]uint8{224, 96, 60, 255}, [4]uint8{150, 58, 34, 255}),
		FloorTexture: texture.Checker(side*32, side,
			[4]uint8{170, 175, 182, 255}, [4]uint8{118, 124, 134, 255}),
	}
}
