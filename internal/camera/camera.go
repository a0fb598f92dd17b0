package camera

import (
	"math"

	"tumblecube/internal/mathutil"
)

// Camera is a perspective camera. View maps world-relative vectors into
// camera space, where the camera looks down -z.
type Camera struct {
	Position mathutil.Vec3
	View     mathutil.Mat3
	FOVDeg   float64
	Near     float64
}

// DefaultFOV is the vertical field of view in degrees.
const DefaultFOV = 40.0

// Orbit builds a camera at the given distance from target, rotated by yaw
// about Y and pitched down by pitch (both degrees).
func Orbit(target mathutil.Vec3, yawDeg, pitchDeg, dist float64) Camera {
	view := mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(pitchDeg)),
		mathutil.RotY(mathutil.Deg2Rad(yawDeg)),
	)
	// Camera sits at +z in its own space; pull that back into world space.
	pos := target.Add(view.Transpose().MulVec3(mathutil.Vec3{0, 0, dist}))
	return Camera{
		Position: pos,
		View:     view,
		FOVDeg:   DefaultFOV,
		Near:     0.1,
	}
}

// ProjectVertices transforms mesh vertices through the model matrix and
// this camera into screen coordinates. Returns px, py (pixels) and pz
// (depth; larger is closer, -inf for vertices behind the near plane).
func (c Camera) ProjectVertices(verts []mathutil.Vec3, model mathutil.Mat4, width, height int) (px, py, pz []float64) {
	n := len(verts)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	halfW := float64(width) / 2
	halfH := float64(height) / 2
	f := halfH / math.Tan(mathutil.Deg2Rad(c.FOVDeg)/2)

	for i, v := range verts {
		world := model.MulPoint(v)
		vc := c.View.MulVec3(world.Sub(c.Position))
		if -vc[2] < c.Near {
			px[i] = 0
			py[i] = 0
			pz[i] = math.Inf(-1)
			continue
		}
		inv := 1.0 / -vc[2]
		px[i] = halfW + vc[0]*f*inv
		py[i] = halfH - vc[1]*f*inv
		pz[i] = vc[2] // negative in front; larger (nearer zero) wins
	}
	return px, py, pz
}
