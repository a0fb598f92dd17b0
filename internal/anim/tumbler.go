package anim

import (
	"math"

	"tumblecube/internal/mathutil"
	"tumblecube/internal/scene"
)

// DefaultStepDuration is how long one tumble takes, in the same time units
// the frame driver passes to Advance.
const DefaultStepDuration = 0.16

// Tumbler rolls a cube across the grid one cell at a time. A requested
// move becomes a quarter-turn of the carrier about a floor-edge pivot; the
// body's local offset keeps the mesh visually on the start cell while the
// carrier sits at the pivot.
//
// States: idle (no pending target), starting (target set, progress 0),
// in flight (progress in (0,1)). Completion is a transition back to idle,
// not a resting state.
type Tumbler struct {
	Carrier *scene.Node
	Body    *scene.Node

	// StepDuration may be overridden before the first move.
	StepDuration float64

	cellX, cellZ     int
	pending          bool
	started          bool
	targetX, targetZ int
	progress         float64
	startRot         mathutil.Vec3
	endRot           mathutil.Vec3
}

// NewTumbler creates a tumbler owning the given carrier/body pair, with
// the cube idle on cell (cellX, cellZ). The carrier is placed on that cell
// with identity rotation and a zeroed body offset.
func NewTumbler(carrier, body *scene.Node, cellX, cellZ int) *Tumbler {
	carrier.Position = mathutil.Vec3{float64(cellX), scene.CubeEdge / 2, float64(cellZ)}
	carrier.Rotation = mathutil.Vec3{}
	body.Position = mathutil.Vec3{}
	return &Tumbler{
		Carrier:      carrier,
		Body:         body,
		StepDuration: DefaultStepDuration,
		cellX:        cellX,
		cellZ:        cellZ,
	}
}

// RequestMove sets the pending target to the adjacent cell in the given
// direction. A request while a move is in flight is silently ignored;
// that Idle-only guard is the sole admission control, so moves never queue
// and never interrupt each other. Returns whether the request was accepted.
func (t *Tumbler) RequestMove(d Direction) bool {
	if t.pending {
		return false
	}
	dx, dz := d.Delta()
	t.targetX = t.cellX + dx
	t.targetZ = t.cellZ + dz
	t.pending = true
	return true
}

// InFlight reports whether a move is pending or animating.
func (t *Tumbler) InFlight() bool {
	return t.pending
}

// Cell returns the grid cell the cube occupies (the start cell while a
// move is in flight).
func (t *Tumbler) Cell() (x, z int) {
	return t.cellX, t.cellZ
}

// Progress returns the normalized [0,1] fraction of the current move.
func (t *Tumbler) Progress() float64 {
	return t.progress
}

// Advance runs one frame of the state machine. dt is the elapsed time
// since the previous tick; a dt of at least StepDuration completes the
// move within this single call.
func (t *Tumbler) Advance(dt float64) {
	if !t.pending {
		return
	}
	if !t.started {
		t.beginMove()
		t.started = true
	}
	t.progress += dt / t.StepDuration

	// Per-axis linear interpolation is exact here: each move rotates
	// about a single fixed axis, so there is nothing spherical to lose.
	t.Carrier.Rotation = mathutil.LerpVec3(t.startRot, t.endRot, mathutil.Clamp01(t.progress))

	if t.progress >= 1 {
		t.endMove()
	}
}

// beginMove re-parents the motion around the floor-edge pivot: the carrier
// jumps to the midpoint between start and destination, lowered by half an
// edge, and the body takes the opposite local offset so the mesh stays put
// in world space at this instant. Rotating the carrier then rolls the body
// over the shared floor edge.
func (t *Tumbler) beginMove() {
	start := t.Carrier.Position
	destX := float64(t.targetX)
	destZ := float64(t.targetZ)

	// Axis cross-mapping is intentional: travel along z pitches about the
	// x axis and travel along x about the z axis.
	offsetZ := destX - start[0]
	offsetX := destZ - start[2]

	pivot := mathutil.Vec3{
		(start[0] + destX) / 2,
		start[1] - scene.CubeEdge/2,
		(start[2] + destZ) / 2,
	}

	t.Carrier.Position = pivot
	t.Body.Position = start.Sub(pivot)

	quarter := math.Pi / 2
	t.startRot = t.Carrier.Rotation
	t.endRot = t.startRot.Add(mathutil.Vec3{offsetX * quarter, 0, -offsetZ * quarter})
}

// endMove discharges the pivot trick: the carrier takes over the body's
// world position, all rotation and local offset reset to zero, and the
// machine returns to idle ready for the next request.
func (t *Tumbler) endMove() {
	t.Carrier.Position = t.Carrier.Matrix().MulPoint(t.Body.Position)
	t.Carrier.Rotation = mathutil.Vec3{}
	t.Body.Position = mathutil.Vec3{}
	t.cellX = t.targetX
	t.cellZ = t.targetZ
	t.pending = false
	t.started = false
	t.progress = 0
}
