package scene

import "tumblecube/internal/mathutil"

// Node is a transform in the scene: a position plus an Euler XYZ rotation
// in radians. Nodes are plain data; whoever owns a node mutates it.
type Node struct {
	Position mathutil.Vec3
	Rotation mathutil.Vec3
}

// RotationMatrix returns the node's rotation as Rz × Ry × Rx.
// Rotation order only matters when more than one component is nonzero;
// a tumble rotates about a single axis at a time.
func (n *Node) RotationMatrix() mathutil.Mat3 {
	return mathutil.EulerZYX(n.Rotation[0], n.Rotation[1], n.Rotation[2])
}

// Matrix returns the node's local-to-world affine transform.
func (n *Node) Matrix() mathutil.Mat4 {
	return mathutil.FromMat3Translation(n.RotationMatrix(), n.Position)
}
