package render

import "github.com/go-gl/mathgl/mgl32"

// Compose builds the placement matrix for one mesh instance from scale
// factors, per-axis rotation in degrees and a translation.
//
// The multiplication order is fixed: translation * Rz * Ry * Rx * scale.
// Scale applies first, then rotation about X, Y, Z in that sequence, then
// translation. Reordering the rotations changes the rendered scene.
func Compose(scale, rotationDeg, translation mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	t := mgl32.Translate3D(translation.X(), translation.Y(), translation.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
