package physics

import "github.com/go-gl/mathgl/mgl32"

// RigidTransform is a rotation followed by a translation.
type RigidTransform struct {
	Rotation mgl32.Quat
	Position mgl32.Vec3
}

// IdentityRigidTransform returns a transform that maps every point to itself.
func IdentityRigidTransform() RigidTransform {
	return RigidTransform{Rotation: mgl32.QuatIdent()}
}

// TransformPoint maps p from the transform's local space into its parent space.
func (t RigidTransform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// TransformQvvs is a world transform split into rotation, position, a local
// non-uniform stretch and a uniform scale.
type TransformQvvs struct {
	Rotation mgl32.Quat
	Position mgl32.Vec3
	Stretch  mgl32.Vec3
	Scale    float32
}

// IdentityTransform returns the transform with unit scale and stretch.
func IdentityTransform() TransformQvvs {
	return TransformQvvs{
		Rotation: mgl32.QuatIdent(),
		Stretch:  mgl32.Vec3{1, 1, 1},
		Scale:    1,
	}
}

// ScaleStretch returns the factors to hand to ScaleStretch.
func (t TransformQvvs) ScaleStretch() (float32, mgl32.Vec3) {
	return t.Scale, t.Stretch
}

// Rigid drops scale and stretch.
func (t TransformQvvs) Rigid() RigidTransform {
	return RigidTransform{Rotation: t.Rotation, Position: t.Position}
}

func mulVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
