package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Len returns the number of children of the compound.
func (s CompoundCollider) Len() int {
	return s.Blob.Len()
}

// SubCollider returns the i-th child with the compound's deferred scale and
// stretch resolved according to StretchMode, along with the child's placement
// in compound space.
//
// With CompoundRotateStretchLocally the stretch is rotated into the child's
// frame, which is exact only when the child rotation is axis-aligned.
func (s CompoundCollider) SubCollider(i int) (Collider, RigidTransform) {
	child := s.Blob.Child(i)
	collider := child.Collider
	transform := child.Transform
	unit := mgl32.Vec3{1, 1, 1}

	// children are validated by NewCompoundColliderBlob, so baking cannot fail
	switch s.StretchMode {
	case CompoundRotateStretchLocally:
		local := transform.Rotation.Inverse().Rotate(s.Stretch)
		local = mgl32.Vec3{math32.Abs(local[0]), math32.Abs(local[1]), math32.Abs(local[2])}
		transform.Position = mulVec3(transform.Position, s.Stretch.Mul(s.Scale))
		_ = ScaleStretch(&collider, s.Scale, local)
	case CompoundStretchPositionsOnly:
		transform.Position = mulVec3(transform.Position, s.Stretch.Mul(s.Scale))
		_ = ScaleStretch(&collider, s.Scale, unit)
	case CompoundIgnoreStretch:
		transform.Position = transform.Position.Mul(s.Scale)
		_ = ScaleStretch(&collider, s.Scale, unit)
	}
	return collider, transform
}
