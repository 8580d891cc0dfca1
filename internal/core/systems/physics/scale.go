package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ScaleStretch bakes a uniform scale and a local-space stretch into c.
//
// Primitive shapes absorb the factors into their parameters, possibly as an
// approximation selected by the shape's stretch mode. Convex and compound
// colliders accumulate them in their own Scale/Stretch fields and leave the
// shared blob untouched. A unit scale with a unit stretch is a no-op.
func ScaleStretch(c *Collider, scale float32, stretch mgl32.Vec3) error {
	if scale == 1 && stretch[0] == 1 && stretch[1] == 1 && stretch[2] == 1 {
		return nil
	}

	switch s := c.shape.(type) {
	case SphereCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	case CapsuleCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	case BoxCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	case TriangleCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	case ConvexCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	case CompoundCollider:
		s.ScaleStretch(scale, stretch)
		c.shape = s
	default:
		return newError(ErrUnsupportedColliderType, c.Type())
	}
	return nil
}

// ScaleStretched is the value form of ScaleStretch.
func ScaleStretched(c Collider, scale float32, stretch mgl32.Vec3) (Collider, error) {
	if err := ScaleStretch(&c, scale, stretch); err != nil {
		return Collider{}, err
	}
	return c, nil
}

// ScaleStretch bakes scale and stretch into the sphere.
func (s *SphereCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	switch s.StretchMode {
	case SphereStretchCenter:
		s.Center = mulVec3(s.Center, stretch.Mul(scale))
		s.Radius *= scale
	case SphereIgnoreStretch:
		s.Radius *= scale
	}
}

// ScaleStretch bakes scale and stretch into the capsule.
func (s *CapsuleCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	switch s.StretchMode {
	case CapsuleStretchPoints:
		factor := stretch.Mul(scale)
		s.PointA = mulVec3(s.PointA, factor)
		s.PointB = mulVec3(s.PointB, factor)
		s.Radius *= scale
	case CapsuleIgnoreStretch:
		s.PointA = s.PointA.Mul(scale)
		s.PointB = s.PointB.Mul(scale)
		s.Radius *= scale
	}
}

// ScaleStretch bakes scale and stretch into the box. Both corners are mapped
// separately and the box is rebuilt from them, so a negative factor mirrors
// the box without producing a negative half size.
func (s *BoxCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	factor := stretch.Mul(scale)
	positive := mulVec3(s.Center.Add(s.HalfSize), factor)
	negative := mulVec3(s.Center.Sub(s.HalfSize), factor)
	s.Center = positive.Add(negative).Mul(0.5)
	d := positive.Sub(s.Center)
	s.HalfSize = mgl32.Vec3{math32.Abs(d[0]), math32.Abs(d[1]), math32.Abs(d[2])}
}

// ScaleStretch bakes scale and stretch into the triangle. This is exact.
func (s *TriangleCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	factor := stretch.Mul(scale)
	s.PointA = mulVec3(s.PointA, factor)
	s.PointB = mulVec3(s.PointB, factor)
	s.PointC = mulVec3(s.PointC, factor)
}

// ScaleStretch accumulates scale and stretch into the convex scale.
func (s *ConvexCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	s.Scale = mulVec3(s.Scale, stretch.Mul(scale))
}

// ScaleStretch accumulates scale and stretch into the compound's deferred
// fields. Children are resolved later by SubCollider.
func (s *CompoundCollider) ScaleStretch(scale float32, stretch mgl32.Vec3) {
	switch s.StretchMode {
	case CompoundRotateStretchLocally, CompoundStretchPositionsOnly:
		s.Scale *= scale
		s.Stretch = mulVec3(s.Stretch, stretch)
	case CompoundIgnoreStretch:
		s.Scale *= scale
	}
}
