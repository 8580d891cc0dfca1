package physics

import "github.com/go-gl/mathgl/mgl32"

// ScaleState classifies a PhysicsScale.
type ScaleState uint8

const (
	ScaleNone ScaleState = iota
	ScaleUniform
	ScaleNonUniform
	ScaleNonComputable
)

func (s ScaleState) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleUniform:
		return "uniform"
	case ScaleNonUniform:
		return "non_uniform"
	case ScaleNonComputable:
		return "non_computable"
	default:
		return "unknown"
	}
}

// PhysicsScale is an axis-aligned scale used by ScaleCollider.
//
// Deprecated: bake a TransformQvvs scale and stretch with ScaleStretch instead.
type PhysicsScale struct {
	State ScaleState
	Scale mgl32.Vec3
}

// NoScale returns the identity scale.
func NoScale() PhysicsScale {
	return PhysicsScale{State: ScaleNone, Scale: mgl32.Vec3{1, 1, 1}}
}

// UniformScale returns s applied equally to every axis.
func UniformScale(s float32) PhysicsScale {
	return PhysicsScale{State: ScaleUniform, Scale: mgl32.Vec3{s, s, s}}
}

// NonComputable returns a scale that cannot be applied to any collider.
func NonComputable() PhysicsScale {
	return PhysicsScale{State: ScaleNonComputable}
}

// NewPhysicsScale classifies v by exact component comparison.
func NewPhysicsScale(v mgl32.Vec3) PhysicsScale {
	switch {
	case v[0] == 1 && v[1] == 1 && v[2] == 1:
		return NoScale()
	case v[0] == v[1] && v[1] == v[2]:
		return PhysicsScale{State: ScaleUniform, Scale: v}
	default:
		return PhysicsScale{State: ScaleNonUniform, Scale: v}
	}
}

// vector returns the multiplier to apply. ScaleNone is the identity whatever
// its stored vector, which keeps the zero PhysicsScale harmless.
func (p PhysicsScale) vector() mgl32.Vec3 {
	if p.State == ScaleNone {
		return mgl32.Vec3{1, 1, 1}
	}
	return p.Scale
}

// ScaleCollider applies a legacy PhysicsScale to a copy of c.
//
// Spheres, capsules and compounds accept only no scale or a uniform scale.
// Boxes, triangles and convex colliders accept any computable scale and
// apply it per axis without any stretch composition.
//
// Deprecated: use ScaleStretch.
func ScaleCollider(c Collider, scale PhysicsScale) (Collider, error) {
	switch s := c.shape.(type) {
	case SphereCollider:
		if err := checkNoOrUniformScale(scale, ColliderTypeSphere); err != nil {
			return Collider{}, err
		}
		f := scale.vector()[0]
		s.Center = s.Center.Mul(f)
		s.Radius *= f
		return NewCollider(s), nil
	case CapsuleCollider:
		if err := checkNoOrUniformScale(scale, ColliderTypeCapsule); err != nil {
			return Collider{}, err
		}
		f := scale.vector()[0]
		s.PointA = s.PointA.Mul(f)
		s.PointB = s.PointB.Mul(f)
		s.Radius *= f
		return NewCollider(s), nil
	case BoxCollider:
		if err := checkNoOrValidScale(scale, ColliderTypeBox); err != nil {
			return Collider{}, err
		}
		v := scale.vector()
		s.Center = mulVec3(s.Center, v)
		s.HalfSize = mulVec3(s.HalfSize, v)
		return NewCollider(s), nil
	case TriangleCollider:
		if err := checkNoOrValidScale(scale, ColliderTypeTriangle); err != nil {
			return Collider{}, err
		}
		v := scale.vector()
		s.PointA = mulVec3(s.PointA, v)
		s.PointB = mulVec3(s.PointB, v)
		s.PointC = mulVec3(s.PointC, v)
		return NewCollider(s), nil
	case ConvexCollider:
		if err := checkNoOrValidScale(scale, ColliderTypeConvex); err != nil {
			return Collider{}, err
		}
		s.Scale = mulVec3(s.Scale, scale.vector())
		return NewCollider(s), nil
	case CompoundCollider:
		if err := checkNoOrUniformScale(scale, ColliderTypeCompound); err != nil {
			return Collider{}, err
		}
		s.Scale *= scale.vector()[0]
		return NewCollider(s), nil
	default:
		return Collider{}, newError(ErrUnsupportedColliderType, c.Type())
	}
}

func checkNoOrUniformScale(scale PhysicsScale, t ColliderType) error {
	if scale.State == ScaleNonUniform || scale.State == ScaleNonComputable {
		return newError(ErrInvalidUniformScaleRequired, t)
	}
	return nil
}

func checkNoOrValidScale(scale PhysicsScale, t ColliderType) error {
	if scale.State == ScaleNonComputable {
		return newError(ErrNonComputableScale, t)
	}
	return nil
}
