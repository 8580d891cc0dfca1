package physics

import "fmt"

// Collider holds exactly one shape payload. The zero value holds nothing and
// reports ColliderTypeNone.
//
// Collider is a plain value: copying it copies the payload, while convex and
// compound payloads keep pointing at the same immutable blob.
type Collider struct {
	shape Shape
}

// NewCollider wraps a shape payload.
func NewCollider(s Shape) Collider {
	return Collider{shape: s}
}

// Type returns the discriminant of the active payload.
func (c Collider) Type() ColliderType {
	if c.shape == nil {
		return ColliderTypeNone
	}
	return c.shape.Type()
}

// Shape returns the active payload, or nil for an empty collider.
func (c Collider) Shape() Shape {
	return c.shape
}

// Sphere returns the sphere payload. It panics if the collider is not a sphere.
func (c Collider) Sphere() SphereCollider {
	s, ok := c.shape.(SphereCollider)
	if !ok {
		c.wrongType(ColliderTypeSphere)
	}
	return s
}

// Capsule returns the capsule payload. It panics if the collider is not a capsule.
func (c Collider) Capsule() CapsuleCollider {
	s, ok := c.shape.(CapsuleCollider)
	if !ok {
		c.wrongType(ColliderTypeCapsule)
	}
	return s
}

// Box returns the box payload. It panics if the collider is not a box.
func (c Collider) Box() BoxCollider {
	s, ok := c.shape.(BoxCollider)
	if !ok {
		c.wrongType(ColliderTypeBox)
	}
	return s
}

// Triangle returns the triangle payload. It panics if the collider is not a triangle.
func (c Collider) Triangle() TriangleCollider {
	s, ok := c.shape.(TriangleCollider)
	if !ok {
		c.wrongType(ColliderTypeTriangle)
	}
	return s
}

// Convex returns the convex payload. It panics if the collider is not convex.
func (c Collider) Convex() ConvexCollider {
	s, ok := c.shape.(ConvexCollider)
	if !ok {
		c.wrongType(ColliderTypeConvex)
	}
	return s
}

// Compound returns the compound payload. It panics if the collider is not a compound.
func (c Collider) Compound() CompoundCollider {
	s, ok := c.shape.(CompoundCollider)
	if !ok {
		c.wrongType(ColliderTypeCompound)
	}
	return s
}

func (c Collider) wrongType(want ColliderType) {
	panic(fmt.Sprintf("physics: collider is %s, not %s", c.Type(), want))
}

func (c Collider) String() string {
	switch s := c.shape.(type) {
	case SphereCollider:
		return fmt.Sprintf("sphere{center=%v radius=%g}", s.Center, s.Radius)
	case CapsuleCollider:
		return fmt.Sprintf("capsule{a=%v b=%v radius=%g}", s.PointA, s.PointB, s.Radius)
	case BoxCollider:
		return fmt.Sprintf("box{center=%v halfSize=%v}", s.Center, s.HalfSize)
	case TriangleCollider:
		return fmt.Sprintf("triangle{a=%v b=%v c=%v}", s.PointA, s.PointB, s.PointC)
	case ConvexCollider:
		return fmt.Sprintf("convex{blob=%s scale=%v}", s.Blob.ID(), s.Scale)
	case CompoundCollider:
		return fmt.Sprintf("compound{blob=%s scale=%g stretch=%v}", s.Blob.ID(), s.Scale, s.Stretch)
	default:
		return "none"
	}
}
