package physics

// ColliderType is the discriminant of a Collider.
type ColliderType uint8

const (
	// ColliderTypeNone marks an empty or uninitialized Collider.
	ColliderTypeNone ColliderType = iota
	ColliderTypeSphere
	ColliderTypeCapsule
	ColliderTypeBox
	ColliderTypeTriangle
	ColliderTypeConvex
	ColliderTypeCompound
)

// ColliderTypes lists every shape kind the baking engine handles.
var ColliderTypes = []ColliderType{
	ColliderTypeSphere,
	ColliderTypeCapsule,
	ColliderTypeBox,
	ColliderTypeTriangle,
	ColliderTypeConvex,
	ColliderTypeCompound,
}

func (t ColliderType) String() string {
	switch t {
	case ColliderTypeNone:
		return "none"
	case ColliderTypeSphere:
		return "sphere"
	case ColliderTypeCapsule:
		return "capsule"
	case ColliderTypeBox:
		return "box"
	case ColliderTypeTriangle:
		return "triangle"
	case ColliderTypeConvex:
		return "convex"
	case ColliderTypeCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// Shape is a collider payload. The set of implementations is closed:
// only the shape types of this package satisfy it.
type Shape interface {
	Type() ColliderType
	shape()
}

var (
	_ Shape = SphereCollider{}
	_ Shape = CapsuleCollider{}
	_ Shape = BoxCollider{}
	_ Shape = TriangleCollider{}
	_ Shape = ConvexCollider{}
	_ Shape = CompoundCollider{}
)
