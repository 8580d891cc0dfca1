package physics

import "github.com/go-gl/mathgl/mgl32"

// SphereStretchMode selects how a sphere reacts to non-uniform stretch.
type SphereStretchMode uint8

const (
	// SphereStretchCenter moves the center by the stretch. The radius only
	// follows the uniform scale, so a sphere never becomes an ellipsoid.
	SphereStretchCenter SphereStretchMode = iota
	// SphereIgnoreStretch leaves the center where it is.
	SphereIgnoreStretch
)

func (m SphereStretchMode) String() string {
	switch m {
	case SphereStretchCenter:
		return "stretch_center"
	case SphereIgnoreStretch:
		return "ignore_stretch"
	default:
		return "unknown"
	}
}

// SphereCollider is a sphere in collider space.
type SphereCollider struct {
	Center      mgl32.Vec3
	Radius      float32
	StretchMode SphereStretchMode
}

func (SphereCollider) Type() ColliderType { return ColliderTypeSphere }
func (SphereCollider) shape()             {}

// CapsuleStretchMode selects how a capsule reacts to non-uniform stretch.
type CapsuleStretchMode uint8

const (
	// CapsuleStretchPoints stretches both segment endpoints. The radius only
	// follows the uniform scale.
	CapsuleStretchPoints CapsuleStretchMode = iota
	// CapsuleIgnoreStretch applies the uniform scale to everything and
	// discards the stretch.
	CapsuleIgnoreStretch
)

func (m CapsuleStretchMode) String() string {
	switch m {
	case CapsuleStretchPoints:
		return "stretch_points"
	case CapsuleIgnoreStretch:
		return "ignore_stretch"
	default:
		return "unknown"
	}
}

// CapsuleCollider is a swept sphere along the segment PointA-PointB.
type CapsuleCollider struct {
	PointA      mgl32.Vec3
	PointB      mgl32.Vec3
	Radius      float32
	StretchMode CapsuleStretchMode
}

func (CapsuleCollider) Type() ColliderType { return ColliderTypeCapsule }
func (CapsuleCollider) shape()             {}

// BoxCollider is an axis-aligned box in collider space.
type BoxCollider struct {
	Center   mgl32.Vec3
	HalfSize mgl32.Vec3
}

func (BoxCollider) Type() ColliderType { return ColliderTypeBox }
func (BoxCollider) shape()             {}

// TriangleCollider is a single triangle.
type TriangleCollider struct {
	PointA mgl32.Vec3
	PointB mgl32.Vec3
	PointC mgl32.Vec3
}

func (TriangleCollider) Type() ColliderType { return ColliderTypeTriangle }
func (TriangleCollider) shape()             {}

// ConvexCollider references a shared hull. Scale is applied to the hull
// points at evaluation time; the blob itself is never rewritten.
type ConvexCollider struct {
	Blob  *ConvexColliderBlob
	Scale mgl32.Vec3
}

// NewConvexCollider returns an unscaled convex collider over blob.
func NewConvexCollider(blob *ConvexColliderBlob) ConvexCollider {
	return ConvexCollider{Blob: blob, Scale: mgl32.Vec3{1, 1, 1}}
}

func (ConvexCollider) Type() ColliderType { return ColliderTypeConvex }
func (ConvexCollider) shape()             {}

// CompoundStretchMode selects how the deferred stretch of a compound is
// interpreted when its children are evaluated.
type CompoundStretchMode uint8

const (
	// CompoundRotateStretchLocally stretches child positions and rotates the
	// stretch into each child's frame before baking the child.
	CompoundRotateStretchLocally CompoundStretchMode = iota
	// CompoundIgnoreStretch only applies the uniform scale.
	CompoundIgnoreStretch
	// CompoundStretchPositionsOnly stretches child positions but bakes the
	// children with the uniform scale alone.
	CompoundStretchPositionsOnly
)

func (m CompoundStretchMode) String() string {
	switch m {
	case CompoundRotateStretchLocally:
		return "rotate_stretch_locally"
	case CompoundIgnoreStretch:
		return "ignore_stretch"
	case CompoundStretchPositionsOnly:
		return "stretch_positions_only"
	default:
		return "unknown"
	}
}

// CompoundCollider references a shared list of child colliders. Scale and
// Stretch accumulate here and are resolved per child by SubCollider.
type CompoundCollider struct {
	Blob        *CompoundColliderBlob
	Scale       float32
	Stretch     mgl32.Vec3
	StretchMode CompoundStretchMode
}

// NewCompoundCollider returns an unscaled, unstretched compound over blob.
func NewCompoundCollider(blob *CompoundColliderBlob) CompoundCollider {
	return CompoundCollider{Blob: blob, Scale: 1, Stretch: mgl32.Vec3{1, 1, 1}}
}

func (CompoundCollider) Type() ColliderType { return ColliderTypeCompound }
func (CompoundCollider) shape()             {}
