package physics

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/zeusync/colliders/pkg/generic"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// ConvexColliderBlob is an immutable hull point cloud shared by any number
// of ConvexCollider values. Nothing mutates it after construction, so it may
// be read from many goroutines at once.
type ConvexColliderBlob struct {
	id     uuid.UUID
	hash   uint64
	points []mgl32.Vec3
	bounds AABB
}

// NewConvexColliderBlob freezes a copy of points.
func NewConvexColliderBlob(points []mgl32.Vec3) (*ConvexColliderBlob, error) {
	if len(points) == 0 {
		return nil, newError(ErrEmptyBlob, ColliderTypeConvex)
	}

	frozen := make([]mgl32.Vec3, len(points))
	copy(frozen, points)

	bounds := AABB{Min: frozen[0], Max: frozen[0]}
	h := hashers.Get()
	defer hashers.Put(h)
	for _, p := range frozen {
		for axis := 0; axis < 3; axis++ {
			bounds.Min[axis] = math32.Min(bounds.Min[axis], p[axis])
			bounds.Max[axis] = math32.Max(bounds.Max[axis], p[axis])
		}
		h.vec3(p)
	}

	return &ConvexColliderBlob{
		id:     uuid.New(),
		hash:   h.sum(),
		points: frozen,
		bounds: bounds,
	}, nil
}

// ID returns the identity assigned at construction. A nil blob reports uuid.Nil.
func (b *ConvexColliderBlob) ID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.id
}

// Hash returns the content hash of the points.
func (b *ConvexColliderBlob) Hash() uint64 { return b.hash }

// Len returns the number of hull points.
func (b *ConvexColliderBlob) Len() int { return len(b.points) }

// Point returns the i-th hull point.
func (b *ConvexColliderBlob) Point(i int) mgl32.Vec3 { return b.points[i] }

// Points returns a copy of the hull points.
func (b *ConvexColliderBlob) Points() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(b.points))
	copy(out, b.points)
	return out
}

// Bounds returns the unscaled local bounds of the hull.
func (b *ConvexColliderBlob) Bounds() AABB { return b.bounds }

// Equal reports whether both blobs hold the same points in the same order.
func (b *ConvexColliderBlob) Equal(other *ConvexColliderBlob) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil || b.hash != other.hash || len(b.points) != len(other.points) {
		return false
	}
	for i := range b.points {
		if b.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// CompoundChild is one collider of a compound, placed in compound space.
type CompoundChild struct {
	Collider  Collider
	Transform RigidTransform
}

// CompoundColliderBlob is an immutable, ordered list of child colliders
// shared by any number of CompoundCollider values.
type CompoundColliderBlob struct {
	id       uuid.UUID
	hash     uint64
	children []CompoundChild
}

// NewCompoundColliderBlob freezes a copy of children. Every child must hold
// a shape.
func NewCompoundColliderBlob(children []CompoundChild) (*CompoundColliderBlob, error) {
	if len(children) == 0 {
		return nil, newError(ErrEmptyBlob, ColliderTypeCompound)
	}

	frozen := make([]CompoundChild, len(children))
	copy(frozen, children)

	h := hashers.Get()
	defer hashers.Put(h)
	for _, child := range frozen {
		if child.Collider.Type() == ColliderTypeNone {
			return nil, newError(ErrUnsupportedColliderType, ColliderTypeNone)
		}
		h.collider(child.Collider)
		h.quat(child.Transform.Rotation)
		h.vec3(child.Transform.Position)
	}

	return &CompoundColliderBlob{
		id:       uuid.New(),
		hash:     h.sum(),
		children: frozen,
	}, nil
}

// ID returns the identity assigned at construction. A nil blob reports uuid.Nil.
func (b *CompoundColliderBlob) ID() uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.id
}

// Hash returns the content hash of the children.
func (b *CompoundColliderBlob) Hash() uint64 { return b.hash }

// Len returns the number of children.
func (b *CompoundColliderBlob) Len() int { return len(b.children) }

// Child returns the i-th child as authored, without the compound's scale.
func (b *CompoundColliderBlob) Child(i int) CompoundChild { return b.children[i] }

// Equal reports whether both blobs hold the same children in the same order.
func (b *CompoundColliderBlob) Equal(other *CompoundColliderBlob) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil || b.hash != other.hash || len(b.children) != len(other.children) {
		return false
	}
	for i := range b.children {
		if b.children[i] != other.children[i] {
			return false
		}
	}
	return true
}

type blobHasher struct {
	digest *xxhash.Digest
	buf    [4]byte
}

var hashers = generic.NewPool(
	func() *blobHasher { return &blobHasher{digest: xxhash.New()} },
	func(h *blobHasher) { h.digest.Reset() },
)

func (h *blobHasher) float(v float32) {
	binary.LittleEndian.PutUint32(h.buf[:], math.Float32bits(v))
	_, _ = h.digest.Write(h.buf[:])
}

func (h *blobHasher) vec3(v mgl32.Vec3) {
	h.float(v[0])
	h.float(v[1])
	h.float(v[2])
}

func (h *blobHasher) quat(q mgl32.Quat) {
	h.float(q.W)
	h.vec3(q.V)
}

func (h *blobHasher) u64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.digest.Write(buf[:])
}

func (h *blobHasher) collider(c Collider) {
	_, _ = h.digest.Write([]byte{byte(c.Type())})
	switch s := c.Shape().(type) {
	case SphereCollider:
		h.vec3(s.Center)
		h.float(s.Radius)
		_, _ = h.digest.Write([]byte{byte(s.StretchMode)})
	case CapsuleCollider:
		h.vec3(s.PointA)
		h.vec3(s.PointB)
		h.float(s.Radius)
		_, _ = h.digest.Write([]byte{byte(s.StretchMode)})
	case BoxCollider:
		h.vec3(s.Center)
		h.vec3(s.HalfSize)
	case TriangleCollider:
		h.vec3(s.PointA)
		h.vec3(s.PointB)
		h.vec3(s.PointC)
	case ConvexCollider:
		if s.Blob != nil {
			h.u64(s.Blob.Hash())
		}
		h.vec3(s.Scale)
	case CompoundCollider:
		if s.Blob != nil {
			h.u64(s.Blob.Hash())
		}
		h.float(s.Scale)
		h.vec3(s.Stretch)
		_, _ = h.digest.Write([]byte{byte(s.StretchMode)})
	}
}

func (h *blobHasher) sum() uint64 {
	return h.digest.Sum64()
}
