package authoring

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/colliders/internal/core/systems/physics"
)

// BlobStore builds shared blobs for convex and compound colliders.
type BlobStore interface {
	Convex(points []mgl32.Vec3) (*physics.ConvexColliderBlob, error)
	Compound(children []physics.CompoundChild) (*physics.CompoundColliderBlob, error)
}

// Entity is an authored collider together with the transform it is baked by.
type Entity struct {
	Name      string
	Collider  physics.Collider
	Transform physics.TransformQvvs
	// Legacy is set when the collider is baked with a legacy PhysicsScale.
	Legacy *physics.PhysicsScale
}

// Build turns every enabled collider of d into an entity. Convex and compound
// blobs are obtained from store.
func (d *Document) Build(store BlobStore) ([]Entity, error) {
	entities := make([]Entity, 0, len(d.Colliders))
	for i, doc := range d.Colliders {
		if doc.Disabled {
			continue
		}
		name := doc.Name
		if name == "" {
			name = fmt.Sprintf("collider[%d]", i)
		}

		entity, err := buildEntity(name, doc, store)
		if err != nil {
			return nil, fmt.Errorf("authoring: %s: %w", name, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func buildEntity(name string, doc ColliderDoc, store BlobStore) (Entity, error) {
	c, err := buildCollider(doc, store)
	if err != nil {
		return Entity{}, err
	}
	transform, err := buildTransform(doc.Transform)
	if err != nil {
		return Entity{}, err
	}

	entity := Entity{Name: name, Collider: c, Transform: transform}
	if len(doc.LegacyScale) > 0 {
		v, err := vec3("legacy_scale", doc.LegacyScale, mgl32.Vec3{})
		if err != nil {
			return Entity{}, err
		}
		legacy := physics.NewPhysicsScale(v)
		entity.Legacy = &legacy
	}
	return entity, nil
}

func buildTransform(doc *TransformDoc) (physics.TransformQvvs, error) {
	t := physics.IdentityTransform()
	if doc == nil {
		return t, nil
	}

	var err error
	if t.Position, err = vec3("transform.position", doc.Position, t.Position); err != nil {
		return t, err
	}
	if t.Rotation, err = quat("transform.rotation", doc.Rotation); err != nil {
		return t, err
	}
	if t.Stretch, err = vec3("transform.stretch", doc.Stretch, t.Stretch); err != nil {
		return t, err
	}
	if doc.Scale != nil {
		t.Scale = *doc.Scale
	}
	return t, nil
}

func buildRigid(doc *RigidDoc) (physics.RigidTransform, error) {
	t := physics.IdentityRigidTransform()
	if doc == nil {
		return t, nil
	}

	var err error
	if t.Position, err = vec3("local.position", doc.Position, t.Position); err != nil {
		return t, err
	}
	if t.Rotation, err = quat("local.rotation", doc.Rotation); err != nil {
		return t, err
	}
	return t, nil
}

func buildCollider(doc ColliderDoc, store BlobStore) (physics.Collider, error) {
	switch doc.Type {
	case physics.ColliderTypeSphere.String():
		return buildSphere(doc)
	case physics.ColliderTypeCapsule.String():
		return buildCapsule(doc)
	case physics.ColliderTypeBox.String():
		return buildBox(doc)
	case physics.ColliderTypeTriangle.String():
		return buildTriangle(doc)
	case physics.ColliderTypeConvex.String():
		return buildConvex(doc, store)
	case physics.ColliderTypeCompound.String():
		return buildCompound(doc, store)
	default:
		return physics.Collider{}, invalid("unknown collider type %q", doc.Type)
	}
}

func buildSphere(doc ColliderDoc) (physics.Collider, error) {
	center, err := vec3("center", doc.Center, mgl32.Vec3{})
	if err != nil {
		return physics.Collider{}, err
	}
	mode, err := parseMode("stretch_mode", doc.StretchMode, physics.SphereStretchCenter, physics.SphereIgnoreStretch)
	if err != nil {
		return physics.Collider{}, err
	}
	if doc.Radius < 0 {
		return physics.Collider{}, invalid("radius must be >= 0, got %g", doc.Radius)
	}
	return physics.NewCollider(physics.SphereCollider{
		Center:      center,
		Radius:      doc.Radius,
		StretchMode: mode,
	}), nil
}

var axes = map[string]mgl32.Vec3{
	"x": {1, 0, 0},
	"y": {0, 1, 0},
	"z": {0, 0, 1},
}

// buildCapsule accepts explicit end points, or a center, height and axis
// where height spans the rounded caps.
func buildCapsule(doc ColliderDoc) (physics.Collider, error) {
	mode, err := parseMode("stretch_mode", doc.StretchMode, physics.CapsuleStretchPoints, physics.CapsuleIgnoreStretch)
	if err != nil {
		return physics.Collider{}, err
	}
	if doc.Radius < 0 {
		return physics.Collider{}, invalid("radius must be >= 0, got %g", doc.Radius)
	}
	capsule := physics.CapsuleCollider{Radius: doc.Radius, StretchMode: mode}

	if len(doc.PointA) > 0 || len(doc.PointB) > 0 {
		if len(doc.PointA) == 0 || len(doc.PointB) == 0 {
			return physics.Collider{}, invalid("capsule needs both point_a and point_b")
		}
		if capsule.PointA, err = vec3("point_a", doc.PointA, mgl32.Vec3{}); err != nil {
			return physics.Collider{}, err
		}
		if capsule.PointB, err = vec3("point_b", doc.PointB, mgl32.Vec3{}); err != nil {
			return physics.Collider{}, err
		}
		return physics.NewCollider(capsule), nil
	}

	center, err := vec3("center", doc.Center, mgl32.Vec3{})
	if err != nil {
		return physics.Collider{}, err
	}
	direction := doc.Direction
	if direction == "" {
		direction = "y"
	}
	dir, ok := axes[direction]
	if !ok {
		return physics.Collider{}, invalid("direction %q: want x, y or z", doc.Direction)
	}

	offset := dir.Mul(doc.Height/2 - doc.Radius)
	capsule.PointA = center.Sub(offset)
	capsule.PointB = center.Add(offset)
	return physics.NewCollider(capsule), nil
}

func buildBox(doc ColliderDoc) (physics.Collider, error) {
	center, err := vec3("center", doc.Center, mgl32.Vec3{})
	if err != nil {
		return physics.Collider{}, err
	}
	size, err := vec3("size", doc.Size, mgl32.Vec3{1, 1, 1})
	if err != nil {
		return physics.Collider{}, err
	}
	if size[0] < 0 || size[1] < 0 || size[2] < 0 {
		return physics.Collider{}, invalid("size: components must be >= 0, got %v", doc.Size)
	}
	return physics.NewCollider(physics.BoxCollider{Center: center, HalfSize: size.Mul(0.5)}), nil
}

func buildTriangle(doc ColliderDoc) (physics.Collider, error) {
	if len(doc.Points) != 3 {
		return physics.Collider{}, invalid("triangle needs 3 points, got %d", len(doc.Points))
	}
	points, err := pointList(doc.Points)
	if err != nil {
		return physics.Collider{}, err
	}
	return physics.NewCollider(physics.TriangleCollider{
		PointA: points[0],
		PointB: points[1],
		PointC: points[2],
	}), nil
}

func buildConvex(doc ColliderDoc, store BlobStore) (physics.Collider, error) {
	if len(doc.Points) == 0 {
		return physics.Collider{}, invalid("convex needs at least one point")
	}
	points, err := pointList(doc.Points)
	if err != nil {
		return physics.Collider{}, err
	}
	blob, err := store.Convex(points)
	if err != nil {
		return physics.Collider{}, err
	}

	convex := physics.NewConvexCollider(blob)
	if convex.Scale, err = vec3("scale", doc.Scale, convex.Scale); err != nil {
		return physics.Collider{}, err
	}
	return physics.NewCollider(convex), nil
}

func buildCompound(doc ColliderDoc, store BlobStore) (physics.Collider, error) {
	mode, err := parseMode("stretch_mode", doc.StretchMode,
		physics.CompoundRotateStretchLocally,
		physics.CompoundIgnoreStretch,
		physics.CompoundStretchPositionsOnly,
	)
	if err != nil {
		return physics.Collider{}, err
	}

	children := make([]physics.CompoundChild, 0, len(doc.Children))
	for i, childDoc := range doc.Children {
		if childDoc.Disabled {
			continue
		}
		child, err := buildCollider(childDoc, store)
		if err != nil {
			return physics.Collider{}, fmt.Errorf("children[%d]: %w", i, err)
		}
		local, err := buildRigid(childDoc.Local)
		if err != nil {
			return physics.Collider{}, fmt.Errorf("children[%d]: %w", i, err)
		}
		children = append(children, physics.CompoundChild{Collider: child, Transform: local})
	}
	if len(children) == 0 {
		return physics.Collider{}, invalid("compound needs at least one enabled child")
	}

	blob, err := store.Compound(children)
	if err != nil {
		return physics.Collider{}, err
	}

	compound := physics.NewCompoundCollider(blob)
	compound.StretchMode = mode
	if doc.UniformScale != nil {
		compound.Scale = *doc.UniformScale
	}
	if compound.Stretch, err = vec3("stretch", doc.Stretch, compound.Stretch); err != nil {
		return physics.Collider{}, err
	}
	return physics.NewCollider(compound), nil
}

func pointList(points [][]float32) ([]mgl32.Vec3, error) {
	out := make([]mgl32.Vec3, len(points))
	for i, p := range points {
		if len(p) == 0 {
			return nil, invalid("points[%d]: empty point", i)
		}
		v, err := vec3(fmt.Sprintf("points[%d]", i), p, mgl32.Vec3{})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseMode maps a mode name to its value. An empty name selects the first
// mode.
func parseMode[M fmt.Stringer](field, name string, modes ...M) (M, error) {
	if name == "" {
		return modes[0], nil
	}
	for _, m := range modes {
		if m.String() == name {
			return m, nil
		}
	}
	var zero M
	return zero, invalid("%s: unknown mode %q", field, name)
}
