package authoring

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/zeusync/colliders/internal/core/systems/physics"
)

// Describe renders c as a document entry. Feeding the result back through
// Build yields an equal collider. A convex or compound collider without a
// blob is rendered without points or children.
func Describe(name string, c physics.Collider) ColliderDoc {
	doc := ColliderDoc{Name: name, Type: c.Type().String()}

	switch s := c.Shape().(type) {
	case physics.SphereCollider:
		doc.Center = floats(s.Center)
		doc.Radius = s.Radius
		doc.StretchMode = s.StretchMode.String()
	case physics.CapsuleCollider:
		doc.PointA = floats(s.PointA)
		doc.PointB = floats(s.PointB)
		doc.Radius = s.Radius
		doc.StretchMode = s.StretchMode.String()
	case physics.BoxCollider:
		doc.Center = floats(s.Center)
		doc.Size = floats(s.HalfSize.Mul(2))
	case physics.TriangleCollider:
		doc.Points = [][]float32{floats(s.PointA), floats(s.PointB), floats(s.PointC)}
	case physics.ConvexCollider:
		if s.Blob != nil {
			for _, p := range s.Blob.Points() {
				doc.Points = append(doc.Points, floats(p))
			}
		}
		doc.Scale = floats(s.Scale)
	case physics.CompoundCollider:
		for i := 0; s.Blob != nil && i < s.Blob.Len(); i++ {
			child := s.Blob.Child(i)
			childDoc := Describe("", child.Collider)
			childDoc.Local = describeRigid(child.Transform)
			doc.Children = append(doc.Children, childDoc)
		}
		scale := s.Scale
		doc.UniformScale = &scale
		doc.Stretch = floats(s.Stretch)
		doc.StretchMode = s.StretchMode.String()
	}
	return doc
}

// DescribeAll renders every entity's collider.
func DescribeAll(entities []Entity) *Document {
	doc := &Document{Colliders: make([]ColliderDoc, len(entities))}
	for i, e := range entities {
		doc.Colliders[i] = Describe(e.Name, e.Collider)
	}
	return doc
}

func describeRigid(t physics.RigidTransform) *RigidDoc {
	return &RigidDoc{
		Position: floats(t.Position),
		Rotation: quatFloats(t.Rotation),
	}
}

func quatFloats(q mgl32.Quat) []float32 {
	return []float32{q.V[0], q.V[1], q.V[2], q.W}
}
