package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompoundSubCollider(t *testing.T) {
	compound := sampleColliders(t)[ColliderTypeCompound].Compound()
	require.Equal(t, 2, compound.Len())

	tests := []struct {
		name         string
		mode         CompoundStretchMode
		wantPosition mgl32.Vec3
		wantHalfSize mgl32.Vec3
	}{
		{
			name:         "rotate stretch locally",
			mode:         CompoundRotateStretchLocally,
			wantPosition: mgl32.Vec3{12, 0, 0},
			wantHalfSize: mgl32.Vec3{6, 2, 2},
		},
		{
			name:         "stretch positions only",
			mode:         CompoundStretchPositionsOnly,
			wantPosition: mgl32.Vec3{12, 0, 0},
			wantHalfSize: mgl32.Vec3{2, 2, 2},
		},
		{
			name:         "ignore stretch",
			mode:         CompoundIgnoreStretch,
			wantPosition: mgl32.Vec3{4, 0, 0},
			wantHalfSize: mgl32.Vec3{2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := compound
			c.StretchMode = tt.mode
			c.Scale = 2
			c.Stretch = mgl32.Vec3{3, 1, 1}

			child, transform := c.SubCollider(1)
			assert.Equal(t, tt.wantPosition, transform.Position)
			assert.Equal(t, tt.wantHalfSize, child.Box().HalfSize)

			sphere, _ := c.SubCollider(0)
			assert.Equal(t, float32(1), sphere.Sphere().Radius)

			// the authored child stays as it was
			assert.Equal(t, mgl32.Vec3{1, 1, 1}, c.Blob.Child(1).Collider.Box().HalfSize)
		})
	}
}

func TestCompoundSubColliderRotatesStretch(t *testing.T) {
	rotation := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 0, 1})
	blob, err := NewCompoundColliderBlob([]CompoundChild{{
		Collider:  NewCollider(BoxCollider{HalfSize: mgl32.Vec3{1, 1, 1}}),
		Transform: RigidTransform{Rotation: rotation},
	}})
	require.NoError(t, err)

	c := NewCompoundCollider(blob)
	c.Scale = 2
	c.Stretch = mgl32.Vec3{3, 1, 1}

	child, transform := c.SubCollider(0)
	half := child.Box().HalfSize
	assert.InDelta(t, 2, half[0], 1e-5)
	assert.InDelta(t, 6, half[1], 1e-5)
	assert.InDelta(t, 2, half[2], 1e-5)
	assert.Equal(t, rotation, transform.Rotation)
}
