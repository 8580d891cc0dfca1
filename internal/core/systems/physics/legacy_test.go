package physics

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhysicsScale(t *testing.T) {
	assert.Equal(t, ScaleNone, NewPhysicsScale(mgl32.Vec3{1, 1, 1}).State)
	assert.Equal(t, ScaleUniform, NewPhysicsScale(mgl32.Vec3{3, 3, 3}).State)
	assert.Equal(t, ScaleNonUniform, NewPhysicsScale(mgl32.Vec3{1, 2, 1}).State)
	assert.Equal(t, ScaleNonComputable, NonComputable().State)
}

func TestScaleColliderSphere(t *testing.T) {
	sphere := NewCollider(SphereCollider{Center: mgl32.Vec3{1, 0, 0}, Radius: 0.5})

	t.Run("uniform", func(t *testing.T) {
		scaled, err := ScaleCollider(sphere, PhysicsScale{State: ScaleUniform, Scale: mgl32.Vec3{3, 3, 3}})
		require.NoError(t, err)
		assert.Equal(t, float32(1.5), scaled.Sphere().Radius)
		assert.Equal(t, mgl32.Vec3{3, 0, 0}, scaled.Sphere().Center)
	})

	t.Run("non uniform rejected", func(t *testing.T) {
		_, err := ScaleCollider(sphere, NewPhysicsScale(mgl32.Vec3{1, 2, 1}))
		require.ErrorIs(t, err, ErrInvalidUniformScaleRequired)

		var colliderErr *Error
		require.True(t, errors.As(err, &colliderErr))
		assert.Equal(t, ColliderTypeSphere, colliderErr.Type)
		assert.Contains(t, err.Error(), "sphere")
	})

	t.Run("zero value is identity", func(t *testing.T) {
		scaled, err := ScaleCollider(sphere, PhysicsScale{})
		require.NoError(t, err)
		assert.Equal(t, sphere, scaled)
	})
}

func TestScaleColliderUniformOnlyShapes(t *testing.T) {
	samples := sampleColliders(t)
	for _, typ := range []ColliderType{ColliderTypeSphere, ColliderTypeCapsule, ColliderTypeCompound} {
		for _, scale := range []PhysicsScale{NewPhysicsScale(mgl32.Vec3{1, 2, 3}), NonComputable()} {
			_, err := ScaleCollider(samples[typ], scale)
			assert.ErrorIs(t, err, ErrInvalidUniformScaleRequired, "%s with %s", typ, scale.State)
			assert.Equal(t, ErrorCodeInvalidUniformScaleRequired, GetErrorCode(err))
		}
	}
}

func TestScaleColliderAxisAlignedShapes(t *testing.T) {
	samples := sampleColliders(t)
	scale := NewPhysicsScale(mgl32.Vec3{2, 1, 3})

	box, err := ScaleCollider(samples[ColliderTypeBox], scale)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{2, 2, 9}, box.Box().Center)
	assert.Equal(t, mgl32.Vec3{1, 1, 4.5}, box.Box().HalfSize)

	tri, err := ScaleCollider(samples[ColliderTypeTriangle], scale)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{2, 0, 0}, tri.Triangle().PointB)
	assert.Equal(t, mgl32.Vec3{0, 1, 3}, tri.Triangle().PointC)

	convex, err := ScaleCollider(samples[ColliderTypeConvex], scale)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{2, 1, 3}, convex.Convex().Scale)
	assert.Same(t, samples[ColliderTypeConvex].Convex().Blob, convex.Convex().Blob)

	for _, typ := range []ColliderType{ColliderTypeBox, ColliderTypeTriangle, ColliderTypeConvex} {
		_, err = ScaleCollider(samples[typ], NonComputable())
		assert.ErrorIs(t, err, ErrNonComputableScale, typ.String())
	}
}

func TestScaleColliderCompound(t *testing.T) {
	compound := sampleColliders(t)[ColliderTypeCompound]
	scaled, err := ScaleCollider(compound, UniformScale(4))
	require.NoError(t, err)
	assert.Equal(t, float32(4), scaled.Compound().Scale)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, scaled.Compound().Stretch)
}

func TestScaleColliderUnsupported(t *testing.T) {
	_, err := ScaleCollider(Collider{}, UniformScale(2))
	assert.ErrorIs(t, err, ErrUnsupportedColliderType)
}
