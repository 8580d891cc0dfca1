package blobstore

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems/physics"
)

func TestStoreSharesConvexBlobs(t *testing.T) {
	store := New(log.NewNop())
	points := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	a, err := store.Convex(points)
	require.NoError(t, err)
	b, err := store.Convex(points)
	require.NoError(t, err)
	c, err := store.Convex([]mgl32.Vec3{{0, 0, 0}, {2, 0, 0}})
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, Stats{ConvexBlobs: 2, Hits: 1}, store.Stats())
}

func TestStoreSharesCompoundBlobs(t *testing.T) {
	store := New(log.NewNop())
	hull, err := store.Convex([]mgl32.Vec3{{1, 1, 1}, {-1, -1, -1}})
	require.NoError(t, err)

	children := func() []physics.CompoundChild {
		return []physics.CompoundChild{
			{Collider: physics.NewCollider(physics.NewConvexCollider(hull)), Transform: physics.IdentityRigidTransform()},
			{Collider: physics.NewCollider(physics.SphereCollider{Radius: 1}), Transform: physics.RigidTransform{
				Rotation: mgl32.QuatIdent(),
				Position: mgl32.Vec3{0, 2, 0},
			}},
		}
	}

	a, err := store.Compound(children())
	require.NoError(t, err)
	b, err := store.Compound(children())
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, store.Stats().CompoundBlobs)
}

func TestStoreRejectsEmpty(t *testing.T) {
	store := New(log.NewNop())
	_, err := store.Convex(nil)
	assert.ErrorIs(t, err, physics.ErrEmptyBlob)
	_, err = store.Compound(nil)
	assert.ErrorIs(t, err, physics.ErrEmptyBlob)
}

func TestStoreConcurrentInterning(t *testing.T) {
	store := New(log.NewNop())
	points := []mgl32.Vec3{{3, 2, 1}, {1, 2, 3}}

	blobs := make([]*physics.ConvexColliderBlob, 16)
	var wg sync.WaitGroup
	for i := range blobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			blob, err := store.Convex(points)
			assert.NoError(t, err)
			blobs[i] = blob
		}(i)
	}
	wg.Wait()

	for _, blob := range blobs {
		assert.Same(t, blobs[0], blob)
	}
	assert.Equal(t, 1, store.Stats().ConvexBlobs)
}

func TestStoreReset(t *testing.T) {
	store := New(log.NewNop())
	points := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}}

	before, err := store.Convex(points)
	require.NoError(t, err)
	_, err = store.Convex(points)
	require.NoError(t, err)

	store.Reset()
	assert.Equal(t, Stats{}, store.Stats())

	after, err := store.Convex(points)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.True(t, before.Equal(after))
	assert.Equal(t, Stats{ConvexBlobs: 1}, store.Stats())
}
