package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/colliders/internal/config"
	"github.com/zeusync/colliders/internal/core/authoring"
)

func TestInitializePipeline(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Bake.Workers = 2

	p, cleanup, err := InitializePipeline(cfg)
	require.NoError(t, err)
	defer cleanup()

	scale := float32(5)
	doc := &authoring.Document{Colliders: []authoring.ColliderDoc{{
		Type:      "sphere",
		Radius:    1,
		Transform: &authoring.TransformDoc{Scale: &scale},
	}}}
	out, err := p.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, float32(5), out.Colliders[0].Radius)
}

func TestProvideBakeOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Bake.Workers = 7
	assert.Equal(t, 7, ProvideBakeOptions(cfg).Workers)
}
