//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/colliders/internal/config"
	"github.com/zeusync/colliders/internal/core/blobstore"
	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems/bake"
	"github.com/zeusync/colliders/internal/pipeline"
)

func InitializePipeline(cfg *config.Config) (*pipeline.Pipeline, func(), error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		ProvideBakeOptions,
		bake.NewSystem,
		blobstore.New,
		pipeline.New,
	)
	return nil, nil, nil
}
