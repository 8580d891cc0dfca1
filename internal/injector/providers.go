package injector

import (
	"github.com/zeusync/colliders/internal/config"
	"github.com/zeusync/colliders/internal/core/observability/log"
	"github.com/zeusync/colliders/internal/core/systems/bake"
)

func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	logger, err := log.New(cfg.LogOptions())
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideBakeOptions(cfg *config.Config) bake.Options {
	return bake.Options{Workers: cfg.Bake.Workers}
}
