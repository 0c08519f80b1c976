package destinations_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"jaktrip/internal/config"
	"jaktrip/internal/planner"
	"jaktrip/internal/repositories"
	"jaktrip/internal/services"
	mem "jaktrip/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideDestinationRepo, provideDestinationService),
	fx.Invoke(seedSamples),
)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepositoryInterface {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(
	repo repositories.DestinationRepositoryInterface,
	cache mem.SnapshotStore[[]planner.RawDestination],
	cfg *config.Config) services.DestinationServiceInterface {

	return services.NewDestinationService(repo, cache, cfg.Catalog.CacheTTL)
}

func seedSamples(lc fx.Lifecycle, cfg *config.Config, svc services.DestinationServiceInterface) {
	if !cfg.Database.SeedSamples {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.SeedSamples(ctx)
		},
	})
}
