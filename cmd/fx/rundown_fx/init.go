package rundown_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"jaktrip/internal/config"
	"jaktrip/internal/repositories"
	"jaktrip/internal/services"
)

var Module = fx.Provide(
	provideRundownRepo, provideRundownService)

func provideRundownRepo(db *gorm.DB) repositories.RundownRepositoryInterface {
	return repositories.NewRundownRepository(db)
}

func provideRundownService(
	destinationService services.DestinationServiceInterface,
	repo repositories.RundownRepositoryInterface,
	cfg *config.Config) services.RundownServiceInterface {

	return services.NewRundownService(destinationService, repo, cfg.Planner)
}
