package controllers_fx

import (
	"go.uber.org/fx"

	"jaktrip/internal/api/controllers"
	"jaktrip/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(utils.NewValidator),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewRundownController))
