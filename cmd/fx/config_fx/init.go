package config_fx

import (
	"go.uber.org/fx"

	"jaktrip/internal/config"
)

var Module = fx.Provide(config.LoadConfig)
