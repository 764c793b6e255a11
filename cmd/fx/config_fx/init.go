package config_fx

import (
	"go.uber.org/fx"

	"tourwise/internal/config"
)

var Module = fx.Provide(provideConfig)

func provideConfig() *config.Config {
	cfg := config.Load()
	cfg.ConfigureLogging()
	return cfg
}
