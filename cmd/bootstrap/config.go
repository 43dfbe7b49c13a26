package bootstrap

import (
	"seva-console/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigParts,
)

// ConfigParts exposes the sections of config.Config that constructors take directly.
var ConfigParts = fx.Provide(
	func(cfg config.Config) config.APIConfig { return cfg.API },
	func(cfg config.Config) config.SessionConfig { return cfg.Session },
)

var StubConfigModule = fx.Module("stub-config",
	fx.Provide(
		config.LoadStubConfig,
	),
)
