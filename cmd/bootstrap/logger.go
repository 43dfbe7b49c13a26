package bootstrap

import (
	"log/slog"
	"os"

	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/logger"

	"go.uber.org/fx"
)

// The console keeps stdout for command output, so its logs go to stderr.
var ConsoleLoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *slog.Logger {
			return logger.New(cfg.Log, os.Stderr)
		},
	),
)

var StubLoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.StubConfig) *slog.Logger {
			return logger.New(cfg.Log, os.Stdout)
		},
	),
)
