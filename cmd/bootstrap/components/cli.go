package components

import (
	"seva-console/internal/cli"

	"go.uber.org/fx"
)

var CLIModule = fx.Module("cli",
	fx.Provide(
		cli.NewServices,
		cli.NewRootCommand,
	),
)
