package bootstrap

import (
	"seva-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// ConsoleModule wires sevactl: API client, domain services and commands.
var ConsoleModule = fx.Options(
	ConfigModule,
	ConsoleLoggerModule,
	components.ClientModule,
	components.ServiceModule,
	components.CLIModule,
)

// StubModule wires stubapi: in-memory store and gin handlers.
var StubModule = fx.Options(
	StubConfigModule,
	StubLoggerModule,
	JWTModule,
	components.StoreModule,
	components.HandlerModule,
)
