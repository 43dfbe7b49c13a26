package bootstrap

import (
	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.StubConfig) *jwt.Service {
	return jwt.NewService(cfg.JWTSecret, cfg.JWTDuration)
}
