package components

import (
	"log/slog"

	"seva-console/internal/infra/memstore"
	"seva-console/internal/pkg/clock"
	"seva-console/internal/pkg/config"
	"seva-console/internal/pkg/errs"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewUserStore,
		memstore.NewStore,
	),
)

// NewUserStore seeds the single operator account the stub accepts.
func NewUserStore(cfg config.StubConfig, logger *slog.Logger) (*memstore.UserStore, error) {
	users := memstore.NewUserStore(cfg.OTPCode)
	if err := users.Add(cfg.UserEmail, cfg.UserName, cfg.UserPassword); err != nil {
		return nil, errs.Wrap(err, "seed stub user")
	}
	logger.Info("stub user seeded", "email", cfg.UserEmail)
	return users, nil
}
