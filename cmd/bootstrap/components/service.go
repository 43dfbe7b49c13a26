package components

import (
	"seva-console/internal/service"

	"go.uber.org/fx"
)

var ServiceModule = fx.Module("service",
	fx.Provide(
		service.NewAuthService,
		service.NewBookSevaService,
		service.NewCallingSevaService,
		service.NewExpenseService,
		service.NewGeneralService,
		service.NewDashboardService,
	),
)
