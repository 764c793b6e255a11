package dashboard

import (
	"go.uber.org/fx"

	"tourwise/internal/services"
)

var Module = fx.Provide(
	services.NewDashboardService,
)
