package controllers_fx

import (
	"go.uber.org/fx"

	"tourwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAIItineraryController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewRouteController),
	fx.Provide(controllers.NewDashboardController))
