package route_fx

import (
	"go.uber.org/fx"

	"tourwise/internal/config"
	"tourwise/internal/repositories"
	"tourwise/internal/services"
)

var Module = fx.Provide(
	provideRouteService,
)

func provideRouteService(store *repositories.Store, cfg *config.Config) services.RouteServiceInterface {
	return services.NewRouteService(store.Routes, store.Itineraries, store.Accounts, services.ShareConfig{
		PublicBaseURL: cfg.PublicBaseURL,
	})
}
