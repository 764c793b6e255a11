package itinerary_fx

import (
	"go.uber.org/fx"

	"tourwise/internal/config"
	"tourwise/internal/repositories"
	"tourwise/internal/services"
)

var Module = fx.Provide(
	providePlaceSearcher,
	providePlanEnricher,
	services.NewPDFExporter,
	provideItineraryService,
)

func providePlaceSearcher(cfg *config.Config) services.PlaceSearcher {
	return services.NewGooglePlacesClient(cfg.GoogleMapsAPIKey, cfg.PlacesBaseURL)
}

func providePlanEnricher(places services.PlaceSearcher, cfg *config.Config) services.PlanEnricher {
	return services.NewPlanEnricher(places, cfg.PlacesTimeout)
}

func provideItineraryService(
	store *repositories.Store,
	routeService services.RouteServiceInterface,
	generator services.ItineraryGenerator,
	enricher services.PlanEnricher,
	exporter services.ItineraryExporter,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(store.Itineraries, store.Routes, routeService, generator, enricher, exporter)
}
