package llm_fx

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tourwise/internal/config"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideItineraryGenerator,
)

// ProvideTextGenerator returns nil when no API key is configured; generation then always falls back.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config) utils.TextGenerator {
	if cfg.LLMAPIKey == "" {
		log.Warn("no LLM API key configured, itineraries will use the fallback planner")
		return nil
	}

	client, err := utils.NewTextGenerator(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	if err != nil {
		log.WithError(err).Error("failed to initialise LLM client, using the fallback planner")
		return nil
	}
	log.WithField("provider", client.Provider()).Info("LLM client initialised")

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client
}

func ProvideItineraryGenerator(client utils.TextGenerator, cfg *config.Config) services.ItineraryGenerator {
	return services.NewItineraryGenerator(client, cfg.LLMTimeout)
}
