package account_fx

import (
	"go.uber.org/fx"

	"tourwise/internal/config"
	"tourwise/internal/repositories"
	"tourwise/internal/services"
	"tourwise/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, provideAccountService)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(store *repositories.Store, jwt *utils.JWTManager) services.AccountServiceInterface {
	return services.NewAccountService(store.Accounts, jwt)
}
