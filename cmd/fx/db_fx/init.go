package db_fx

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tourwise/internal/config"
	"tourwise/internal/infra"
	"tourwise/internal/repositories"
)

var Module = fx.Provide(provideStore)

// provideStore opens the configured backend and hands out one repository set.
func provideStore(lc fx.Lifecycle, cfg *config.Config) (*repositories.Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := infra.InitPostgresql(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := infra.MigratePostgresql(ctx, db); err != nil {
			infra.ClosePostgresql(db)
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				infra.ClosePostgresql(db)
				return nil
			},
		})
		log.Info("using postgres store")
		return repositories.NewGormStore(db), nil

	case config.DriverMongo:
		client, err := infra.InitMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDB)
		if err := repositories.EnsureMongoIndexes(ctx, db); err != nil {
			infra.CloseMongo(ctx, client)
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseMongo(ctx, client)
				return nil
			},
		})
		log.WithField("database", cfg.MongoDB).Info("using mongo store")
		return repositories.NewMongoStore(db), nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
