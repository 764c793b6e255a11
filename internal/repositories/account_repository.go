package repositories

import (
	"context"
	"time"

	"tourwise/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByIDs(ctx context.Context, ids []string) ([]db_models.Account, error)
	Count(ctx context.Context, since, until *time.Time) (int64, error)
}
