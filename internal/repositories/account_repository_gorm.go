package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

type gormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) AccountRepository {
	return &gormAccountRepository{
		db: db,
	}
}

func (a *gormAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	stampCreate(&account.CreatedAt, &account.UpdatedAt)
	err := a.db.WithContext(ctx).Create(account).Error
	if isUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (a *gormAccountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	if !isUUID(id) {
		return nil, nil
	}
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *gormAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *gormAccountRepository) FindByIDs(ctx context.Context, ids []string) ([]db_models.Account, error) {
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if isUUID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, nil
	}
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Where("id IN ?", valid).Find(&accounts).Error
	return accounts, err
}

func (a *gormAccountRepository) Count(ctx context.Context, since, until *time.Time) (int64, error) {
	var n int64
	q := whereCreated(a.db.WithContext(ctx).Model(&db_models.Account{}), since, until)
	err := q.Count(&n).Error
	return n, err
}
