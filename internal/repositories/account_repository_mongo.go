package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

const AccountsCollection = "accounts"

type mongoAccountRepository struct {
	coll *mongo.Collection
}

func NewMongoAccountRepository(db *mongo.Database) AccountRepository {
	return &mongoAccountRepository{coll: db.Collection(AccountsCollection)}
}

func (r *mongoAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if r.coll == nil {
		return errNilCollection
	}
	stampCreate(&account.CreatedAt, &account.UpdatedAt)
	_, err := r.coll.InsertOne(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *mongoAccountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*db_models.Account, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	var account db_models.Account
	err := r.coll.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *mongoAccountRepository) FindByIDs(ctx context.Context, ids []string) ([]db_models.Account, error) {
	if r.coll == nil {
		return nil, errNilCollection
	}
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var accounts []db_models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *mongoAccountRepository) Count(ctx context.Context, since, until *time.Time) (int64, error) {
	if r.coll == nil {
		return 0, errNilCollection
	}
	filter := bson.M{}
	createdRange(filter, since, until)
	return r.coll.CountDocuments(ctx, filter)
}
