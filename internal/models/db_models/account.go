package db_models

import "time"

type Account struct {
	ID           string    `json:"id" bson:"_id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	IsAdmin      bool      `json:"isAdmin" bson:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (a *Account) Role() string {
	if a.IsAdmin {
		return "admin"
	}
	return "user"
}
