// Package model contains the persistence representations of domain
// entities and their mapping helpers.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"accounts/internal/domain/entity"
)

// UserModel mirrors a document in the 'users' collection. The store assigns
// the ObjectID on insert; the 'password' field always holds the bcrypt hash.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

// CollectionName is the collection UserModel documents live in.
func (UserModel) CollectionName() string {
	return "users"
}

// FromUserDomain maps a pure domain entity to its persistence model.
// An entity without an identifier maps to a model with a zero ObjectID so
// the store assigns one on insert.
func FromUserDomain(user *entity.User) (*UserModel, error) {
	m := &UserModel{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.Password,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
