package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 管理端账户，密码以bcrypt散列存储
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name     string             `bson:"name" json:"name"`
	Password string             `bson:"password" json:"-"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByName(ctx context.Context, name string) (*User, error)
}

type LoginUsecase interface {
	GetUserByName(ctx context.Context, name string) (*User, error)
	CreateAccessToken(user *User, secret string, expiryHour int) (string, error)
}
