package repository

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type userRepository struct {
	base domain.BaseRepository[domain.User]
}

func NewUserRepository(db mongo.Database) domain.UserRepository {
	return &userRepository{
		base: NewBaseMongoRepository[domain.User](db, domain.CollectionUser),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.base.Create(ctx, user); err != nil {
		return fmt.Errorf("用户创建失败: %w", err)
	}
	return nil
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	user, err := r.base.GetOneByFilter(ctx, bson.M{"name": name})
	if err != nil {
		return nil, fmt.Errorf("用户查询失败: %w", err)
	}
	return user, nil
}
