package domain

import (
	"context"
)

// BaseRepository 通用Repository接口，提供标准CRUD操作
// T: 实体类型
type BaseRepository[T any] interface {
	// 基础操作
	Create(ctx context.Context, entity *T) error
	DeleteMany(ctx context.Context, filter interface{}) (int64, error)

	// 查询操作
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 排序与分页查询
	GetAllSorted(ctx context.Context, sort interface{}) ([]*T, error)
	GetPaginatedSorted(ctx context.Context, filter interface{}, skip, limit int64, sort interface{}) ([]*T, error)
}
