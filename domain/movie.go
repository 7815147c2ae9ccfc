package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie 影片目录实体，目录是唯一的持久化数据源
// 推荐会话使用的是其时点快照，目录后续写入不会反映到已拟合的索引中
type Movie struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MovieID          int                `bson:"movie_id" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Overview         string             `bson:"overview" json:"overview,omitempty"`
	Genres           string             `bson:"genres" json:"genres"`
	VoteAverage      float64            `bson:"vote_average" json:"vote_average"`
	VoteCount        int                `bson:"vote_count" json:"vote_count"`
	ReleaseDate      string             `bson:"release_date" json:"release_date,omitempty"`
	Popularity       float64            `bson:"popularity" json:"popularity"`
	Runtime          int                `bson:"runtime" json:"runtime,omitempty"`
	Budget           int64              `bson:"budget" json:"budget,omitempty"`
	Revenue          int64              `bson:"revenue" json:"revenue,omitempty"`
	OriginalLanguage string             `bson:"original_language" json:"original_language"`
	PosterURL        string             `bson:"-" json:"poster_url,omitempty"`
	CreatedAt        primitive.DateTime `bson:"created_at" json:"-"`
	UpdatedAt        primitive.DateTime `bson:"updated_at" json:"-"`
}

type MovieRepository interface {
	// GetAllSnapshot 返回全量目录快照，按（评分降序，热度降序，movie_id升序）排列
	GetAllSnapshot(ctx context.Context) ([]Movie, error)
	GetByMovieID(ctx context.Context, movieID int) (*Movie, error)
	SearchByTitle(ctx context.Context, query string, limit int64) ([]Movie, error)
	GetPaginated(ctx context.Context, pagination Pagination) ([]Movie, error)
	Count(ctx context.Context) (int64, error)
	BulkUpsertByTitle(ctx context.Context, movies []*Movie) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type MovieUsecase interface {
	Fetch(ctx context.Context, pagination Pagination) ([]Movie, int64, error)
	GetByMovieID(ctx context.Context, movieID int) (*Movie, error)
	Search(ctx context.Context, query string, limit int64) ([]Movie, error)
}
