package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogSnapshotSort 目录快照的固定排序：评分降序、热度降序、movie_id升序
// 该顺序决定语料行索引，去重时首个出现的（即评分最高的）被保留
var catalogSnapshotSort = bson.D{
	{Key: "vote_average", Value: -1},
	{Key: "popularity", Value: -1},
	{Key: "movie_id", Value: 1},
}

type movieRepository struct {
	base       domain.BaseRepository[domain.Movie]
	db         mongo.Database
	collection string
}

func NewMovieRepository(db mongo.Database) domain.MovieRepository {
	return &movieRepository{
		base:       NewBaseMongoRepository[domain.Movie](db, domain.CollectionMovie),
		db:         db,
		collection: domain.CollectionMovie,
	}
}

func (r *movieRepository) GetAllSnapshot(ctx context.Context) ([]domain.Movie, error) {
	ptrMovies, err := r.base.GetAllSorted(ctx, catalogSnapshotSort)
	if err != nil {
		return nil, fmt.Errorf("目录快照查询失败: %w", err)
	}

	movies := make([]domain.Movie, 0, len(ptrMovies))
	for _, ptr := range ptrMovies {
		if ptr == nil {
			continue
		}
		movies = append(movies, *ptr)
	}
	return movies, nil
}

func (r *movieRepository) GetByMovieID(ctx context.Context, movieID int) (*domain.Movie, error) {
	movie, err := r.base.GetOneByFilter(ctx, bson.M{"movie_id": movieID})
	if err != nil {
		return nil, fmt.Errorf("影片查询失败: %w", err)
	}
	if movie == nil {
		return nil, domain.ErrMovieNotFound
	}
	return movie, nil
}

func (r *movieRepository) SearchByTitle(ctx context.Context, query string, limit int64) ([]domain.Movie, error) {
	filter := bson.M{"title": primitive.Regex{
		Pattern: regexp.QuoteMeta(query),
		Options: "i",
	}}

	ptrMovies, err := r.base.GetPaginatedSorted(ctx, filter, 0, limit, catalogSnapshotSort)
	if err != nil {
		return nil, fmt.Errorf("影片标题检索失败: %w", err)
	}

	movies := make([]domain.Movie, 0, len(ptrMovies))
	for _, ptr := range ptrMovies {
		if ptr == nil {
			continue
		}
		movies = append(movies, *ptr)
	}
	return movies, nil
}

func (r *movieRepository) GetPaginated(ctx context.Context, pagination domain.Pagination) ([]domain.Movie, error) {
	ptrMovies, err := r.base.GetPaginatedSorted(ctx, bson.M{}, pagination.Skip(), pagination.Limit, catalogSnapshotSort)
	if err != nil {
		return nil, fmt.Errorf("影片分页查询失败: %w", err)
	}

	movies := make([]domain.Movie, 0, len(ptrMovies))
	for _, ptr := range ptrMovies {
		if ptr == nil {
			continue
		}
		movies = append(movies, *ptr)
	}
	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx, bson.M{})
}

// BulkUpsertByTitle 以标题为键批量插入或更新，导入重复执行不产生重复记录
func (r *movieRepository) BulkUpsertByTitle(ctx context.Context, movies []*domain.Movie) (int, error) {
	if len(movies) == 0 {
		return 0, nil
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	coll := r.db.Collection(r.collection)
	bulk := coll.BulkWrite()

	for _, movie := range movies {
		filter := bson.M{"title": movie.Title}
		update := bson.M{
			"$set": bson.M{
				"movie_id":          movie.MovieID,
				"title":             movie.Title,
				"overview":          movie.Overview,
				"genres":            movie.Genres,
				"vote_average":      movie.VoteAverage,
				"vote_count":        movie.VoteCount,
				"release_date":      movie.ReleaseDate,
				"popularity":        movie.Popularity,
				"runtime":           movie.Runtime,
				"budget":            movie.Budget,
				"revenue":           movie.Revenue,
				"original_language": movie.OriginalLanguage,
				"updated_at":        now,
			},
			"$setOnInsert": bson.M{
				"created_at": now,
			},
		}

		model := driver.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(update).
			SetUpsert(true)

		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("影片批量写入失败: %w", err)
	}

	return int(result.UpsertedCount() + result.ModifiedCount()), nil
}

func (r *movieRepository) DeleteAll(ctx context.Context) (int64, error) {
	return r.base.DeleteMany(ctx, bson.M{})
}

// EnsureIndexes 创建目录查询所需的索引
func (r *movieRepository) EnsureIndexes(ctx context.Context) error {
	coll := r.db.Collection(r.collection)
	indexes := []driver.IndexModel{
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "movie_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "vote_average", Value: -1}, {Key: "popularity", Value: -1}},
		},
	}

	for _, index := range indexes {
		if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("索引创建失败: %w", err)
		}
	}
	return nil
}
