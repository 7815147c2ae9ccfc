package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

type movieUsecase struct {
	movieRepository domain.MovieRepository
	posterProvider  domain.PosterProvider
	timeout         time.Duration
}

func NewMovieUsecase(
	movieRepository domain.MovieRepository,
	posterProvider domain.PosterProvider,
	timeout time.Duration,
) domain.MovieUsecase {
	return &movieUsecase{
		movieRepository: movieRepository,
		posterProvider:  posterProvider,
		timeout:         timeout,
	}
}

func (u *movieUsecase) Fetch(ctx context.Context, pagination domain.Pagination) ([]domain.Movie, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	movies, err := u.movieRepository.GetPaginated(ctx, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("影片列表获取失败: %w", err)
	}

	total, err := u.movieRepository.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("影片总数统计失败: %w", err)
	}

	u.attachPosters(ctx, movies)
	return movies, total, nil
}

func (u *movieUsecase) GetByMovieID(ctx context.Context, movieID int) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	movie, err := u.movieRepository.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if u.posterProvider != nil {
		movie.PosterURL = u.posterProvider.PosterURL(ctx, movie.Title)
		// 本地无简介时回退到外部查询结果
		if movie.Overview == "" {
			movie.Overview = u.posterProvider.Overview(ctx, movie.Title)
		}
	}
	return movie, nil
}

func (u *movieUsecase) Search(ctx context.Context, query string, limit int64) ([]domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	movies, err := u.movieRepository.SearchByTitle(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("影片检索失败: %w", err)
	}

	u.attachPosters(ctx, movies)
	return movies, nil
}

func (u *movieUsecase) attachPosters(ctx context.Context, movies []domain.Movie) {
	if u.posterProvider == nil {
		return
	}
	for i := range movies {
		movies[i].PosterURL = u.posterProvider.PosterURL(ctx, movies[i].Title)
	}
}
