package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/recommend"
)

// recommendUsecase 推荐服务编排：懒拟合 -> 进程内缓存 -> 查询
//
// 拟合状态是进程内快照，目录在拟合之后的写入不会被索引观察到，
// 唯一的失效途径是显式调用 Reinitialize（已知设计限制，非缺陷）
type recommendUsecase struct {
	movieRepository domain.MovieRepository
	posterProvider  domain.PosterProvider
	timeout         time.Duration

	fitGroup singleflight.Group
	mu       sync.RWMutex
	session  *recommend.Session
}

func NewRecommendUsecase(
	movieRepository domain.MovieRepository,
	posterProvider domain.PosterProvider,
	timeout time.Duration,
) domain.RecommendUsecase {
	return &recommendUsecase{
		movieRepository: movieRepository,
		posterProvider:  posterProvider,
		timeout:         timeout,
	}
}

func (u *recommendUsecase) currentSession() *recommend.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.session
}

// fit 执行一次完整的 快照 -> 向量化 -> 相似度 流水线
// 任一环节失败都包装为InitializationError，且不产生部分状态
func (u *recommendUsecase) fit(ctx context.Context) (*recommend.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	// 1. 目录快照（时点副本，按评分降序排列）
	movies, err := u.movieRepository.GetAllSnapshot(ctx)
	if err != nil {
		return nil, &domain.InitializationError{Cause: err}
	}

	corpus := make([]recommend.CorpusMovie, len(movies))
	for i, movie := range movies {
		corpus[i] = recommend.CorpusMovie{
			MovieID:     movie.MovieID,
			Title:       movie.Title,
			Genres:      movie.Genres,
			VoteAverage: movie.VoteAverage,
			Popularity:  movie.Popularity,
		}
	}

	// 2. 拟合（去重、TF-IDF、相似度矩阵）
	session, err := recommend.Fit(corpus)
	if err != nil {
		return nil, &domain.InitializationError{Cause: err}
	}

	log.Printf("推荐索引构建完成: %d部影片, 词表规模%d", session.Size(), session.VocabularySize())
	return session, nil
}

// ensureSession 懒拟合：并发首次调用通过singleflight合并为一次拟合，
// 等待者共享同一结果；失败时不写入任何状态，下次调用重新拟合
func (u *recommendUsecase) ensureSession(ctx context.Context) (*recommend.Session, error) {
	if session := u.currentSession(); session != nil {
		return session, nil
	}

	value, err, _ := u.fitGroup.Do("fit", func() (interface{}, error) {
		// 双重检查：等待期间可能已有拟合完成
		if session := u.currentSession(); session != nil {
			return session, nil
		}

		session, err := u.fit(ctx)
		if err != nil {
			return nil, err
		}

		u.mu.Lock()
		u.session = session
		u.mu.Unlock()
		return session, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*recommend.Session), nil
}

// Initialize 幂等初始化
func (u *recommendUsecase) Initialize(ctx context.Context) error {
	_, err := u.ensureSession(ctx)
	return err
}

// Reinitialize 显式重建索引；重建失败时保留原有会话不变
func (u *recommendUsecase) Reinitialize(ctx context.Context) error {
	_, err, _ := u.fitGroup.Do("refit", func() (interface{}, error) {
		session, err := u.fit(ctx)
		if err != nil {
			return nil, err
		}

		u.mu.Lock()
		u.session = session
		u.mu.Unlock()
		return session, nil
	})
	return err
}

func (u *recommendUsecase) GetRecommendations(ctx context.Context, movieID int, topN int) ([]domain.Recommendation, error) {
	// 1. 确保会话就绪（必要时触发懒拟合）
	session, err := u.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	// 2. 目录中解析movie_id对应的标题；不存在按空结果处理，不是错误
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	movie, err := u.movieRepository.GetByMovieID(ctx, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return []domain.Recommendation{}, nil
		}
		return nil, err
	}

	// 3. 语料内标题解析：精确匹配优先，其次折叠子串匹配
	//    （目录在拟合后发生变化时，标题可能不在语料中）
	title, ok := session.ResolveTitle(movie.Title)
	if !ok {
		return []domain.Recommendation{}, nil
	}

	// 4. TopN查询
	results, err := session.Recommend(title, topN)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return []domain.Recommendation{}, nil
		}
		return nil, err
	}

	recommendations := make([]domain.Recommendation, len(results))
	for i, result := range results {
		recommendations[i] = domain.Recommendation{
			MovieID:         result.MovieID,
			Title:           result.Title,
			Genres:          result.Genres,
			VoteAverage:     result.VoteAverage,
			SimilarityScore: result.Similarity,
		}
		if u.posterProvider != nil {
			recommendations[i].PosterURL = u.posterProvider.PosterURL(ctx, result.Title)
		}
	}
	return recommendations, nil
}

func (u *recommendUsecase) Status(_ context.Context) domain.RecommendStatus {
	session := u.currentSession()
	if session == nil {
		return domain.RecommendStatus{Ready: false, MovieCount: 0}
	}
	return domain.RecommendStatus{Ready: true, MovieCount: session.Size()}
}
