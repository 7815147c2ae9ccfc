package domain

import (
	"context"
)

// Recommendation 单条推荐记录，相似度作为组合字段返回而非回写Movie
type Recommendation struct {
	MovieID         int     `json:"id"`
	Title           string  `json:"title"`
	Genres          string  `json:"genres"`
	VoteAverage     float64 `json:"vote_average"`
	SimilarityScore float64 `json:"similarity_score"`
	PosterURL       string  `json:"poster_url,omitempty"`
}

// RecommendStatus 推荐服务就绪状态
type RecommendStatus struct {
	Ready      bool `json:"ready"`
	MovieCount int  `json:"movie_count"`
}

type RecommendUsecase interface {
	// Initialize 幂等初始化：已就绪时直接返回，失败返回InitializationError且状态保持未就绪
	Initialize(ctx context.Context) error

	// Reinitialize 显式重建索引，这是唯一的缓存失效途径
	Reinitialize(ctx context.Context) error

	// GetRecommendations 未命中返回空序列与nil错误，仅基础设施失败返回错误
	GetRecommendations(ctx context.Context, movieID int, topN int) ([]Recommendation, error)

	Status(ctx context.Context) RecommendStatus
}
