package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

const (
	defaultTopN = 8
	maxTopN     = 20
)

type RecommendController struct {
	RecommendUsecase domain.RecommendUsecase
}

func NewRecommendController(recommendUsecase domain.RecommendUsecase) *RecommendController {
	return &RecommendController{
		RecommendUsecase: recommendUsecase,
	}
}

// GetRecommendations GET /recommend?movie_id=123&top_n=8
// 查询的影片不存在时返回空列表（成功响应），仅基础设施失败返回错误
func (c *RecommendController) GetRecommendations(ctx *gin.Context) {
	movieID, err := strconv.Atoi(ctx.Query("movie_id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_MOVIE_ID", "movie_id参数必须是数字")
		return
	}

	// top_n钳制到[1,20]，非法值回退为默认值
	topN := defaultTopN
	if raw := ctx.Query("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxTopN {
			topN = defaultTopN
		} else {
			topN = parsed
		}
	}

	recommendations, err := c.RecommendUsecase.GetRecommendations(ctx.Request.Context(), movieID, topN)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"movie_id":        movieID,
		"count":           len(recommendations),
		"recommendations": recommendations,
	})
}

// GetStatus GET /recommend/status
func (c *RecommendController) GetStatus(ctx *gin.Context) {
	status := c.RecommendUsecase.Status(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    status,
	})
}

// Reinitialize POST /admin/recommend/reinitialize
// 显式重建推荐索引，这是观察到目录变更的唯一途径
func (c *RecommendController) Reinitialize(ctx *gin.Context) {
	if err := c.RecommendUsecase.Reinitialize(ctx.Request.Context()); err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "INITIALIZATION_FAILED", err.Error())
		return
	}

	status := c.RecommendUsecase.Status(ctx.Request.Context())
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    status,
	})
}
