package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

type MovieController struct {
	MovieUsecase domain.MovieUsecase
}

func NewMovieController(movieUsecase domain.MovieUsecase) *MovieController {
	return &MovieController{
		MovieUsecase: movieUsecase,
	}
}

// ListMovies GET /movies?page=1&limit=20
func (c *MovieController) ListMovies(ctx *gin.Context) {
	page, err := strconv.ParseInt(ctx.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PAGE", "page参数必须是正整数")
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正整数")
		return
	}
	if limit > 100 {
		limit = 100
	}

	movies, total, err := c.MovieUsecase.Fetch(ctx.Request.Context(), domain.Pagination{Page: page, Limit: limit})
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(movies),
		"total":   total,
		"page":    page,
		"results": movies,
	})
}

// GetMovieDetail GET /movies/:id
func (c *MovieController) GetMovieDetail(ctx *gin.Context) {
	movieID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ID", "id参数必须是数字")
		return
	}

	movie, err := c.MovieUsecase.GetByMovieID(ctx.Request.Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", "影片不存在")
			return
		}
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    movie,
	})
}

// SearchMovies GET /movies/search?q=xxx&limit=10
func (c *MovieController) SearchMovies(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_QUERY", "q参数是必需的")
		return
	}
	if len(query) < 2 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_QUERY", "q参数至少需要2个字符")
		return
	}

	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit参数必须是正整数")
		return
	}
	if limit > 50 {
		limit = 50
	}

	movies, err := c.MovieUsecase.Search(ctx.Request.Context(), query, limit)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   query,
		"count":   len(movies),
		"results": movies,
	})
}
