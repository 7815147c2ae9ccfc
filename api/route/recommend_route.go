package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/api/controller"
	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/mongo"
	"github.com/Super-Badmen-Viper/CineSong/repository"
	"github.com/Super-Badmen-Viper/CineSong/usecase"
)

func NewRecommendRouter(
	timeout time.Duration,
	db mongo.Database,
	poster domain.PosterProvider,
	publicGroup *gin.RouterGroup,
	adminGroup *gin.RouterGroup,
) {
	movieRepo := repository.NewMovieRepository(db)
	recommendUsecase := usecase.NewRecommendUsecase(movieRepo, poster, timeout)
	recommendCtrl := controller.NewRecommendController(recommendUsecase)

	recommendGroup := publicGroup.Group("/recommend")
	{
		// GET /recommend?movie_id=123&top_n=8
		recommendGroup.GET("", recommendCtrl.GetRecommendations)

		// GET /recommend/status
		recommendGroup.GET("/status", recommendCtrl.GetStatus)
	}

	// POST /admin/recommend/reinitialize（需要Bearer令牌）
	adminGroup.POST("/recommend/reinitialize", recommendCtrl.Reinitialize)
}
