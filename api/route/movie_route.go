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

func NewMovieRouter(
	timeout time.Duration,
	db mongo.Database,
	poster domain.PosterProvider,
	group *gin.RouterGroup,
) {
	movieRepo := repository.NewMovieRepository(db)
	movieUsecase := usecase.NewMovieUsecase(movieRepo, poster, timeout)
	movieCtrl := controller.NewMovieController(movieUsecase)

	movieGroup := group.Group("/movies")
	{
		// GET /movies?page=1&limit=20
		movieGroup.GET("", movieCtrl.ListMovies)

		// GET /movies/search?q=xxx&limit=10
		movieGroup.GET("/search", movieCtrl.SearchMovies)

		// GET /movies/:id
		movieGroup.GET("/:id", movieCtrl.GetMovieDetail)
	}
}
