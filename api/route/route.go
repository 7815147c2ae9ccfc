package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/api/middleware"
	"github.com/Super-Badmen-Viper/CineSong/bootstrap"
	"github.com/Super-Badmen-Viper/CineSong/domain"
	"github.com/Super-Badmen-Viper/CineSong/mongo"
)

// Setup 注册全部HTTP路由
func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	poster domain.PosterProvider,
	engine *gin.Engine,
) {
	publicRouter := engine.Group("/api")
	NewLoginRouter(env, timeout, db, publicRouter)
	NewMovieRouter(timeout, db, poster, publicRouter)

	adminRouter := engine.Group("/api/admin")
	adminRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	NewRecommendRouter(timeout, db, poster, publicRouter, adminRouter)
}
