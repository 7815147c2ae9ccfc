package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/api/controller"
	"github.com/Super-Badmen-Viper/CineSong/bootstrap"
	"github.com/Super-Badmen-Viper/CineSong/mongo"
	"github.com/Super-Badmen-Viper/CineSong/repository"
	"github.com/Super-Badmen-Viper/CineSong/usecase"
)

func NewLoginRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	userRepo := repository.NewUserRepository(db)
	loginUsecase := usecase.NewLoginUsecase(userRepo, timeout)
	loginCtrl := controller.NewLoginController(loginUsecase, env.AccessTokenSecret, env.AccessTokenExpiryHour)

	// POST /login
	group.POST("/login", loginCtrl.Login)
}
