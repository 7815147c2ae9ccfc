package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
	Secret       string
	ExpiryHour   int
}

func NewLoginController(loginUsecase domain.LoginUsecase, secret string, expiryHour int) *LoginController {
	return &LoginController{
		LoginUsecase: loginUsecase,
		Secret:       secret,
		ExpiryHour:   expiryHour,
	}
}

// Login POST /login
func (c *LoginController) Login(ctx *gin.Context) {
	var request struct {
		Name     string `form:"name" json:"name" binding:"required"`
		Password string `form:"password" json:"password" binding:"required"`
	}

	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", "name与password参数都是必需的")
		return
	}

	user, err := c.LoginUsecase.GetUserByName(ctx.Request.Context(), request.Name)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	if user == nil {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "用户名或密码错误")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "用户名或密码错误")
		return
	}

	accessToken, err := c.LoginUsecase.CreateAccessToken(user, c.Secret, c.ExpiryHour)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"access_token": accessToken,
	})
}
