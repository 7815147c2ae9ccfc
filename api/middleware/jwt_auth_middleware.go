package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/CineSong/domain/domain_util"
)

// JwtAuthMiddleware 管理端路由的Bearer令牌校验
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.Request.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "缺少有效的Authorization头",
			})
			return
		}

		authorized, err := domain_util.IsAuthorized(parts[1], secret)
		if err != nil || !authorized {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "令牌无效或已过期",
			})
			return
		}

		ctx.Next()
	}
}
