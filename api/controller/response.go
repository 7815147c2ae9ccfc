package controller

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应：{"success":false,"code":...,"message":...}
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"success": false,
		"code":    code,
		"message": message,
	})
}
