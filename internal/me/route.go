package me

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/conduit/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup) {
	handler := &MeHandler{}

	// 需要认证的接口
	r.GET("/user", middleware.JWTAuth(), handler.GetCurrentUser)
}
