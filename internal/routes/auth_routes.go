package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/directory_lookup/internal/auth"
	"github.com/directory_lookup/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup) {
	apiV1 := router.Group("/v1")
	{
		// 公共认证路由组 (登录)
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", handlers.Login)
		}

		// 受保护的认证路由组 (登出)
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", handlers.LogoutHandler)
		}
	}
}
