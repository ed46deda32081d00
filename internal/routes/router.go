package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/directory_lookup/internal/handlers"
)

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, directoryHandler *handlers.DirectoryHandler) {
	api := router.Group("/api")
	SetupAuthRoutes(api)
	SetupDirectoryRoutes(api, directoryHandler)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
