package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/directory_lookup/internal/auth"
	"github.com/directory_lookup/internal/handlers"
)

// SetupDirectoryRoutes 设置目录查询相关路由，全部位于JWT中间件之后
func SetupDirectoryRoutes(router *gin.RouterGroup, h *handlers.DirectoryHandler) {
	apiV1 := router.Group("/v1")

	directoryGroup := apiV1.Group("/directory")
	directoryGroup.Use(auth.JWTMiddleware())
	{
		// GET /api/v1/directory?q=...&type=...&page[number]=...&page[size]=...
		directoryGroup.GET("", h.SearchDirectory)
		// GET /api/v1/directory/:id
		directoryGroup.GET("/:id", h.GetEntryByID)
	}
}
