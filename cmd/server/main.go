package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/directory_lookup/configs"
	_ "github.com/directory_lookup/docs" // swagger 文档注册
	"github.com/directory_lookup/internal/handlers"
	"github.com/directory_lookup/internal/repositories"
	"github.com/directory_lookup/internal/routes"
	"github.com/directory_lookup/internal/services"
	"github.com/directory_lookup/pkg/db"
	"github.com/directory_lookup/pkg/pagination"
)

// @title 企业目录查询服务 API
// @version 1.0
// @description 基于 LDAP 的目录查询服务，提供 JSON:API 风格的分页搜索与按 ID 查询。
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 加载配置并初始化认证数据库
	configs.LoadConfig()
	db.InitDB()
	defer db.CloseDB()

	// 组装目录查询链路：LDAP 仓库 -> 服务 -> 处理器
	directoryRepo := repositories.NewLDAPDirectoryRepository(repositories.LDAPConfig{
		URL:          configs.AppConfig.LDAPURL,
		BindDN:       configs.AppConfig.LDAPBindDN,
		BindPassword: configs.AppConfig.LDAPBindPassword,
		BaseDN:       configs.AppConfig.LDAPBaseDN,
	})
	directoryService := services.NewDirectoryService(directoryRepo)
	directoryHandler := handlers.NewDirectoryHandler(
		directoryService,
		pagination.Config{
			DefaultPageNumber: configs.AppConfig.DefaultPageNumber,
			DefaultPageSize:   configs.AppConfig.DefaultPageSize,
		},
		configs.AppConfig.APIBaseURL,
	)

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(router, directoryHandler)

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
