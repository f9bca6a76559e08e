package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cloudmo/cloudmo-api/docs" // swagger 文档注册
	"github.com/cloudmo/cloudmo-api/internal/handlers"
)

// Handlers 汇集所有资源的处理器，由 main 构造后注入
type Handlers struct {
	Auth    *handlers.AuthHandler
	Article *handlers.ArticleHandler
	News    *handlers.NewsHandler
	Doc     *handlers.DocHandler
	Contact *handlers.ContactHandler
	Setting *handlers.SettingHandler
}

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, h *Handlers) {
	// 健康检查与 API 文档不挂在 /api 前缀下
	router.GET("/health", handlers.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	SetupAuthRoutes(api, h.Auth)
	SetupContentRoutes(api, h.Article, h.News, h.Doc)
	SetupContactRoutes(api, h.Contact)
	SetupSettingRoutes(api, h.Setting)
}
