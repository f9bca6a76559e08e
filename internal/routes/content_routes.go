package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
	"github.com/cloudmo/cloudmo-api/internal/models"
)

// SetupContentRoutes 设置文章/新闻/文档的公开与后台路由。
// 公开详情路由挂可选认证，携带有效令牌的请求会附带身份；
// 删除操作额外要求 admin 角色。
func SetupContentRoutes(router *gin.RouterGroup, articles *handlers.ArticleHandler, news *handlers.NewsHandler, docs *handlers.DocHandler) {
	optionalAuth := auth.OptionalJWTMiddleware()

	// 公开内容路由
	router.GET("/articles", articles.ListPublished)
	router.GET("/articles/:idOrSlug", optionalAuth, articles.GetDetail)
	router.GET("/news", news.ListPublished)
	router.GET("/news/:idOrSlug", optionalAuth, news.GetDetail)
	router.GET("/docs", docs.ListPublished)
	router.GET("/docs/:idOrSlug", optionalAuth, docs.GetDetail)

	// 后台内容管理路由
	admin := router.Group("/admin")
	admin.Use(auth.JWTMiddleware())
	adminOnly := auth.RequireRoles(models.RoleAdmin)
	{
		admin.GET("/articles", articles.ListAll)
		admin.POST("/articles", articles.Create)
		admin.PUT("/articles/:id", articles.Update)
		admin.DELETE("/articles/:id", adminOnly, articles.Delete)

		admin.GET("/news", news.ListAll)
		admin.POST("/news", news.Create)
		admin.PUT("/news/:id", news.Update)
		admin.DELETE("/news/:id", adminOnly, news.Delete)

		admin.GET("/docs", docs.ListAll)
		admin.POST("/docs", docs.Create)
		admin.PUT("/docs/:id", docs.Update)
		admin.DELETE("/docs/:id", adminOnly, docs.Delete)
	}
}
