package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
	"github.com/cloudmo/cloudmo-api/internal/models"
)

// SetupSettingRoutes 设置站点设置相关路由
func SetupSettingRoutes(router *gin.RouterGroup, h *handlers.SettingHandler) {
	// GET /api/settings 公开设置，仅 general/seo 分组
	router.GET("/settings", h.GetPublicSettings)

	// 后台设置管理
	admin := router.Group("/admin/settings")
	admin.Use(auth.JWTMiddleware())
	{
		admin.GET("", h.GetAllSettings)
		admin.PUT("", h.UpdateSettings)
		admin.DELETE("/:key", auth.RequireRoles(models.RoleAdmin), h.DeleteSetting)
	}
}
