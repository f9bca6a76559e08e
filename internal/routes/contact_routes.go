package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
	"github.com/cloudmo/cloudmo-api/internal/models"
)

// SetupContactRoutes 设置联系表单相关路由
func SetupContactRoutes(router *gin.RouterGroup, h *handlers.ContactHandler) {
	// POST /api/contact 公开提交
	router.POST("/contact", h.Submit)

	// 后台联系记录管理
	admin := router.Group("/admin/contacts")
	admin.Use(auth.JWTMiddleware())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.GetByID)
		admin.PUT("/:id", h.UpdateStatus)
		admin.DELETE("/:id", auth.RequireRoles(models.RoleAdmin), h.Delete)
	}
}
