package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup, h *handlers.AuthHandler) {
	// 公共认证路由 (登录/登出)
	public := router.Group("/auth")
	{
		// POST /api/auth/login
		public.POST("/login", h.Login)
		// POST /api/auth/logout
		public.POST("/logout", h.Logout)
	}

	// 受保护的认证路由 (当前用户/改密)
	protected := router.Group("/auth")
	protected.Use(auth.JWTMiddleware())
	{
		// GET /api/auth/me
		protected.GET("/me", h.GetCurrentUser)
		// PUT /api/auth/password
		protected.PUT("/password", h.ChangePassword)
	}
}
