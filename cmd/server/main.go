package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/configs"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/internal/routes"
	"github.com/cloudmo/cloudmo-api/internal/services"
	"github.com/cloudmo/cloudmo-api/pkg/db"
)

// @title CloudMo API
// @version 1.0.0
// @description 墨云科技官网与内容管理后台 API
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configs.LoadConfig()
	cfg := configs.AppConfig

	// 初始化数据库连接并自动迁移
	gormDB, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer db.Close(gormDB)

	// 仓库层
	userRepo := repositories.NewGormUserRepository(gormDB)
	articleRepo := repositories.NewGormArticleRepository(gormDB)
	newsRepo := repositories.NewGormNewsRepository(gormDB)
	docRepo := repositories.NewGormDocRepository(gormDB)
	contactRepo := repositories.NewGormContactRepository(gormDB)
	settingRepo := repositories.NewGormSettingRepository(gormDB)

	// 服务层
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	newsService := services.NewNewsService(newsRepo)
	docService := services.NewDocService(docRepo)
	contactService := services.NewContactService(contactRepo)
	settingService := services.NewSettingService(settingRepo)

	// 首次启动时创建默认管理员账户与默认站点设置
	bootstrap := services.NewBootstrapService(userRepo, settingRepo)
	if err := bootstrap.Run(); err != nil {
		log.Fatalf("初始化默认数据失败: %v", err)
	}

	if configs.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 跨域配置：允许前端站点携带认证头访问
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(router, &routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Article: handlers.NewArticleHandler(articleService),
		News:    handlers.NewNewsHandler(newsService),
		Doc:     handlers.NewDocHandler(docService),
		Contact: handlers.NewContactHandler(contactService),
		Setting: handlers.NewSettingHandler(settingService),
	})

	log.Printf("Server starting on port %s...", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
