package db

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cloudmo/cloudmo-api/internal/models"
)

// Connect 打开 GORM 数据库连接并完成表结构迁移。
// 返回的句柄由调用方持有并显式注入各仓库，不再暴露包级全局变量。
func Connect(dbPath string) (*gorm.DB, error) {
	// 确保数据库文件所在的目录存在
	dbDir := filepath.Dir(dbPath)
	if _, err := os.Stat(dbDir); os.IsNotExist(err) {
		log.Printf("Database directory %s does not exist, creating it...", dbDir)
		if mkErr := os.MkdirAll(dbDir, 0755); mkErr != nil {
			return nil, mkErr
		}
	}

	// 配置 GORM 日志级别
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // 慢 SQL 阈值
			LogLevel:                  logger.Warn, // Log level (Silent, Error, Warn, Info)
			IgnoreRecordNotFoundError: true,        // 忽略ErrRecordNotFound（记录未找到）错误
			Colorful:                  false,       // 禁用彩色打印
		},
	)

	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	// 设置数据库连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("Successfully connected to database using GORM: %s", dbPath)

	if err := Migrate(gormDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

// Migrate 自动迁移数据库表结构
func Migrate(gormDB *gorm.DB) error {
	err := gormDB.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.News{},
		&models.Doc{},
		&models.Contact{},
		&models.Setting{},
	)
	if err != nil {
		return err
	}
	log.Println("Database tables migrated successfully.")
	return nil
}

// Close 关闭 GORM 数据库连接 (通常在应用退出时调用)
func Close(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB for closing: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
		return
	}
	log.Println("Database connection closed.")
}
