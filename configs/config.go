package configs

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	ServerPort    string
	Env           string
	JWTSecret     string
	JWTExpires    time.Duration
	DBPath        string
	AdminUsername string
	AdminPassword string
	AdminEmail    string
	CORSOrigin    string
}

const (
	envServerPortKey    = "SERVER_PORT"
	envAppEnvKey        = "APP_ENV"
	envJWTSecretKey     = "JWT_SECRET"
	envJWTExpiresKey    = "JWT_EXPIRES_HOURS"
	envDBPathKey        = "SQLITE_DB_PATH"
	envAdminUsernameKey = "ADMIN_USERNAME"
	envAdminPasswordKey = "ADMIN_PASSWORD"
	envAdminEmailKey    = "ADMIN_EMAIL"
	envCORSOriginKey    = "CORS_ORIGIN"

	defaultServerPort    = "3000"
	defaultJWTSecret     = "cloudmo-jwt-secret-key"
	defaultJWTExpires    = 7 * 24 * time.Hour // 默认7天过期
	defaultDBPath        = "data/cloudmo.db"
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@cloudmo.tech"
	defaultCORSOrigin    = "http://localhost:5173"
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		// 尝试加载 .env 文件，不存在时直接使用环境变量
		if err := godotenv.Load(); err != nil {
			log.Println("信息: 未找到 .env 文件，使用当前环境变量。")
		}

		jwtSecret := getEnv(envJWTSecretKey, defaultJWTSecret)
		if jwtSecret == defaultJWTSecret {
			log.Printf("警告: %s 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。", envJWTSecretKey)
		}

		jwtExpires := defaultJWTExpires
		if hoursStr := os.Getenv(envJWTExpiresKey); hoursStr != "" {
			if hours, err := strconv.Atoi(hoursStr); err == nil && hours > 0 {
				jwtExpires = time.Duration(hours) * time.Hour
			} else {
				log.Printf("警告: %s 的值 %q 无效，使用默认过期时间 %v。", envJWTExpiresKey, hoursStr, defaultJWTExpires)
			}
		}

		AppConfig = Configuration{
			ServerPort:    getEnv(envServerPortKey, defaultServerPort),
			Env:           getEnv(envAppEnvKey, "development"),
			JWTSecret:     jwtSecret,
			JWTExpires:    jwtExpires,
			DBPath:        getEnv(envDBPathKey, defaultDBPath),
			AdminUsername: getEnv(envAdminUsernameKey, defaultAdminUsername),
			AdminPassword: getEnv(envAdminPasswordKey, defaultAdminPassword),
			AdminEmail:    getEnv(envAdminEmailKey, defaultAdminEmail),
			CORSOrigin:    getEnv(envCORSOriginKey, defaultCORSOrigin),
		}

		log.Println("应用配置已加载。")
	})
}

// IsProduction 判断当前是否为生产环境
func IsProduction() bool {
	return AppConfig.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
