package services

import (
	"log"

	"github.com/cloudmo/cloudmo-api/configs"
	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

// defaultSettings 是首次启动时写入的站点默认设置
var defaultSettings = []models.Setting{
	{Key: "site_name", Value: "墨云科技", Group: "general"},
	{Key: "site_description", Value: "人工智能技术前沿开发者", Group: "general"},
	{Key: "site_keywords", Value: "AI,人工智能,软件开发,墨云科技", Group: "seo"},
	{Key: "contact_email", Value: "contact@cloudmo.tech", Group: "general"},
	{Key: "copyright", Value: "© 2024 墨云科技 CloudMo Technology", Group: "general"},
}

// BootstrapService 负责进程启动时的一次性初始化
type BootstrapService struct {
	users    repositories.UserRepository
	settings repositories.SettingRepository
}

// NewBootstrapService 创建一个新的 BootstrapService 实例
func NewBootstrapService(users repositories.UserRepository, settings repositories.SettingRepository) *BootstrapService {
	return &BootstrapService{users: users, settings: settings}
}

// Run 执行初始化：创建默认管理员（仅当库中无任何用户）并补齐默认设置。
// 幂等——重复启动不会覆盖已有数据。
func (s *BootstrapService) Run() error {
	if err := s.ensureAdminUser(); err != nil {
		return err
	}
	return s.ensureDefaultSettings()
}

// ensureAdminUser 在零用户时创建配置中指定的默认管理员账号
func (s *BootstrapService) ensureAdminUser() error {
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := HashPassword(configs.AppConfig.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     configs.AppConfig.AdminUsername,
		Email:        configs.AppConfig.AdminEmail,
		PasswordHash: hashed,
		Nickname:     "管理员",
		Role:         models.RoleAdmin,
		Status:       models.UserStatusEnabled,
	}
	if err := s.users.Create(admin); err != nil {
		return err
	}

	log.Printf("默认管理员账号已创建，用户名: %s", admin.Username)
	return nil
}

// ensureDefaultSettings 插入缺失的默认设置项，不覆盖已有值
func (s *BootstrapService) ensureDefaultSettings() error {
	if err := s.settings.SeedDefaults(defaultSettings); err != nil {
		return err
	}
	log.Println("默认设置已初始化。")
	return nil
}
