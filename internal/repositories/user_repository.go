package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cloudmo/cloudmo-api/internal/models"
)

// ErrUserNotFound 表示用户未找到
var ErrUserNotFound = errors.New("用户不存在")

// UserRepository 定义了用户数据仓库的接口
type UserRepository interface {
	// FindByUsernameOrEmail 按用户名或邮箱查找用户（登录入口允许两者）
	FindByUsernameOrEmail(identifier string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Count() (int64, error)
	Create(user *models.User) error
	UpdatePasswordHash(id uint, passwordHash string) error
}

// gormUserRepository 是 UserRepository 的 GORM 实现
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository 创建一个新的 gormUserRepository 实例
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// FindByUsernameOrEmail 按用户名或邮箱查找用户
func (r *gormUserRepository) FindByUsernameOrEmail(identifier string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID 按主键查找用户
func (r *gormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Count 返回用户总数
func (r *gormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建用户记录
func (r *gormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdatePasswordHash 更新用户的密码哈希
func (r *gormUserRepository) UpdatePasswordHash(id uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
