package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

// ErrInvalidCredentials 表示用户名或密码错误。
// 用户不存在与密码错误共用此错误，避免暴露账号是否存在。
var ErrInvalidCredentials = errors.New("用户名或密码错误")

// ErrAccountDisabled 表示账户已被禁用
var ErrAccountDisabled = errors.New("账户已被禁用")

// ErrOldPasswordMismatch 表示原密码校验失败
var ErrOldPasswordMismatch = errors.New("原密码错误")

// ErrPasswordTooShort 表示新密码长度不足
var ErrPasswordTooShort = errors.New("新密码长度不能少于6位")

// MinPasswordLength 是修改密码时的最小长度要求
const MinPasswordLength = 6

// HashPassword 使用 bcrypt 生成密码哈希
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword 校验明文密码与哈希是否匹配
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// AuthService 定义了认证服务的接口
type AuthService interface {
	// Login 校验凭证并签发令牌，identifier 可以是用户名或邮箱
	Login(identifier, password string) (string, *models.User, error)
	GetCurrentUser(userID uint) (*models.User, error)
	ChangePassword(userID uint, oldPassword, newPassword string) error
}

// authService 是 AuthService 的实现
type authService struct {
	users repositories.UserRepository
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Login 处理登录：查找用户、检查状态、校验密码、签发令牌
func (s *authService) Login(identifier, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if user.Status != models.UserStatusEnabled {
		return "", nil, ErrAccountDisabled
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetCurrentUser 返回令牌身份对应的用户记录
func (s *authService) GetCurrentUser(userID uint) (*models.User, error) {
	return s.users.FindByID(userID)
}

// ChangePassword 校验原密码并写入新密码的哈希
func (s *authService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}

	if !VerifyPassword(oldPassword, user.PasswordHash) {
		return ErrOldPasswordMismatch
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(user.ID, hashed)
}
