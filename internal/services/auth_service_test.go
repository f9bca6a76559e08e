package services

import (
	"errors"
	"testing"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

// seedUser 创建一个测试用户并返回其记录
func seedUser(t *testing.T, repo repositories.UserRepository, username, password, status string) *models.User {
	t.Helper()
	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword 返回错误: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
		Status:       status,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func TestAuthLogin(t *testing.T) {
	repo := repositories.NewGormUserRepository(newTestDB(t))
	svc := NewAuthService(repo)

	seedUser(t, repo, "admin", "admin123", models.UserStatusEnabled)
	seedUser(t, repo, "frozen", "frozen123", models.UserStatusDisabled)

	t.Run("用户名登录成功", func(t *testing.T) {
		token, user, err := svc.Login("admin", "admin123")
		if err != nil {
			t.Fatalf("Login 返回错误: %v", err)
		}
		if token == "" {
			t.Error("登录成功应返回令牌")
		}
		if user.Username != "admin" {
			t.Errorf("Username = %q, want admin", user.Username)
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			t.Fatalf("签发的令牌无法通过校验: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("令牌中的 UserID = %d, want %d", claims.UserID, user.ID)
		}
	})

	t.Run("邮箱登录成功", func(t *testing.T) {
		if _, _, err := svc.Login("admin@example.com", "admin123"); err != nil {
			t.Errorf("邮箱登录返回错误: %v", err)
		}
	})

	t.Run("密码错误与用户不存在返回同一错误", func(t *testing.T) {
		_, _, errWrongPwd := svc.Login("admin", "wrong")
		_, _, errNoUser := svc.Login("nobody", "whatever")
		if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
			t.Errorf("密码错误 err = %v, want ErrInvalidCredentials", errWrongPwd)
		}
		if !errors.Is(errNoUser, ErrInvalidCredentials) {
			t.Errorf("用户不存在 err = %v, want ErrInvalidCredentials", errNoUser)
		}
	})

	t.Run("禁用账户即使密码正确也拒绝", func(t *testing.T) {
		if _, _, err := svc.Login("frozen", "frozen123"); !errors.Is(err, ErrAccountDisabled) {
			t.Errorf("err = %v, want ErrAccountDisabled", err)
		}
	})
}

func TestAuthChangePassword(t *testing.T) {
	repo := repositories.NewGormUserRepository(newTestDB(t))
	svc := NewAuthService(repo)

	user := seedUser(t, repo, "admin", "admin123", models.UserStatusEnabled)

	t.Run("新密码过短报错", func(t *testing.T) {
		if err := svc.ChangePassword(user.ID, "admin123", "12345"); !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("err = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("原密码错误报错", func(t *testing.T) {
		if err := svc.ChangePassword(user.ID, "wrong", "newpass123"); !errors.Is(err, ErrOldPasswordMismatch) {
			t.Errorf("err = %v, want ErrOldPasswordMismatch", err)
		}
	})

	t.Run("修改成功后新密码生效", func(t *testing.T) {
		if err := svc.ChangePassword(user.ID, "admin123", "newpass123"); err != nil {
			t.Fatalf("ChangePassword 返回错误: %v", err)
		}
		if _, _, err := svc.Login("admin", "admin123"); !errors.Is(err, ErrInvalidCredentials) {
			t.Error("旧密码不应再能登录")
		}
		if _, _, err := svc.Login("admin", "newpass123"); err != nil {
			t.Errorf("新密码登录返回错误: %v", err)
		}
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword 返回错误: %v", err)
	}
	if hashed == "secret123" {
		t.Error("哈希结果不应等于明文")
	}
	if !VerifyPassword("secret123", hashed) {
		t.Error("正确密码校验失败")
	}
	if VerifyPassword("wrong", hashed) {
		t.Error("错误密码不应通过校验")
	}
}
