package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/cloudmo/cloudmo-api/configs"
	"github.com/cloudmo/cloudmo-api/internal/models"
)

func TestMain(m *testing.M) {
	configs.LoadConfig()
	m.Run()
}

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42, "admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken 返回错误: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 返回错误: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
	if claims.Issuer != "cloudmo-api" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "cloudmo-api")
	}
}

func TestParseTokenInvalid(t *testing.T) {
	valid, err := GenerateToken(1, "user", models.RoleUser)
	if err != nil {
		t.Fatalf("GenerateToken 返回错误: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"空字符串", ""},
		{"非JWT格式", "not-a-jwt"},
		{"签名被篡改", valid[:len(valid)-2] + "xx"},
		{"载荷被篡改", tamperPayload(valid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseToken(%q) err = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}

// tamperPayload 替换 JWT 中段的若干字符，模拟载荷被篡改
func tamperPayload(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || len(parts[1]) < 4 {
		return token
	}
	parts[1] = "AAAA" + parts[1][4:]
	return strings.Join(parts, ".")
}
