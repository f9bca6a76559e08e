package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// identityKey 是身份声明在 Gin 上下文中的存储键
const identityKey = "auth.claims"

// CurrentUser 从 Gin 上下文取出当前请求的身份声明。
// 未认证的请求返回 (nil, false)。
func CurrentUser(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}

// bearerToken 从 Authorization 请求头中提取 Bearer 令牌
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

// JWTMiddleware 是必须认证的Gin中间件。
// 请求头缺失、格式错误或令牌无效时统一返回 401；
// 校验通过后将身份声明附加到上下文并放行。
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			utils.RespondUnauthorizedError(c)
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			utils.RespondUnauthorizedError(c)
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// OptionalJWTMiddleware 是可选认证的Gin中间件。
// 携带有效令牌时附加身份，其余情况不拒绝请求，始终放行。
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := ParseToken(tokenString); err == nil {
				c.Set(identityKey, claims)
			}
		}
		c.Next()
	}
}

// RequireRoles 返回一个角色校验中间件。
// 未认证返回 401；已认证但角色不在允许集合内返回 403。
// 需要置于 JWTMiddleware 之后使用。
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok {
			utils.RespondUnauthorizedError(c)
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			utils.RespondForbiddenError(c, "权限不足")
			return
		}
		c.Next()
	}
}
