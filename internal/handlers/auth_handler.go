package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/internal/services"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// AuthHandler 封装了认证相关的 HTTP 处理逻辑
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest 定义了登录请求的 JSON 结构体，username 字段也接受邮箱
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse 定义了登录成功的响应数据
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// ChangePasswordRequest 定义了修改密码请求的 JSON 结构体
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Login godoc
// @Summary 用户登录
// @Description 以用户名或邮箱加密码登录，返回 JWT 与用户摘要
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.APIResponse{data=LoginResponse} "登录成功"
// @Failure 400 {object} utils.APIResponse "缺少用户名或密码"
// @Failure 401 {object} utils.APIResponse "用户名或密码错误"
// @Failure 403 {object} utils.APIResponse "账户已被禁用"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		utils.RespondValidationError(c, "请输入用户名和密码")
		return
	}

	token, user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.RespondUnauthorizedError(c, services.ErrInvalidCredentials.Error())
		case errors.Is(err, services.ErrAccountDisabled):
			utils.RespondForbiddenError(c, services.ErrAccountDisabled.Error())
		default:
			utils.RespondInternalServerError(c, "登录失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, LoginResponse{Token: token, User: user}, "登录成功")
}

// GetCurrentUser godoc
// @Summary 获取当前用户信息
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.APIResponse{data=models.User}
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "用户不存在"
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	user, err := h.service.GetCurrentUser(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrUserNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "获取用户信息失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, user, "")
}

// ChangePassword godoc
// @Summary 修改密码
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param payload body ChangePasswordRequest true "原密码与新密码"
// @Success 200 {object} utils.APIResponse "密码修改成功"
// @Failure 400 {object} utils.APIResponse "原密码错误或新密码不符合要求"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OldPassword == "" || req.NewPassword == "" {
		utils.RespondValidationError(c, "请输入原密码和新密码")
		return
	}

	err := h.service.ChangePassword(claims.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			utils.RespondValidationError(c, services.ErrPasswordTooShort.Error())
		case errors.Is(err, services.ErrOldPasswordMismatch):
			utils.RespondValidationError(c, services.ErrOldPasswordMismatch.Error())
		case errors.Is(err, repositories.ErrUserNotFound):
			utils.RespondNotFoundError(c, repositories.ErrUserNotFound.Error())
		default:
			utils.RespondInternalServerError(c, "修改密码失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "密码修改成功")
}

// Logout godoc
// @Summary 退出登录
// @Description JWT 无状态，服务端不维护注销列表，客户端删除令牌即可
// @Tags auth
// @Produce  json
// @Success 200 {object} utils.APIResponse "退出成功"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, nil, "退出成功")
}
