package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/internal/services"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// SettingHandler 封装了站点设置相关的 HTTP 处理逻辑
type SettingHandler struct {
	service services.SettingService
}

// NewSettingHandler 创建一个新的 SettingHandler 实例
func NewSettingHandler(service services.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

// GetPublicSettings godoc
// @Summary 获取公开设置（公开）
// @Description 只返回 general/seo 分组的设置项，扁平键值对格式
// @Tags settings
// @Produce  json
// @Success 200 {object} utils.APIResponse
// @Router /settings [get]
func (h *SettingHandler) GetPublicSettings(c *gin.Context) {
	settingsMap, err := h.service.GetPublicSettings()
	if err != nil {
		utils.RespondInternalServerError(c, "获取设置失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, settingsMap, "")
}

// GetAllSettings godoc
// @Summary 获取所有设置（管理员）
// @Description 返回按分组嵌套的键值映射
// @Tags admin/settings
// @Security BearerAuth
// @Produce  json
// @Param group query string false "分组筛选"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/settings [get]
func (h *SettingHandler) GetAllSettings(c *gin.Context) {
	grouped, err := h.service.GetAllSettings(c.Query("group"))
	if err != nil {
		utils.RespondInternalServerError(c, "获取设置失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, grouped, "")
}

// UpdateSettings godoc
// @Summary 批量更新设置（管理员）
// @Description 整批在一个事务中执行 upsert，任一条失败则全部回滚
// @Tags admin/settings
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param settings body []models.SettingInput true "设置条目数组"
// @Success 200 {object} utils.APIResponse "设置保存成功"
// @Failure 400 {object} utils.APIResponse "无效的设置数据"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/settings [put]
func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var inputs []models.SettingInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		utils.RespondValidationError(c, "无效的设置数据", err.Error())
		return
	}

	if err := h.service.UpdateBatch(inputs); err != nil {
		if errors.Is(err, services.ErrEmptySettingsBatch) {
			utils.RespondValidationError(c, services.ErrEmptySettingsBatch.Error())
		} else {
			utils.RespondInternalServerError(c, "保存设置失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "设置保存成功")
}

// DeleteSetting godoc
// @Summary 删除设置项（管理员）
// @Tags admin/settings
// @Security BearerAuth
// @Produce  json
// @Param key path string true "设置项 key"
// @Success 200 {object} utils.APIResponse "删除成功"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 403 {object} utils.APIResponse "权限不足"
// @Failure 404 {object} utils.APIResponse "设置项不存在"
// @Router /admin/settings/{key} [delete]
func (h *SettingHandler) DeleteSetting(c *gin.Context) {
	key := c.Param("key")

	if err := h.service.DeleteByKey(key); err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrSettingNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "删除失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "删除成功")
}
