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

// ContactHandler 封装了联系表单相关的 HTTP 处理逻辑
type ContactHandler struct {
	service services.ContactService
}

// NewContactHandler 创建一个新的 ContactHandler 实例
func NewContactHandler(service services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// ContactStatusRequest 定义了更新联系记录状态的请求
type ContactStatusRequest struct {
	Status string `json:"status"`
}

// submittedContact 是公开提交成功后返回的数据
type submittedContact struct {
	ID uint `json:"id"`
}

// Submit godoc
// @Summary 提交联系表单（公开）
// @Tags contact
// @Accept  json
// @Produce  json
// @Param contact body models.ContactInput true "联系信息"
// @Success 201 {object} utils.APIResponse{data=submittedContact} "提交成功"
// @Failure 400 {object} utils.APIResponse "必填项缺失或邮箱格式不正确"
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	contact, err := h.service.Submit(input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrContactFieldsRequired):
			utils.RespondValidationError(c, services.ErrContactFieldsRequired.Error())
		case errors.Is(err, services.ErrInvalidContactEmail):
			utils.RespondValidationError(c, services.ErrInvalidContactEmail.Error())
		default:
			utils.RespondInternalServerError(c, "提交失败，请稍后重试", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, submittedContact{ID: contact.ID}, "提交成功，我们会尽快与您联系")
}

// List godoc
// @Summary 获取联系记录列表（管理员）
// @Tags admin/contacts
// @Security BearerAuth
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param status query string false "状态筛选 (pending/processing/replied/closed)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	filter := repositories.ContactListFilter{
		Pagination: paginationFromQuery(c),
		Status:     c.Query("status"),
	}

	contacts, total, err := h.service.List(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取联系记录失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(contacts, total, filter.Pagination), "")
}

// GetByID godoc
// @Summary 获取联系记录详情（管理员）
// @Tags admin/contacts
// @Security BearerAuth
// @Produce  json
// @Param id path int true "记录 ID"
// @Success 200 {object} utils.APIResponse{data=models.Contact}
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "记录不存在"
// @Router /admin/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		return
	}

	contact, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "获取记录详情失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, contact, "")
}

// UpdateStatus godoc
// @Summary 更新联系记录状态（管理员）
// @Description repliedAt 只在首次转为 replied 时记录
// @Tags admin/contacts
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "记录 ID"
// @Param payload body ContactStatusRequest true "目标状态"
// @Success 200 {object} utils.APIResponse{data=models.Contact} "状态更新成功"
// @Failure 400 {object} utils.APIResponse "无效的状态值"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "记录不存在"
// @Router /admin/contacts/{id} [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		return
	}

	var req ContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	contact, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidContactStatus):
			utils.RespondValidationError(c, services.ErrInvalidContactStatus.Error())
		case errors.Is(err, repositories.ErrContactNotFound):
			utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		default:
			utils.RespondInternalServerError(c, "更新状态失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, contact, "状态更新成功")
}

// Delete godoc
// @Summary 删除联系记录（管理员）
// @Tags admin/contacts
// @Security BearerAuth
// @Produce  json
// @Param id path int true "记录 ID"
// @Success 200 {object} utils.APIResponse "删除成功"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 403 {object} utils.APIResponse "权限不足"
// @Failure 404 {object} utils.APIResponse "记录不存在"
// @Router /admin/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrContactNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrContactNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "删除失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "删除成功")
}
