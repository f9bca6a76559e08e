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

// DocHandler 封装了文档相关的 HTTP 处理逻辑
type DocHandler struct {
	service services.DocService
}

// NewDocHandler 创建一个新的 DocHandler 实例
func NewDocHandler(service services.DocService) *DocHandler {
	return &DocHandler{service: service}
}

// ListPublished godoc
// @Summary 获取文档列表（公开）
// @Description 返回全部已发布文档，按 (sortOrder asc, createdAt desc) 排序，前端据 parentId 组装树形目录
// @Tags docs
// @Produce  json
// @Param category query string false "分类筛选"
// @Success 200 {object} utils.APIResponse{data=[]models.Doc}
// @Router /docs [get]
func (h *DocHandler) ListPublished(c *gin.Context) {
	docs, err := h.service.ListPublishedTree(c.Query("category"))
	if err != nil {
		utils.RespondInternalServerError(c, "获取文档列表失败", err.Error())
		return
	}
	if docs == nil {
		docs = []models.Doc{}
	}

	utils.RespondSuccess(c, http.StatusOK, docs, "")
}

// GetDetail godoc
// @Summary 获取文档详情（公开）
// @Tags docs
// @Produce  json
// @Param idOrSlug path string true "文档 ID 或 slug"
// @Success 200 {object} utils.APIResponse{data=models.Doc}
// @Failure 404 {object} utils.APIResponse "文档不存在"
// @Router /docs/{idOrSlug} [get]
func (h *DocHandler) GetDetail(c *gin.Context) {
	doc, err := h.service.GetPublishedDetail(c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, repositories.ErrDocNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrDocNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "获取文档详情失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, doc, "")
}

// ListAll godoc
// @Summary 获取所有文档（管理员）
// @Tags admin/docs
// @Security BearerAuth
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param category query string false "分类筛选"
// @Param status query string false "状态筛选 (draft/published)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/docs [get]
func (h *DocHandler) ListAll(c *gin.Context) {
	filter := repositories.DocListFilter{
		Pagination: paginationFromQuery(c),
		Category:   c.Query("category"),
		Status:     c.Query("status"),
	}

	docs, total, err := h.service.ListAll(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取文档列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(docs, total, filter.Pagination), "")
}

// Create godoc
// @Summary 创建文档（管理员）
// @Tags admin/docs
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param doc body models.DocInput true "文档内容"
// @Success 201 {object} utils.APIResponse{data=models.Doc} "文档创建成功"
// @Failure 400 {object} utils.APIResponse "标题内容缺失或 slug 冲突"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/docs [post]
func (h *DocHandler) Create(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	var input models.DocInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	doc, err := h.service.Create(claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleContentRequired):
			utils.RespondValidationError(c, services.ErrTitleContentRequired.Error())
		case errors.Is(err, repositories.ErrDocSlugExists):
			utils.RespondValidationError(c, repositories.ErrDocSlugExists.Error())
		default:
			utils.RespondInternalServerError(c, "创建文档失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, doc, "文档创建成功")
}

// Update godoc
// @Summary 更新文档（管理员）
// @Description 拒绝将 parentId 指向文档自身
// @Tags admin/docs
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "文档 ID"
// @Param doc body models.DocInput true "更新内容"
// @Success 200 {object} utils.APIResponse{data=models.Doc} "文档更新成功"
// @Failure 400 {object} utils.APIResponse "slug 冲突或 parentId 非法"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "文档不存在"
// @Router /admin/docs/{id} [put]
func (h *DocHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrDocNotFound.Error())
		return
	}

	var input models.DocInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	doc, err := h.service.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDocNotFound):
			utils.RespondNotFoundError(c, repositories.ErrDocNotFound.Error())
		case errors.Is(err, repositories.ErrDocSlugExists):
			utils.RespondValidationError(c, repositories.ErrDocSlugExists.Error())
		case errors.Is(err, services.ErrDocSelfParent):
			utils.RespondValidationError(c, services.ErrDocSelfParent.Error())
		default:
			utils.RespondInternalServerError(c, "更新文档失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, doc, "文档更新成功")
}

// Delete godoc
// @Summary 删除文档（管理员）
// @Tags admin/docs
// @Security BearerAuth
// @Produce  json
// @Param id path int true "文档 ID"
// @Success 200 {object} utils.APIResponse "文档删除成功"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 403 {object} utils.APIResponse "权限不足"
// @Failure 404 {object} utils.APIResponse "文档不存在"
// @Router /admin/docs/{id} [delete]
func (h *DocHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrDocNotFound.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrDocNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrDocNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "删除文档失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "文档删除成功")
}
