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

// NewsHandler 封装了新闻相关的 HTTP 处理逻辑
type NewsHandler struct {
	service services.NewsService
}

// NewNewsHandler 创建一个新的 NewsHandler 实例
func NewNewsHandler(service services.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// ListPublished godoc
// @Summary 获取新闻列表（公开）
// @Tags news
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param category query string false "分类筛选"
// @Param keyword query string false "关键词，匹配标题或摘要"
// @Success 200 {object} utils.APIResponse
// @Router /news [get]
func (h *NewsHandler) ListPublished(c *gin.Context) {
	filter := repositories.NewsListFilter{
		Pagination: paginationFromQuery(c),
		Category:   c.Query("category"),
		Keyword:    c.Query("keyword"),
	}

	items, total, err := h.service.ListPublished(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取新闻列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(items, total, filter.Pagination), "")
}

// GetDetail godoc
// @Summary 获取新闻详情（公开）
// @Tags news
// @Produce  json
// @Param idOrSlug path string true "新闻 ID 或 slug"
// @Success 200 {object} utils.APIResponse{data=models.News}
// @Failure 404 {object} utils.APIResponse "新闻不存在"
// @Router /news/{idOrSlug} [get]
func (h *NewsHandler) GetDetail(c *gin.Context) {
	news, err := h.service.GetPublishedDetail(c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrNewsNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "获取新闻详情失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, news, "")
}

// ListAll godoc
// @Summary 获取所有新闻（管理员）
// @Tags admin/news
// @Security BearerAuth
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param category query string false "分类筛选"
// @Param status query string false "状态筛选 (draft/published)"
// @Param keyword query string false "关键词"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/news [get]
func (h *NewsHandler) ListAll(c *gin.Context) {
	filter := repositories.NewsListFilter{
		Pagination: paginationFromQuery(c),
		Category:   c.Query("category"),
		Keyword:    c.Query("keyword"),
		Status:     c.Query("status"),
	}

	items, total, err := h.service.ListAll(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取新闻列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(items, total, filter.Pagination), "")
}

// Create godoc
// @Summary 创建新闻（管理员）
// @Tags admin/news
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param news body models.NewsInput true "新闻内容"
// @Success 201 {object} utils.APIResponse{data=models.News} "新闻创建成功"
// @Failure 400 {object} utils.APIResponse "标题内容缺失或 slug 冲突"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/news [post]
func (h *NewsHandler) Create(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	var input models.NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	news, err := h.service.Create(claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleContentRequired):
			utils.RespondValidationError(c, services.ErrTitleContentRequired.Error())
		case errors.Is(err, repositories.ErrNewsSlugExists):
			utils.RespondValidationError(c, repositories.ErrNewsSlugExists.Error())
		default:
			utils.RespondInternalServerError(c, "创建新闻失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, news, "新闻创建成功")
}

// Update godoc
// @Summary 更新新闻（管理员）
// @Tags admin/news
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "新闻 ID"
// @Param news body models.NewsInput true "更新内容"
// @Success 200 {object} utils.APIResponse{data=models.News} "新闻更新成功"
// @Failure 400 {object} utils.APIResponse "slug 冲突"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "新闻不存在"
// @Router /admin/news/{id} [put]
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrNewsNotFound.Error())
		return
	}

	var input models.NewsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	news, err := h.service.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNewsNotFound):
			utils.RespondNotFoundError(c, repositories.ErrNewsNotFound.Error())
		case errors.Is(err, repositories.ErrNewsSlugExists):
			utils.RespondValidationError(c, repositories.ErrNewsSlugExists.Error())
		default:
			utils.RespondInternalServerError(c, "更新新闻失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, news, "新闻更新成功")
}

// Delete godoc
// @Summary 删除新闻（管理员）
// @Tags admin/news
// @Security BearerAuth
// @Produce  json
// @Param id path int true "新闻 ID"
// @Success 200 {object} utils.APIResponse "新闻删除成功"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 403 {object} utils.APIResponse "权限不足"
// @Failure 404 {object} utils.APIResponse "新闻不存在"
// @Router /admin/news/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrNewsNotFound.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNewsNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrNewsNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "删除新闻失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "新闻删除成功")
}
