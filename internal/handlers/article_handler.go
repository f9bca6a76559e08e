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

// ArticleHandler 封装了文章相关的 HTTP 处理逻辑
type ArticleHandler struct {
	service services.ArticleService
}

// NewArticleHandler 创建一个新的 ArticleHandler 实例
func NewArticleHandler(service services.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// ListPublished godoc
// @Summary 获取文章列表（公开）
// @Description 只返回已发布文章，按发布时间倒序
// @Tags articles
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param category query string false "分类筛选"
// @Param keyword query string false "关键词，匹配标题或摘要"
// @Success 200 {object} utils.APIResponse
// @Router /articles [get]
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	filter := repositories.ArticleListFilter{
		Pagination: paginationFromQuery(c),
		Category:   c.Query("category"),
		Keyword:    c.Query("keyword"),
	}

	articles, total, err := h.service.ListPublished(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取文章列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(articles, total, filter.Pagination), "")
}

// GetDetail godoc
// @Summary 获取文章详情（公开）
// @Description 按数字 ID 或 slug 查找已发布文章，每次命中浏览量加一
// @Tags articles
// @Produce  json
// @Param idOrSlug path string true "文章 ID 或 slug"
// @Success 200 {object} utils.APIResponse{data=models.Article}
// @Failure 404 {object} utils.APIResponse "文章不存在"
// @Router /articles/{idOrSlug} [get]
func (h *ArticleHandler) GetDetail(c *gin.Context) {
	article, err := h.service.GetPublishedDetail(c.Param("idOrSlug"))
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrArticleNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "获取文章详情失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, article, "")
}

// ListAll godoc
// @Summary 获取所有文章（管理员）
// @Description 包含全部状态，按创建时间倒序
// @Tags admin/articles
// @Security BearerAuth
// @Produce  json
// @Param page query int false "页码" default(1)
// @Param pageSize query int false "每页数量，上限100" default(10)
// @Param category query string false "分类筛选"
// @Param status query string false "状态筛选 (draft/published)"
// @Param keyword query string false "关键词，匹配标题或摘要"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/articles [get]
func (h *ArticleHandler) ListAll(c *gin.Context) {
	filter := repositories.ArticleListFilter{
		Pagination: paginationFromQuery(c),
		Category:   c.Query("category"),
		Keyword:    c.Query("keyword"),
		Status:     c.Query("status"),
	}

	articles, total, err := h.service.ListAll(filter)
	if err != nil {
		utils.RespondInternalServerError(c, "获取文章列表失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, newPagedData(articles, total, filter.Pagination), "")
}

// Create godoc
// @Summary 创建文章（管理员）
// @Tags admin/articles
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param article body models.ArticleInput true "文章内容"
// @Success 201 {object} utils.APIResponse{data=models.Article} "文章创建成功"
// @Failure 400 {object} utils.APIResponse "标题内容缺失或 slug 冲突"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Router /admin/articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	claims, ok := auth.CurrentUser(c)
	if !ok {
		utils.RespondUnauthorizedError(c)
		return
	}

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	article, err := h.service.Create(claims.UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleContentRequired):
			utils.RespondValidationError(c, services.ErrTitleContentRequired.Error())
		case errors.Is(err, repositories.ErrArticleSlugExists):
			utils.RespondValidationError(c, repositories.ErrArticleSlugExists.Error())
		default:
			utils.RespondInternalServerError(c, "创建文章失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, article, "文章创建成功")
}

// Update godoc
// @Summary 更新文章（管理员）
// @Description publishedAt 只在首次发布时落定，后续状态切换不再变动
// @Tags admin/articles
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path int true "文章 ID"
// @Param article body models.ArticleInput true "更新内容，未提供的字段保持原值"
// @Success 200 {object} utils.APIResponse{data=models.Article} "文章更新成功"
// @Failure 400 {object} utils.APIResponse "slug 冲突"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 404 {object} utils.APIResponse "文章不存在"
// @Router /admin/articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrArticleNotFound.Error())
		return
	}

	var input models.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, "请求参数无效", err.Error())
		return
	}

	article, err := h.service.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrArticleNotFound):
			utils.RespondNotFoundError(c, repositories.ErrArticleNotFound.Error())
		case errors.Is(err, repositories.ErrArticleSlugExists):
			utils.RespondValidationError(c, repositories.ErrArticleSlugExists.Error())
		default:
			utils.RespondInternalServerError(c, "更新文章失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, article, "文章更新成功")
}

// Delete godoc
// @Summary 删除文章（管理员）
// @Tags admin/articles
// @Security BearerAuth
// @Produce  json
// @Param id path int true "文章 ID"
// @Success 200 {object} utils.APIResponse "文章删除成功"
// @Failure 401 {object} utils.APIResponse "未认证"
// @Failure 403 {object} utils.APIResponse "权限不足"
// @Failure 404 {object} utils.APIResponse "文章不存在"
// @Router /admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondNotFoundError(c, repositories.ErrArticleNotFound.Error())
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			utils.RespondNotFoundError(c, repositories.ErrArticleNotFound.Error())
		} else {
			utils.RespondInternalServerError(c, "删除文章失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "文章删除成功")
}
