package services

import (
	"errors"
	"log"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrTitleContentRequired 表示标题或内容缺失
var ErrTitleContentRequired = errors.New("标题和内容不能为空")

// ArticleService 定义了文章服务的接口
type ArticleService interface {
	ListPublished(filter repositories.ArticleListFilter) ([]models.Article, int64, error)
	// GetPublishedDetail 按 ID 或 slug 获取已发布文章，
	// 命中时无条件将浏览量加一并渲染正文 HTML
	GetPublishedDetail(idOrSlug string) (*models.Article, error)
	ListAll(filter repositories.ArticleListFilter) ([]models.Article, int64, error)
	Create(authorID uint, input models.ArticleInput) (*models.Article, error)
	Update(id uint, input models.ArticleInput) (*models.Article, error)
	Delete(id uint) error
}

// articleService 是 ArticleService 的实现
type articleService struct {
	repo repositories.ArticleRepository
}

// NewArticleService 创建一个新的 articleService 实例
func NewArticleService(repo repositories.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

// ListPublished 查询已发布文章列表
func (s *articleService) ListPublished(filter repositories.ArticleListFilter) ([]models.Article, int64, error) {
	return s.repo.ListPublished(filter)
}

// GetPublishedDetail 获取已发布文章详情并累加浏览量
func (s *articleService) GetPublishedDetail(idOrSlug string) (*models.Article, error) {
	article, err := s.repo.FindPublishedByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	// 浏览量累加是读取的副作用，失败不影响详情返回
	if err := s.repo.IncrementViewCount(article.ID); err != nil {
		log.Printf("累加文章浏览量失败 (id=%d): %v", article.ID, err)
	}
	article.ContentHTML = utils.RenderMarkdown(article.Content)
	return article, nil
}

// ListAll 查询全部文章列表（后台）
func (s *articleService) ListAll(filter repositories.ArticleListFilter) ([]models.Article, int64, error) {
	return s.repo.ListAll(filter)
}

// Create 处理创建文章的业务逻辑：
// 标题与内容必填；slug 未提供时由标题生成并带时间戳后缀；
// slug 冲突返回 ErrArticleSlugExists；创建即发布时落定 publishedAt。
func (s *articleService) Create(authorID uint, input models.ArticleInput) (*models.Article, error) {
	if strPtrEmpty(input.Title) || strPtrEmpty(input.Content) {
		return nil, ErrTitleContentRequired
	}

	slug := ""
	if input.Slug != nil && *input.Slug != "" {
		slug = *input.Slug
	} else {
		slug = utils.GenerateUniqueSlug(*input.Title)
	}

	exists, err := s.repo.SlugExists(slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrArticleSlugExists
	}

	article := &models.Article{
		Title:    *input.Title,
		Slug:     slug,
		Content:  *input.Content,
		Category: "tech",
		Status:   models.ContentStatusDraft,
		AuthorID: authorID,
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.CoverImage != nil {
		article.CoverImage = *input.CoverImage
	}
	if input.Category != nil && *input.Category != "" {
		article.Category = *input.Category
	}
	if input.Tags != nil {
		article.Tags = *input.Tags
	}
	if input.Status != nil && *input.Status != "" {
		article.Status = *input.Status
	}
	if article.Status == models.ContentStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.repo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Update 处理更新文章的业务逻辑。
// 变更 slug 时重新检查唯一性；publishedAt 只在首次转为发布时落定，
// 之后状态来回切换也不再改动（单向闩锁）。
func (s *articleService) Update(id uint, input models.ArticleInput) (*models.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != "" && *input.Slug != article.Slug {
		exists, err := s.repo.SlugExists(*input.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repositories.ErrArticleSlugExists
		}
		article.Slug = *input.Slug
	}

	if input.Title != nil && *input.Title != "" {
		article.Title = *input.Title
	}
	if input.Summary != nil {
		article.Summary = *input.Summary
	}
	if input.Content != nil && *input.Content != "" {
		article.Content = *input.Content
	}
	if input.CoverImage != nil {
		article.CoverImage = *input.CoverImage
	}
	if input.Category != nil && *input.Category != "" {
		article.Category = *input.Category
	}
	if input.Tags != nil {
		article.Tags = *input.Tags
	}
	if input.Status != nil && *input.Status != "" {
		article.Status = *input.Status
		if article.Status == models.ContentStatusPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// Delete 删除文章
func (s *articleService) Delete(id uint) error {
	return s.repo.Delete(id)
}

// strPtrEmpty 判断字符串指针是否为空或指向空串
func strPtrEmpty(s *string) bool {
	return s == nil || *s == ""
}
