package services

import (
	"log"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// NewsService 定义了新闻服务的接口
type NewsService interface {
	ListPublished(filter repositories.NewsListFilter) ([]models.News, int64, error)
	GetPublishedDetail(idOrSlug string) (*models.News, error)
	ListAll(filter repositories.NewsListFilter) ([]models.News, int64, error)
	Create(authorID uint, input models.NewsInput) (*models.News, error)
	Update(id uint, input models.NewsInput) (*models.News, error)
	Delete(id uint) error
}

// newsService 是 NewsService 的实现
type newsService struct {
	repo repositories.NewsRepository
}

// NewNewsService 创建一个新的 newsService 实例
func NewNewsService(repo repositories.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

// ListPublished 查询已发布新闻列表
func (s *newsService) ListPublished(filter repositories.NewsListFilter) ([]models.News, int64, error) {
	return s.repo.ListPublished(filter)
}

// GetPublishedDetail 获取已发布新闻详情并累加浏览量
func (s *newsService) GetPublishedDetail(idOrSlug string) (*models.News, error) {
	news, err := s.repo.FindPublishedByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	// 浏览量累加是读取的副作用，失败不影响详情返回
	if err := s.repo.IncrementViewCount(news.ID); err != nil {
		log.Printf("累加新闻浏览量失败 (id=%d): %v", news.ID, err)
	}
	news.ContentHTML = utils.RenderMarkdown(news.Content)
	return news, nil
}

// ListAll 查询全部新闻列表（后台）
func (s *newsService) ListAll(filter repositories.NewsListFilter) ([]models.News, int64, error) {
	return s.repo.ListAll(filter)
}

// Create 处理创建新闻的业务逻辑，规则与文章一致
func (s *newsService) Create(authorID uint, input models.NewsInput) (*models.News, error) {
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
		return nil, repositories.ErrNewsSlugExists
	}

	news := &models.News{
		Title:    *input.Title,
		Slug:     slug,
		Content:  *input.Content,
		Category: "company",
		Status:   models.ContentStatusDraft,
		AuthorID: authorID,
	}
	if input.Summary != nil {
		news.Summary = *input.Summary
	}
	if input.CoverImage != nil {
		news.CoverImage = *input.CoverImage
	}
	if input.Category != nil && *input.Category != "" {
		news.Category = *input.Category
	}
	if input.Status != nil && *input.Status != "" {
		news.Status = *input.Status
	}
	if news.Status == models.ContentStatusPublished {
		now := time.Now()
		news.PublishedAt = &now
	}

	if err := s.repo.Create(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Update 处理更新新闻的业务逻辑，publishedAt 为单向闩锁
func (s *newsService) Update(id uint, input models.NewsInput) (*models.News, error) {
	news, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != "" && *input.Slug != news.Slug {
		exists, err := s.repo.SlugExists(*input.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repositories.ErrNewsSlugExists
		}
		news.Slug = *input.Slug
	}

	if input.Title != nil && *input.Title != "" {
		news.Title = *input.Title
	}
	if input.Summary != nil {
		news.Summary = *input.Summary
	}
	if input.Content != nil && *input.Content != "" {
		news.Content = *input.Content
	}
	if input.CoverImage != nil {
		news.CoverImage = *input.CoverImage
	}
	if input.Category != nil && *input.Category != "" {
		news.Category = *input.Category
	}
	if input.Status != nil && *input.Status != "" {
		news.Status = *input.Status
		if news.Status == models.ContentStatusPublished && news.PublishedAt == nil {
			now := time.Now()
			news.PublishedAt = &now
		}
	}

	if err := s.repo.Update(news); err != nil {
		return nil, err
	}
	return news, nil
}

// Delete 删除新闻
func (s *newsService) Delete(id uint) error {
	return s.repo.Delete(id)
}
