package services

import (
	"errors"
	"log"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrDocSelfParent 表示文档不能以自身作为父节点
var ErrDocSelfParent = errors.New("文档不能以自身作为父文档")

// DocService 定义了文档服务的接口
type DocService interface {
	ListPublishedTree(category string) ([]models.Doc, error)
	GetPublishedDetail(idOrSlug string) (*models.Doc, error)
	ListAll(filter repositories.DocListFilter) ([]models.Doc, int64, error)
	Create(authorID uint, input models.DocInput) (*models.Doc, error)
	Update(id uint, input models.DocInput) (*models.Doc, error)
	Delete(id uint) error
}

// docService 是 DocService 的实现
type docService struct {
	repo repositories.DocRepository
}

// NewDocService 创建一个新的 docService 实例
func NewDocService(repo repositories.DocRepository) DocService {
	return &docService{repo: repo}
}

// ListPublishedTree 返回全部已发布文档，供前端组装目录树
func (s *docService) ListPublishedTree(category string) ([]models.Doc, error) {
	return s.repo.ListPublishedTree(category)
}

// GetPublishedDetail 获取已发布文档详情并累加浏览量
func (s *docService) GetPublishedDetail(idOrSlug string) (*models.Doc, error) {
	doc, err := s.repo.FindPublishedByIDOrSlug(idOrSlug)
	if err != nil {
		return nil, err
	}
	// 浏览量累加是读取的副作用，失败不影响详情返回
	if err := s.repo.IncrementViewCount(doc.ID); err != nil {
		log.Printf("累加文档浏览量失败 (id=%d): %v", doc.ID, err)
	}
	doc.ContentHTML = utils.RenderMarkdown(doc.Content)
	return doc, nil
}

// ListAll 查询全部文档列表（后台）
func (s *docService) ListAll(filter repositories.DocListFilter) ([]models.Doc, int64, error) {
	return s.repo.ListAll(filter)
}

// Create 处理创建文档的业务逻辑，在文章规则之上多出 parentId 与 sortOrder
func (s *docService) Create(authorID uint, input models.DocInput) (*models.Doc, error) {
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
		return nil, repositories.ErrDocSlugExists
	}

	doc := &models.Doc{
		Title:    *input.Title,
		Slug:     slug,
		Content:  *input.Content,
		Category: "guide",
		ParentID: input.ParentID,
		Status:   models.ContentStatusDraft,
		AuthorID: authorID,
	}
	if input.Summary != nil {
		doc.Summary = *input.Summary
	}
	if input.Category != nil && *input.Category != "" {
		doc.Category = *input.Category
	}
	if input.SortOrder != nil {
		doc.SortOrder = *input.SortOrder
	}
	if input.Status != nil && *input.Status != "" {
		doc.Status = *input.Status
	}
	if doc.Status == models.ContentStatusPublished {
		now := time.Now()
		doc.PublishedAt = &now
	}

	if err := s.repo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update 处理更新文档的业务逻辑。
// 拒绝把 parentId 指向文档自身；更深层的环不做检查。
func (s *docService) Update(id uint, input models.DocInput) (*models.Doc, error) {
	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.ParentID != nil && *input.ParentID == doc.ID {
		return nil, ErrDocSelfParent
	}

	if input.Slug != nil && *input.Slug != "" && *input.Slug != doc.Slug {
		exists, err := s.repo.SlugExists(*input.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, repositories.ErrDocSlugExists
		}
		doc.Slug = *input.Slug
	}

	if input.Title != nil && *input.Title != "" {
		doc.Title = *input.Title
	}
	if input.Summary != nil {
		doc.Summary = *input.Summary
	}
	if input.Content != nil && *input.Content != "" {
		doc.Content = *input.Content
	}
	if input.Category != nil && *input.Category != "" {
		doc.Category = *input.Category
	}
	if input.ParentID != nil {
		doc.ParentID = input.ParentID
	}
	if input.SortOrder != nil {
		doc.SortOrder = *input.SortOrder
	}
	if input.Status != nil && *input.Status != "" {
		doc.Status = *input.Status
		if doc.Status == models.ContentStatusPublished && doc.PublishedAt == nil {
			now := time.Now()
			doc.PublishedAt = &now
		}
	}

	if err := s.repo.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete 删除文档
func (s *docService) Delete(id uint) error {
	return s.repo.Delete(id)
}
