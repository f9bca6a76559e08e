package repositories

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrDocNotFound 表示文档未找到
var ErrDocNotFound = errors.New("文档不存在")

// ErrDocSlugExists 表示文档的 URL 别名已存在
var ErrDocSlugExists = errors.New("URL别名已存在")

// DocListFilter 描述文档列表查询条件
type DocListFilter struct {
	Pagination utils.Pagination
	Category   string
	Status     string
}

// DocRepository 定义了文档数据仓库的接口
type DocRepository interface {
	// ListPublishedTree 返回全部已发布文档（不分页，前端据 parentId 组装树）
	ListPublishedTree(category string) ([]models.Doc, error)
	ListAll(filter DocListFilter) ([]models.Doc, int64, error)
	FindPublishedByIDOrSlug(idOrSlug string) (*models.Doc, error)
	FindByID(id uint) (*models.Doc, error)
	SlugExists(slug string) (bool, error)
	Create(doc *models.Doc) error
	Update(doc *models.Doc) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
}

// gormDocRepository 是 DocRepository 的 GORM 实现
type gormDocRepository struct {
	db *gorm.DB
}

// NewGormDocRepository 创建一个新的 gormDocRepository 实例
func NewGormDocRepository(db *gorm.DB) DocRepository {
	return &gormDocRepository{db: db}
}

// ListPublishedTree 查询全部已发布文档，按 (sort_order asc, created_at desc) 排序
func (r *gormDocRepository) ListPublishedTree(category string) ([]models.Doc, error) {
	query := r.db.Model(&models.Doc{}).Where("status = ?", models.ContentStatusPublished)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var docs []models.Doc
	err := query.
		Select("id", "title", "slug", "summary", "category", "parent_id", "sort_order", "view_count", "created_at").
		Order("sort_order ASC").Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// ListAll 查询全部状态的文档，排序规则与公开列表一致（后台）
func (r *gormDocRepository) ListAll(filter DocListFilter) ([]models.Doc, int64, error) {
	query := r.db.Model(&models.Doc{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []models.Doc
	err := query.Preload("Author").
		Order("sort_order ASC").Order("created_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// FindPublishedByIDOrSlug 按数字 ID 或 slug 查找已发布文档
func (r *gormDocRepository) FindPublishedByIDOrSlug(idOrSlug string) (*models.Doc, error) {
	query := r.db.Preload("Author").Where("status = ?", models.ContentStatusPublished)
	if id, err := strconv.ParseUint(idOrSlug, 10, 64); err == nil {
		query = query.Where("id = ? OR slug = ?", id, idOrSlug)
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var doc models.Doc
	if err := query.First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// FindByID 按主键查找文档
func (r *gormDocRepository) FindByID(id uint) (*models.Doc, error) {
	var doc models.Doc
	if err := r.db.Preload("Author").First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// SlugExists 检查 slug 是否已被占用
func (r *gormDocRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Doc{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建文档记录，slug 唯一约束冲突时返回 ErrDocSlugExists
func (r *gormDocRepository) Create(doc *models.Doc) error {
	if err := r.db.Create(doc).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDocSlugExists
		}
		return err
	}
	return nil
}

// Update 保存文档的全部字段。
// Author 是只读的关联投影，跳过关联保存，避免写回 users 表。
func (r *gormDocRepository) Update(doc *models.Doc) error {
	if err := r.db.Omit(clause.Associations).Save(doc).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDocSlugExists
		}
		return err
	}
	return nil
}

// Delete 按主键硬删除文档
func (r *gormDocRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Doc{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocNotFound
	}
	return nil
}

// IncrementViewCount 浏览量加一
func (r *gormDocRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Doc{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
