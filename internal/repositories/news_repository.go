package repositories

import (
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrNewsNotFound 表示新闻未找到
var ErrNewsNotFound = errors.New("新闻不存在")

// ErrNewsSlugExists 表示新闻的 URL 别名已存在
var ErrNewsSlugExists = errors.New("URL别名已存在")

// NewsListFilter 描述新闻列表查询条件
type NewsListFilter struct {
	Pagination utils.Pagination
	Category   string
	Keyword    string
	Status     string
}

// NewsRepository 定义了新闻数据仓库的接口
type NewsRepository interface {
	ListPublished(filter NewsListFilter) ([]models.News, int64, error)
	ListAll(filter NewsListFilter) ([]models.News, int64, error)
	FindPublishedByIDOrSlug(idOrSlug string) (*models.News, error)
	FindByID(id uint) (*models.News, error)
	SlugExists(slug string) (bool, error)
	Create(news *models.News) error
	Update(news *models.News) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
}

// gormNewsRepository 是 NewsRepository 的 GORM 实现
type gormNewsRepository struct {
	db *gorm.DB
}

// NewGormNewsRepository 创建一个新的 gormNewsRepository 实例
func NewGormNewsRepository(db *gorm.DB) NewsRepository {
	return &gormNewsRepository{db: db}
}

// ListPublished 查询已发布新闻，按发布时间倒序分页
func (r *gormNewsRepository) ListPublished(filter NewsListFilter) ([]models.News, int64, error) {
	query := r.db.Model(&models.News{}).Where("status = ?", models.ContentStatusPublished)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	query = applyKeyword(query, filter.Keyword)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.News
	err := query.Preload("Author").
		Order("published_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll 查询全部状态的新闻，按创建时间倒序分页（后台）
func (r *gormNewsRepository) ListAll(filter NewsListFilter) ([]models.News, int64, error) {
	query := r.db.Model(&models.News{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	query = applyKeyword(query, filter.Keyword)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.News
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// FindPublishedByIDOrSlug 按数字 ID 或 slug 查找已发布新闻
func (r *gormNewsRepository) FindPublishedByIDOrSlug(idOrSlug string) (*models.News, error) {
	query := r.db.Preload("Author").Where("status = ?", models.ContentStatusPublished)
	if id, err := strconv.ParseUint(idOrSlug, 10, 64); err == nil {
		query = query.Where("id = ? OR slug = ?", id, idOrSlug)
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var news models.News
	if err := query.First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

// FindByID 按主键查找新闻
func (r *gormNewsRepository) FindByID(id uint) (*models.News, error) {
	var news models.News
	if err := r.db.Preload("Author").First(&news, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

// SlugExists 检查 slug 是否已被占用
func (r *gormNewsRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.News{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建新闻记录，slug 唯一约束冲突时返回 ErrNewsSlugExists
func (r *gormNewsRepository) Create(news *models.News) error {
	if err := r.db.Create(news).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrNewsSlugExists
		}
		return err
	}
	return nil
}

// Update 保存新闻的全部字段。
// Author 是只读的关联投影，跳过关联保存，避免写回 users 表。
func (r *gormNewsRepository) Update(news *models.News) error {
	if err := r.db.Omit(clause.Associations).Save(news).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrNewsSlugExists
		}
		return err
	}
	return nil
}

// Delete 按主键硬删除新闻
func (r *gormNewsRepository) Delete(id uint) error {
	result := r.db.Delete(&models.News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// IncrementViewCount 浏览量加一
func (r *gormNewsRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.News{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}
