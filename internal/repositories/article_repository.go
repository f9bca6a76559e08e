package repositories

import (
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrArticleNotFound 表示文章未找到
var ErrArticleNotFound = errors.New("文章不存在")

// ErrArticleSlugExists 表示文章的 URL 别名已存在
var ErrArticleSlugExists = errors.New("URL别名已存在")

// ArticleListFilter 描述文章列表查询条件
type ArticleListFilter struct {
	Pagination utils.Pagination
	Category   string
	Keyword    string
	Status     string // 仅后台列表可用，为空时不过滤
}

// ArticleRepository 定义了文章数据仓库的接口
type ArticleRepository interface {
	ListPublished(filter ArticleListFilter) ([]models.Article, int64, error)
	ListAll(filter ArticleListFilter) ([]models.Article, int64, error)
	FindPublishedByIDOrSlug(idOrSlug string) (*models.Article, error)
	FindByID(id uint) (*models.Article, error)
	SlugExists(slug string) (bool, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
}

// gormArticleRepository 是 ArticleRepository 的 GORM 实现
type gormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository 创建一个新的 gormArticleRepository 实例
func NewGormArticleRepository(db *gorm.DB) ArticleRepository {
	return &gormArticleRepository{db: db}
}

// applyKeyword 追加关键词条件，对标题或摘要做大小写不敏感的子串匹配
func applyKeyword(query *gorm.DB, keyword string) *gorm.DB {
	if keyword == "" {
		return query
	}
	kw := "%" + strings.ToLower(keyword) + "%"
	return query.Where("LOWER(title) LIKE ? OR LOWER(summary) LIKE ?", kw, kw)
}

// ListPublished 查询已发布文章，按发布时间倒序分页
func (r *gormArticleRepository) ListPublished(filter ArticleListFilter) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{}).Where("status = ?", models.ContentStatusPublished)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	query = applyKeyword(query, filter.Keyword)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Preload("Author").
		Order("published_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// ListAll 查询全部状态的文章，按创建时间倒序分页（后台）
func (r *gormArticleRepository) ListAll(filter ArticleListFilter) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{})
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

	var articles []models.Article
	err := query.Preload("Author").
		Order("created_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// FindPublishedByIDOrSlug 按数字 ID 或 slug 查找已发布文章
func (r *gormArticleRepository) FindPublishedByIDOrSlug(idOrSlug string) (*models.Article, error) {
	query := r.db.Preload("Author").Where("status = ?", models.ContentStatusPublished)
	if id, err := strconv.ParseUint(idOrSlug, 10, 64); err == nil {
		query = query.Where("id = ? OR slug = ?", id, idOrSlug)
	} else {
		query = query.Where("slug = ?", idOrSlug)
	}

	var article models.Article
	if err := query.First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindByID 按主键查找文章
func (r *gormArticleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.Preload("Author").First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// SlugExists 检查 slug 是否已被占用
func (r *gormArticleRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建文章记录，slug 唯一约束冲突时返回 ErrArticleSlugExists
func (r *gormArticleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrArticleSlugExists
		}
		return err
	}
	return nil
}

// Update 保存文章的全部字段。
// Author 是只读的关联投影，跳过关联保存，避免写回 users 表。
func (r *gormArticleRepository) Update(article *models.Article) error {
	if err := r.db.Omit(clause.Associations).Save(article).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrArticleSlugExists
		}
		return err
	}
	return nil
}

// Delete 按主键硬删除文章
func (r *gormArticleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// IncrementViewCount 浏览量加一。
// 并发读详情可能交错执行，计数接受近似值，不加锁。
func (r *gormArticleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// isUniqueViolation 判断是否为唯一约束冲突。
// GORM 通常会将数据库的唯一约束违例错误包装起来，
// 对于 SQLite，错误信息包含 "UNIQUE constraint failed"。
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
