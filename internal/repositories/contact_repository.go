package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// ErrContactNotFound 表示联系记录未找到
var ErrContactNotFound = errors.New("记录不存在")

// ContactListFilter 描述联系记录列表查询条件
type ContactListFilter struct {
	Pagination utils.Pagination
	Status     string
}

// ContactRepository 定义了联系记录数据仓库的接口
type ContactRepository interface {
	List(filter ContactListFilter) ([]models.Contact, int64, error)
	FindByID(id uint) (*models.Contact, error)
	Create(contact *models.Contact) error
	Update(contact *models.Contact) error
	Delete(id uint) error
}

// gormContactRepository 是 ContactRepository 的 GORM 实现
type gormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository 创建一个新的 gormContactRepository 实例
func NewGormContactRepository(db *gorm.DB) ContactRepository {
	return &gormContactRepository{db: db}
}

// List 查询联系记录，按创建时间倒序分页，可按状态过滤
func (r *gormContactRepository) List(filter ContactListFilter) ([]models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := query.
		Order("created_at DESC").
		Offset(filter.Pagination.Offset()).
		Limit(filter.Pagination.PageSize).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// FindByID 按主键查找联系记录
func (r *gormContactRepository) FindByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// Create 创建联系记录
func (r *gormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update 保存联系记录的全部字段
func (r *gormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete 按主键硬删除联系记录
func (r *gormContactRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
