package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudmo/cloudmo-api/internal/models"
)

// ErrSettingNotFound 表示设置项未找到
var ErrSettingNotFound = errors.New("设置项不存在")

// SettingRepository 定义了设置数据仓库的接口
type SettingRepository interface {
	ListByGroups(groups []string) ([]models.Setting, error)
	List(group string) ([]models.Setting, error)
	// UpsertBatch 在单个事务中批量更新/插入：已存在的 key 只替换 value，
	// 新 key 按给定分组创建。任一条失败则整体回滚。
	UpsertBatch(settings []models.Setting) error
	// SeedDefaults 插入缺失的默认设置项，已存在的 key 保持原值
	SeedDefaults(settings []models.Setting) error
	DeleteByKey(key string) error
}

// gormSettingRepository 是 SettingRepository 的 GORM 实现
type gormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository 创建一个新的 gormSettingRepository 实例
func NewGormSettingRepository(db *gorm.DB) SettingRepository {
	return &gormSettingRepository{db: db}
}

// ListByGroups 查询指定分组内的全部设置项
func (r *gormSettingRepository) ListByGroups(groups []string) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.Where("group_name IN ?", groups).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// List 查询设置项，group 非空时按分组过滤，按分组名排序
func (r *gormSettingRepository) List(group string) ([]models.Setting, error) {
	query := r.db.Model(&models.Setting{})
	if group != "" {
		query = query.Where("group_name = ?", group)
	}

	var settings []models.Setting
	if err := query.Order("group_name ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// UpsertBatch 以 key 为冲突列批量 upsert，整批包裹在一个事务里
func (r *gormSettingRepository) UpsertBatch(settings []models.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range settings {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&settings[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// SeedDefaults 只创建尚不存在的 key，不覆盖已有值
func (r *gormSettingRepository) SeedDefaults(settings []models.Setting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range settings {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoNothing: true,
			}).Create(&settings[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByKey 按 key 删除设置项
func (r *gormSettingRepository) DeleteByKey(key string) error {
	result := r.db.Delete(&models.Setting{}, "key = ?", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}
	return nil
}
