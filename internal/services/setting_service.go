package services

import (
	"errors"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
)

// ErrEmptySettingsBatch 表示批量更新请求为空或包含无效条目
var ErrEmptySettingsBatch = errors.New("无效的设置数据")

// SettingService 定义了设置服务的接口
type SettingService interface {
	// GetPublicSettings 返回公开分组 (general/seo) 的扁平键值映射
	GetPublicSettings() (map[string]string, error)
	// GetAllSettings 返回按分组嵌套的键值映射（后台），group 非空时只取该分组
	GetAllSettings(group string) (map[string]map[string]string, error)
	// UpdateBatch 批量 upsert：整批置于一个事务中，部分失败不会留下半更新状态
	UpdateBatch(inputs []models.SettingInput) error
	DeleteByKey(key string) error
}

// settingService 是 SettingService 的实现
type settingService struct {
	repo repositories.SettingRepository
}

// NewSettingService 创建一个新的 settingService 实例
func NewSettingService(repo repositories.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

// GetPublicSettings 查询公开分组设置并转换为键值对格式
func (s *settingService) GetPublicSettings() (map[string]string, error) {
	settings, err := s.repo.ListByGroups(models.PublicSettingGroups)
	if err != nil {
		return nil, err
	}

	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}
	return settingsMap, nil
}

// GetAllSettings 查询设置并按分组整理
func (s *settingService) GetAllSettings(group string) (map[string]map[string]string, error) {
	settings, err := s.repo.List(group)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]map[string]string)
	for _, setting := range settings {
		if _, ok := grouped[setting.Group]; !ok {
			grouped[setting.Group] = make(map[string]string)
		}
		grouped[setting.Group][setting.Key] = setting.Value
	}
	return grouped, nil
}

// UpdateBatch 校验并批量 upsert 设置项，新 key 的分组缺省为 general
func (s *settingService) UpdateBatch(inputs []models.SettingInput) error {
	if len(inputs) == 0 {
		return ErrEmptySettingsBatch
	}

	settings := make([]models.Setting, 0, len(inputs))
	for _, input := range inputs {
		if input.Key == "" {
			return ErrEmptySettingsBatch
		}
		group := input.Group
		if group == "" {
			group = models.SettingGroupGeneral
		}
		settings = append(settings, models.Setting{
			Key:   input.Key,
			Value: input.Value,
			Group: group,
		})
	}
	return s.repo.UpsertBatch(settings)
}

// DeleteByKey 删除单个设置项
func (s *settingService) DeleteByKey(key string) error {
	return s.repo.DeleteByKey(key)
}
