package models

import (
	"time"
)

// SettingGroupGeneral 是新建设置项时的默认分组
const SettingGroupGeneral = "general"

// PublicSettingGroups 是公开接口可见的设置分组
var PublicSettingGroups = []string{"general", "seo"}

// Setting 对应于数据库中的 settings 表，key 是天然主键
type Setting struct {
	Key       string    `json:"key" gorm:"column:key;primaryKey;size:100"`
	Value     string    `json:"value" gorm:"column:value;type:text;not null"`
	Group     string    `json:"group" gorm:"column:group_name;not null;default:'general';size:100"` // group 是 SQL 关键字，列名用 group_name
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Setting 结构体对应的数据库表名
func (Setting) TableName() string {
	return "settings"
}
