package models

import (
	"time"
)

// 联系记录状态常量
const (
	ContactStatusPending    = "pending"
	ContactStatusProcessing = "processing"
	ContactStatusReplied    = "replied"
	ContactStatusClosed     = "closed"
)

// ValidContactStatuses 是后台可设置的联系记录状态集合
var ValidContactStatuses = []string{
	ContactStatusPending,
	ContactStatusProcessing,
	ContactStatusReplied,
	ContactStatusClosed,
}

// IsValidContactStatus 判断状态值是否在允许的集合内
func IsValidContactStatus(status string) bool {
	for _, s := range ValidContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Contact 对应于数据库中的 contacts 表
type Contact struct {
	ID        uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"column:name;not null;size:100"`
	Email     string     `json:"email" gorm:"column:email;not null;size:255"`
	Company   string     `json:"company,omitempty" gorm:"column:company;size:255"`
	Phone     string     `json:"phone,omitempty" gorm:"column:phone;size:50"`
	Subject   string     `json:"subject" gorm:"column:subject;not null;size:255"`
	Message   string     `json:"message" gorm:"column:message;type:text;not null"`
	Status    string     `json:"status" gorm:"column:status;not null;default:'pending';size:20"`
	RepliedAt *time.Time `json:"repliedAt" gorm:"column:replied_at"` // 首次转为 replied 时落定，之后不再变更
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Contact 结构体对应的数据库表名
func (Contact) TableName() string {
	return "contacts"
}
