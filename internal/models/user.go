package models

import (
	"time"
)

// 用户角色常量
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleUser   = "user"
)

// 用户状态常量
const (
	UserStatusEnabled  = "enabled"
	UserStatusDisabled = "disabled"
)

// User 对应于数据库中的 users 表
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"column:username;uniqueIndex;not null;size:100"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null;size:255"` // 密码哈希不通过JSON暴露
	Nickname     string    `json:"nickname,omitempty" gorm:"column:nickname;size:100"`
	Avatar       string    `json:"avatar,omitempty" gorm:"column:avatar;size:500"`
	Role         string    `json:"role" gorm:"column:role;not null;default:'user';size:50"`
	Status       string    `json:"status" gorm:"column:status;not null;default:'enabled';size:20"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 User 结构体对应的数据库表名
func (User) TableName() string {
	return "users"
}

// AuthorInfo 是内容记录中嵌入的作者摘要信息
type AuthorInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// TableName 作者信息复用 users 表
func (AuthorInfo) TableName() string {
	return "users"
}
