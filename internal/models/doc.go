package models

import (
	"time"
)

// Doc 对应于数据库中的 docs 表。
// parentId 可空，形成文档树；排序规则为 (sort_order asc, created_at desc)。
type Doc struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string      `json:"title" gorm:"column:title;not null;size:255"`
	Slug        string      `json:"slug" gorm:"column:slug;uniqueIndex;not null;size:255"`
	Summary     string      `json:"summary,omitempty" gorm:"column:summary;size:500"`
	Content     string      `json:"content" gorm:"column:content;type:text;not null"`
	ContentHTML string      `json:"contentHtml,omitempty" gorm:"-"`
	Category    string      `json:"category" gorm:"column:category;not null;default:'guide';size:100"`
	ParentID    *uint       `json:"parentId" gorm:"column:parent_id;index"`
	SortOrder   int         `json:"sortOrder" gorm:"column:sort_order;not null;default:0"`
	Status      string      `json:"status" gorm:"column:status;not null;default:'draft';size:20"`
	ViewCount   int64       `json:"viewCount" gorm:"column:view_count;not null;default:0"`
	AuthorID    uint        `json:"authorId" gorm:"column:author_id;not null;index"`
	Author      *AuthorInfo `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	PublishedAt *time.Time  `json:"publishedAt" gorm:"column:published_at"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time   `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Doc 结构体对应的数据库表名
func (Doc) TableName() string {
	return "docs"
}
