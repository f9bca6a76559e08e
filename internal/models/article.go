package models

import (
	"time"
)

// 内容状态常量，文章/新闻/文档通用
const (
	ContentStatusDraft     = "draft"
	ContentStatusPublished = "published"
)

// Article 对应于数据库中的 articles 表
type Article struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string      `json:"title" gorm:"column:title;not null;size:255"`
	Slug        string      `json:"slug" gorm:"column:slug;uniqueIndex;not null;size:255"`
	Summary     string      `json:"summary,omitempty" gorm:"column:summary;size:500"`
	Content     string      `json:"content" gorm:"column:content;type:text;not null"`
	ContentHTML string      `json:"contentHtml,omitempty" gorm:"-"` // 详情接口按需渲染，不落库
	CoverImage  string      `json:"coverImage,omitempty" gorm:"column:cover_image;size:500"`
	Category    string      `json:"category" gorm:"column:category;not null;default:'tech';size:100"`
	Tags        StringList  `json:"tags" gorm:"column:tags;type:text"`
	Status      string      `json:"status" gorm:"column:status;not null;default:'draft';size:20"`
	ViewCount   int64       `json:"viewCount" gorm:"column:view_count;not null;default:0"`
	AuthorID    uint        `json:"authorId" gorm:"column:author_id;not null;index"`
	Author      *AuthorInfo `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	PublishedAt *time.Time  `json:"publishedAt" gorm:"column:published_at"`
	CreatedAt   time.Time   `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time   `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Article 结构体对应的数据库表名
func (Article) TableName() string {
	return "articles"
}
