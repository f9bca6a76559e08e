package models

// 各资源创建/更新请求的 JSON 结构体。
// 更新接口使用指针字段表达"未提供则保持原值"的部分更新语义。

// ArticleInput 定义了文章创建/更新请求
type ArticleInput struct {
	Title      *string     `json:"title,omitempty"`
	Slug       *string     `json:"slug,omitempty"`
	Summary    *string     `json:"summary,omitempty"`
	Content    *string     `json:"content,omitempty"`
	CoverImage *string     `json:"coverImage,omitempty"`
	Category   *string     `json:"category,omitempty"`
	Tags       *StringList `json:"tags,omitempty"`
	Status     *string     `json:"status,omitempty"`
}

// NewsInput 定义了新闻创建/更新请求
type NewsInput struct {
	Title      *string `json:"title,omitempty"`
	Slug       *string `json:"slug,omitempty"`
	Summary    *string `json:"summary,omitempty"`
	Content    *string `json:"content,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	Category   *string `json:"category,omitempty"`
	Status     *string `json:"status,omitempty"`
}

// DocInput 定义了文档创建/更新请求
type DocInput struct {
	Title     *string `json:"title,omitempty"`
	Slug      *string `json:"slug,omitempty"`
	Summary   *string `json:"summary,omitempty"`
	Content   *string `json:"content,omitempty"`
	Category  *string `json:"category,omitempty"`
	ParentID  *uint   `json:"parentId,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// ContactInput 定义了公开联系表单提交请求
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SettingInput 定义了批量更新设置请求中的单个条目
type SettingInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Group string `json:"group,omitempty"`
}
