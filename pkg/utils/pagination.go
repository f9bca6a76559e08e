package utils

import (
	"strconv"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination 保存解析后的分页查询参数
type Pagination struct {
	Page     int
	PageSize int
}

// Offset 返回当前分页对应的记录偏移量
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination 解析分页查询参数。
// page 最小为 1；pageSize 被限制在 [1, 100]，缺省为 10。
// 非法输入一律回落到默认值，不报错。
func ParsePagination(pageStr, pageSizeStr string) Pagination {
	page := defaultPage
	if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
		page = v
	}

	pageSize := defaultPageSize
	if v, err := strconv.Atoi(pageSizeStr); err == nil && v > 0 {
		pageSize = v
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// PaginationInfo 是列表响应中携带的分页元信息
type PaginationInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
}

// CalculatePagination 根据总数与分页参数计算分页元信息
func CalculatePagination(total int64, p Pagination) PaginationInfo {
	totalPages := total / int64(p.PageSize)
	if total%int64(p.PageSize) != 0 {
		totalPages++
	}
	return PaginationInfo{
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: totalPages,
	}
}
