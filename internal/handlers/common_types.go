package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// PagedData 定义了通用的分页列表响应结构，
// 分页元信息与 items 平铺在同一层级
type PagedData[T any] struct {
	Items []T `json:"items"`
	utils.PaginationInfo
}

// newPagedData 组装分页列表响应
func newPagedData[T any](items []T, total int64, p utils.Pagination) PagedData[T] {
	if items == nil {
		items = []T{}
	}
	return PagedData[T]{
		Items:          items,
		PaginationInfo: utils.CalculatePagination(total, p),
	}
}

// parseIDParam 解析路径中的数字 ID 参数，非法时返回 false
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// paginationFromQuery 从查询参数解析分页设置
func paginationFromQuery(c *gin.Context) utils.Pagination {
	return utils.ParsePagination(c.Query("page"), c.Query("pageSize"))
}
