package services

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/cloudmo/cloudmo-api/configs"
	"github.com/cloudmo/cloudmo-api/pkg/db"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

func TestMain(m *testing.M) {
	configs.LoadConfig()
	m.Run()
}

// newTestDB 在临时目录创建一个独立的 SQLite 数据库，用例结束后自动清理
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("初始化测试数据库失败: %v", err)
	}
	t.Cleanup(func() { db.Close(gormDB) })
	return gormDB
}

// strPtr 返回字符串指针，简化输入结构体的构造
func strPtr(s string) *string { return &s }

// pagination 构造分页参数
func pagination(page, pageSize int) utils.Pagination {
	return utils.Pagination{Page: page, PageSize: pageSize}
}
