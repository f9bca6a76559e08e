package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/cloudmo/cloudmo-api/configs"
	"github.com/cloudmo/cloudmo-api/internal/auth"
	"github.com/cloudmo/cloudmo-api/internal/handlers"
	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/internal/repositories"
	"github.com/cloudmo/cloudmo-api/internal/services"
	"github.com/cloudmo/cloudmo-api/pkg/db"
)

func TestMain(m *testing.M) {
	configs.LoadConfig()
	gin.SetMode(gin.TestMode)
	m.Run()
}

// apiEnvelope 对应服务端统一响应结构，data 按用例各自解码
type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// newTestServer 用临时数据库搭起完整的路由栈并完成启动初始化
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gormDB, err := db.Connect(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("初始化测试数据库失败: %v", err)
	}
	t.Cleanup(func() { db.Close(gormDB) })

	userRepo := repositories.NewGormUserRepository(gormDB)
	settingRepo := repositories.NewGormSettingRepository(gormDB)
	if err := services.NewBootstrapService(userRepo, settingRepo).Run(); err != nil {
		t.Fatalf("启动初始化失败: %v", err)
	}

	router := gin.New()
	SetupRoutes(router, &Handlers{
		Auth:    handlers.NewAuthHandler(services.NewAuthService(userRepo)),
		Article: handlers.NewArticleHandler(services.NewArticleService(repositories.NewGormArticleRepository(gormDB))),
		News:    handlers.NewNewsHandler(services.NewNewsService(repositories.NewGormNewsRepository(gormDB))),
		Doc:     handlers.NewDocHandler(services.NewDocService(repositories.NewGormDocRepository(gormDB))),
		Contact: handlers.NewContactHandler(services.NewContactService(repositories.NewGormContactRepository(gormDB))),
		Setting: handlers.NewSettingHandler(services.NewSettingService(settingRepo)),
	})
	return router
}

// request 发送一次请求，body 非 nil 时编码为 JSON
func request(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("编码请求体失败: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env apiEnvelope
	if len(w.Body.Bytes()) > 0 {
		// /health 等非统一结构的响应解码失败也没关系，用例自行处理
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

// loginAsAdmin 用默认管理员凭证登录并返回 JWT
func loginAsAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, env := request(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": configs.AppConfig.AdminUsername,
		"password": configs.AppConfig.AdminPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("管理员登录失败: status %d, body %s", w.Code, w.Body.String())
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil || result.Token == "" {
		t.Fatalf("登录响应中缺少令牌: %s", w.Body.String())
	}
	return result.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)
	w, _ := request(t, router, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil || status.Status != "ok" {
		t.Errorf("健康检查响应异常: %s", w.Body.String())
	}
}

func TestLoginAndMe(t *testing.T) {
	router := newTestServer(t)

	t.Run("登录后可获取当前用户", func(t *testing.T) {
		token := loginAsAdmin(t, router)
		w, env := request(t, router, http.MethodGet, "/api/auth/me", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var user models.User
		if err := json.Unmarshal(env.Data, &user); err != nil {
			t.Fatalf("解码用户失败: %v", err)
		}
		if user.Username != configs.AppConfig.AdminUsername {
			t.Errorf("Username = %q, want %q", user.Username, configs.AppConfig.AdminUsername)
		}
	})

	t.Run("错误凭证返回401", func(t *testing.T) {
		w, env := request(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": configs.AppConfig.AdminUsername,
			"password": "wrong-password",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if env.Success {
			t.Error("失败响应的 success 应为 false")
		}
	})

	t.Run("缺少凭证返回400", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("未认证访问me返回401", func(t *testing.T) {
		w, _ := request(t, router, http.MethodGet, "/api/auth/me", "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("登出始终成功", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPost, "/api/auth/logout", "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}

func TestArticleLifecycle(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	// 创建并发布一篇文章
	w, env := request(t, router, http.MethodPost, "/api/admin/articles", token, map[string]any{
		"title":   "第一篇文章",
		"slug":    "first-article",
		"content": "# 你好\n\n正文内容",
		"status":  "published",
		"tags":    []string{"go", "web"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建文章失败: status %d, body %s", w.Code, w.Body.String())
	}
	var created models.Article
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("解码文章失败: %v", err)
	}
	if created.PublishedAt == nil {
		t.Error("发布状态创建的文章应有 publishedAt")
	}

	t.Run("公开列表可见", func(t *testing.T) {
		w, env := request(t, router, http.MethodGet, "/api/articles", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var page struct {
			Items []models.Article `json:"items"`
			Total int64            `json:"total"`
		}
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Fatalf("解码列表失败: %v", err)
		}
		if page.Total != 1 || len(page.Items) != 1 {
			t.Errorf("total = %d, len = %d, want 1/1", page.Total, len(page.Items))
		}
	})

	t.Run("公开详情渲染HTML并计浏览量", func(t *testing.T) {
		w, env := request(t, router, http.MethodGet, "/api/articles/first-article", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var article models.Article
		if err := json.Unmarshal(env.Data, &article); err != nil {
			t.Fatalf("解码文章失败: %v", err)
		}
		if article.ContentHTML == "" {
			t.Error("详情应包含渲染后的 contentHtml")
		}

		// 再访问一次，浏览量应单调增加
		_, env2 := request(t, router, http.MethodGet, fmt.Sprintf("/api/articles/%d", article.ID), "", nil)
		var second models.Article
		if err := json.Unmarshal(env2.Data, &second); err != nil {
			t.Fatalf("解码文章失败: %v", err)
		}
		if second.ViewCount != article.ViewCount+1 {
			t.Errorf("ViewCount = %d, want %d", second.ViewCount, article.ViewCount+1)
		}
	})

	t.Run("slug冲突返回400", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPost, "/api/admin/articles", token, map[string]any{
			"title":   "重复slug",
			"slug":    "first-article",
			"content": "正文",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("未认证的后台请求返回401", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPost, "/api/admin/articles", "", map[string]any{
			"title": "x", "content": "y",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("更新后删除", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", created.ID), token, map[string]any{
			"title": "改过的标题",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("更新失败: status %d, body %s", w.Code, w.Body.String())
		}

		w, _ = request(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", created.ID), token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("删除失败: status %d", w.Code)
		}

		w, _ = request(t, router, http.MethodGet, "/api/articles/first-article", "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("删除后的文章仍可访问: status %d", w.Code)
		}
	})
}

func TestPaginationClamping(t *testing.T) {
	router := newTestServer(t)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"pageSize超上限截断到100", "?page=1&pageSize=1000", 1, 100},
		{"page为0回落到1", "?page=0&pageSize=10", 1, 10},
		{"非法参数回落到默认值", "?page=abc&pageSize=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := request(t, router, http.MethodGet, "/api/articles"+tt.query, "", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var page struct {
				Page     int `json:"page"`
				PageSize int `json:"pageSize"`
			}
			if err := json.Unmarshal(env.Data, &page); err != nil {
				t.Fatalf("解码分页信息失败: %v", err)
			}
			if page.Page != tt.wantPage || page.PageSize != tt.wantPageSize {
				t.Errorf("page/pageSize = %d/%d, want %d/%d", page.Page, page.PageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestContactFlow(t *testing.T) {
	router := newTestServer(t)

	// 公开提交
	w, env := request(t, router, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "李四",
		"email":   "lisi@example.com",
		"subject": "咨询",
		"message": "<b>你好</b>",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("提交失败: status %d, body %s", w.Code, w.Body.String())
	}
	var submitted struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &submitted); err != nil || submitted.ID == 0 {
		t.Fatalf("提交响应缺少记录 ID: %s", w.Body.String())
	}

	t.Run("必填项缺失返回400", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPost, "/api/contact", "", map[string]string{"name": "王五"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	token := loginAsAdmin(t, router)

	t.Run("后台查询详情并更新状态", func(t *testing.T) {
		w, env := request(t, router, http.MethodGet, fmt.Sprintf("/api/admin/contacts/%d", submitted.ID), token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var contact models.Contact
		if err := json.Unmarshal(env.Data, &contact); err != nil {
			t.Fatalf("解码失败: %v", err)
		}
		if contact.Message != "你好" {
			t.Errorf("Message = %q, HTML 应在入库前剥离", contact.Message)
		}

		w, env = request(t, router, http.MethodPut, fmt.Sprintf("/api/admin/contacts/%d", submitted.ID), token, map[string]string{
			"status": "replied",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("更新状态失败: status %d, body %s", w.Code, w.Body.String())
		}
		var updated models.Contact
		if err := json.Unmarshal(env.Data, &updated); err != nil {
			t.Fatalf("解码失败: %v", err)
		}
		if updated.RepliedAt == nil {
			t.Error("转为 replied 后 repliedAt 不应为空")
		}
	})

	t.Run("非法状态返回400", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPut, fmt.Sprintf("/api/admin/contacts/%d", submitted.ID), token, map[string]string{
			"status": "archived",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestSettingsEndpoints(t *testing.T) {
	router := newTestServer(t)
	token := loginAsAdmin(t, router)

	// 写入一条非公开分组的设置
	w, _ := request(t, router, http.MethodPut, "/api/admin/settings", token, []map[string]string{
		{"key": "smtp_password", "value": "secret", "group": "mail"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("更新设置失败: status %d, body %s", w.Code, w.Body.String())
	}

	t.Run("公开接口只暴露general与seo分组", func(t *testing.T) {
		w, env := request(t, router, http.MethodGet, "/api/settings", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var public map[string]string
		if err := json.Unmarshal(env.Data, &public); err != nil {
			t.Fatalf("解码失败: %v", err)
		}
		if public["site_name"] == "" {
			t.Error("公开设置应包含默认的 site_name")
		}
		if _, ok := public["smtp_password"]; ok {
			t.Error("非公开分组的设置不应通过公开接口暴露")
		}
	})

	t.Run("后台接口按分组返回", func(t *testing.T) {
		w, env := request(t, router, http.MethodGet, "/api/admin/settings", token, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var grouped map[string]map[string]string
		if err := json.Unmarshal(env.Data, &grouped); err != nil {
			t.Fatalf("解码失败: %v", err)
		}
		if grouped["mail"]["smtp_password"] != "secret" {
			t.Errorf("后台设置缺少 mail 分组条目: %v", grouped)
		}
	})

	t.Run("空批次返回400", func(t *testing.T) {
		w, _ := request(t, router, http.MethodPut, "/api/admin/settings", token, []map[string]string{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("删除设置项", func(t *testing.T) {
		w, _ := request(t, router, http.MethodDelete, "/api/admin/settings/smtp_password", token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		w, _ = request(t, router, http.MethodDelete, "/api/admin/settings/smtp_password", token, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("重复删除 status = %d, want 404", w.Code)
		}
	})
}

func TestDeleteRequiresAdminRole(t *testing.T) {
	router := newTestServer(t)
	adminToken := loginAsAdmin(t, router)

	w, env := request(t, router, http.MethodPost, "/api/admin/articles", adminToken, map[string]any{
		"title":   "待删除",
		"content": "正文",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("创建文章失败: status %d", w.Code)
	}
	var article models.Article
	if err := json.Unmarshal(env.Data, &article); err != nil {
		t.Fatalf("解码失败: %v", err)
	}

	// editor 角色的令牌可以读写但不能删除
	editorToken, err := auth.GenerateToken(99, "editor", models.RoleEditor)
	if err != nil {
		t.Fatalf("GenerateToken 返回错误: %v", err)
	}

	w, _ = request(t, router, http.MethodGet, "/api/admin/articles", editorToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("editor 读取后台列表 status = %d, want 200", w.Code)
	}

	w, _ = request(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", article.ID), editorToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("editor 删除 status = %d, want 403", w.Code)
	}

	w, _ = request(t, router, http.MethodDelete, fmt.Sprintf("/api/admin/articles/%d", article.ID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("admin 删除 status = %d, want 200", w.Code)
	}
}
