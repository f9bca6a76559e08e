// Package client 提供 cloudmo-api 的类型化 HTTP 客户端，
// 供命令行工具与集成测试调用
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudmo/cloudmo-api/internal/models"
	"github.com/cloudmo/cloudmo-api/pkg/utils"
)

// APIError 表示服务端返回的业务错误
type APIError struct {
	Status  int    // HTTP 状态码
	Message string // 响应中的 message 字段
	Detail  string // 响应中的 error 字段，生产模式下可能为空
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error (status %d): %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// envelope 对应服务端统一的响应结构
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Page 对应分页列表响应，分页元信息与 items 平铺在同一层级
type Page[T any] struct {
	Items []T `json:"items"`
	utils.PaginationInfo
}

// LoginResult 对应登录成功的响应数据
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// HealthStatus 对应健康检查响应
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ListOptions 是列表类接口的通用查询参数，零值字段不会出现在请求中
type ListOptions struct {
	Page     int
	PageSize int
	Category string
	Keyword  string
	Status   string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Keyword != "" {
		q.Set("keyword", o.Keyword)
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	return q
}

// Client 是 cloudmo-api 的 HTTP 客户端，并发使用时不要在请求间修改 token
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option 用于定制 Client
type Option func(*Client)

// WithHTTPClient 替换底层的 http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken 以已有的 JWT 初始化客户端（例如从保存的会话恢复）
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New 创建一个指向 baseURL 的客户端，baseURL 形如 http://localhost:3000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token 返回当前持有的 JWT，未登录时为空串
func (c *Client) Token() string { return c.token }

// SetToken 设置后续请求携带的 JWT
func (c *Client) SetToken(token string) { c.token = token }

// do 发送一次请求并把 data 字段解码到 out（out 为 nil 时丢弃）
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("编码请求体失败: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "无法解析服务端响应"}
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("解码响应数据失败: %w", err)
		}
	}
	return nil
}

// Health 调用健康检查接口，该接口不走统一响应结构
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: "服务不可用"}
	}
	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Login 登录并在成功后把返回的 JWT 记入客户端
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Logout 调用退出接口并清除本地持有的 JWT
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me 获取当前登录用户信息
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword 修改当前登录用户的密码
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, http.MethodPut, "/api/auth/password", nil, body, nil)
}

// ListArticles 获取已发布文章列表（公开）
func (c *Client) ListArticles(ctx context.Context, opts ListOptions) (*Page[models.Article], error) {
	var page Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/api/articles", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetArticle 获取已发布文章详情（公开），idOrSlug 可以是数字 ID 或 slug
func (c *Client) GetArticle(ctx context.Context, idOrSlug string) (*models.Article, error) {
	var article models.Article
	if err := c.do(ctx, http.MethodGet, "/api/articles/"+url.PathEscape(idOrSlug), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListAllArticles 获取全部文章列表（管理员）
func (c *Client) ListAllArticles(ctx context.Context, opts ListOptions) (*Page[models.Article], error) {
	var page Page[models.Article]
	if err := c.do(ctx, http.MethodGet, "/api/admin/articles", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateArticle 创建文章（管理员）
func (c *Client) CreateArticle(ctx context.Context, input models.ArticleInput) (*models.Article, error) {
	var article models.Article
	if err := c.do(ctx, http.MethodPost, "/api/admin/articles", nil, input, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateArticle 更新文章（管理员）
func (c *Client) UpdateArticle(ctx context.Context, id uint, input models.ArticleInput) (*models.Article, error) {
	var article models.Article
	if err := c.do(ctx, http.MethodPut, adminPath("articles", id), nil, input, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// DeleteArticle 删除文章（仅 admin 角色）
func (c *Client) DeleteArticle(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, adminPath("articles", id), nil, nil, nil)
}

// ListNews 获取已发布新闻列表（公开）
func (c *Client) ListNews(ctx context.Context, opts ListOptions) (*Page[models.News], error) {
	var page Page[models.News]
	if err := c.do(ctx, http.MethodGet, "/api/news", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetNews 获取已发布新闻详情（公开）
func (c *Client) GetNews(ctx context.Context, idOrSlug string) (*models.News, error) {
	var news models.News
	if err := c.do(ctx, http.MethodGet, "/api/news/"+url.PathEscape(idOrSlug), nil, nil, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// ListAllNews 获取全部新闻列表（管理员）
func (c *Client) ListAllNews(ctx context.Context, opts ListOptions) (*Page[models.News], error) {
	var page Page[models.News]
	if err := c.do(ctx, http.MethodGet, "/api/admin/news", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateNews 创建新闻（管理员）
func (c *Client) CreateNews(ctx context.Context, input models.NewsInput) (*models.News, error) {
	var news models.News
	if err := c.do(ctx, http.MethodPost, "/api/admin/news", nil, input, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// UpdateNews 更新新闻（管理员）
func (c *Client) UpdateNews(ctx context.Context, id uint, input models.NewsInput) (*models.News, error) {
	var news models.News
	if err := c.do(ctx, http.MethodPut, adminPath("news", id), nil, input, &news); err != nil {
		return nil, err
	}
	return &news, nil
}

// DeleteNews 删除新闻（仅 admin 角色）
func (c *Client) DeleteNews(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, adminPath("news", id), nil, nil, nil)
}

// ListDocs 获取已发布文档列表（公开），返回平铺列表供调用方组装目录树
func (c *Client) ListDocs(ctx context.Context, category string) ([]models.Doc, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	var docs []models.Doc
	if err := c.do(ctx, http.MethodGet, "/api/docs", q, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDoc 获取已发布文档详情（公开）
func (c *Client) GetDoc(ctx context.Context, idOrSlug string) (*models.Doc, error) {
	var doc models.Doc
	if err := c.do(ctx, http.MethodGet, "/api/docs/"+url.PathEscape(idOrSlug), nil, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListAllDocs 获取全部文档列表（管理员）
func (c *Client) ListAllDocs(ctx context.Context, opts ListOptions) (*Page[models.Doc], error) {
	var page Page[models.Doc]
	if err := c.do(ctx, http.MethodGet, "/api/admin/docs", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateDoc 创建文档（管理员）
func (c *Client) CreateDoc(ctx context.Context, input models.DocInput) (*models.Doc, error) {
	var doc models.Doc
	if err := c.do(ctx, http.MethodPost, "/api/admin/docs", nil, input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDoc 更新文档（管理员）
func (c *Client) UpdateDoc(ctx context.Context, id uint, input models.DocInput) (*models.Doc, error) {
	var doc models.Doc
	if err := c.do(ctx, http.MethodPut, adminPath("docs", id), nil, input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDoc 删除文档（仅 admin 角色）
func (c *Client) DeleteDoc(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, adminPath("docs", id), nil, nil, nil)
}

// SubmitContact 提交联系表单（公开），返回新记录的 ID
func (c *Client) SubmitContact(ctx context.Context, input models.ContactInput) (uint, error) {
	var created struct {
		ID uint `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact", nil, input, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

// ListContacts 获取联系记录列表（管理员）
func (c *Client) ListContacts(ctx context.Context, opts ListOptions) (*Page[models.Contact], error) {
	var page Page[models.Contact]
	if err := c.do(ctx, http.MethodGet, "/api/admin/contacts", opts.query(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetContact 获取联系记录详情（管理员）
func (c *Client) GetContact(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := c.do(ctx, http.MethodGet, adminPath("contacts", id), nil, nil, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContactStatus 更新联系记录的处理状态（管理员）
func (c *Client) UpdateContactStatus(ctx context.Context, id uint, status string) (*models.Contact, error) {
	var contact models.Contact
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, adminPath("contacts", id), nil, body, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact 删除联系记录（仅 admin 角色）
func (c *Client) DeleteContact(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, adminPath("contacts", id), nil, nil, nil)
}

// PublicSettings 获取公开设置的扁平键值映射（公开）
func (c *Client) PublicSettings(ctx context.Context) (map[string]string, error) {
	var settings map[string]string
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// AllSettings 获取按分组嵌套的全部设置（管理员），group 非空时只取该分组
func (c *Client) AllSettings(ctx context.Context, group string) (map[string]map[string]string, error) {
	q := url.Values{}
	if group != "" {
		q.Set("group", group)
	}
	var settings map[string]map[string]string
	if err := c.do(ctx, http.MethodGet, "/api/admin/settings", q, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings 批量更新设置（管理员）
func (c *Client) UpdateSettings(ctx context.Context, inputs []models.SettingInput) error {
	return c.do(ctx, http.MethodPut, "/api/admin/settings", nil, inputs, nil)
}

// DeleteSetting 删除设置项（仅 admin 角色）
func (c *Client) DeleteSetting(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/settings/"+url.PathEscape(key), nil, nil, nil)
}

// adminPath 拼接后台资源的路径
func adminPath(resource string, id uint) string {
	return fmt.Sprintf("/api/admin/%s/%d", resource, id)
}
