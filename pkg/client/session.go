package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudmo/cloudmo-api/internal/models"
)

// ErrNoSession 表示本地没有已保存的登录会话
var ErrNoSession = errors.New("未找到已保存的登录会话，请先登录")

// Session 是持久化到本地文件的登录状态
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// SessionStore 把登录会话读写到一个本地 JSON 文件，
// 作用等同于浏览器端存放 token 的 localStorage
type SessionStore struct {
	path string
}

// NewSessionStore 创建一个以 path 为存储文件的 SessionStore
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// DefaultSessionPath 返回默认的会话文件路径 (~/.cloudmo/session.json)
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cloudmo-session.json"
	}
	return filepath.Join(home, ".cloudmo", "session.json")
}

// Save 写入会话文件，文件权限限制为当前用户可读写
func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("创建会话目录失败: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("保存会话失败: %w", err)
	}
	return nil
}

// Load 读取会话文件，文件不存在或没有 token 时返回 ErrNoSession
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("读取会话失败: %w", err)
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("会话文件已损坏: %w", err)
	}
	if session.Token == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Clear 删除会话文件，文件不存在视为成功
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
