package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"英文标题", "Hello World", "hello-world"},
		{"大写转小写", "Go Web Development", "go-web-development"},
		{"重音字符转写", "Café au Lait", "cafe-au-lait"},
		{"中文字符保留", "云计算入门", "云计算入门"},
		{"中英混排", "Go 语言实战", "go-语言实战"},
		{"特殊字符折叠为连字符", "What's New? (2024)", "what-s-new-2024"},
		{"首尾连字符去除", "  --- Hello ---  ", "hello"},
		{"连续空白折叠", "a   b", "a-b"},
		{"空标题", "", ""},
		{"纯符号", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.title); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGenerateUniqueSlug(t *testing.T) {
	slug := GenerateUniqueSlug("Hello World")
	if !strings.HasPrefix(slug, "hello-world-") {
		t.Errorf("GenerateUniqueSlug(%q) = %q, 应以 %q 为前缀", "Hello World", slug, "hello-world-")
	}

	// 空标题退化为纯时间戳
	if got := GenerateUniqueSlug(""); got == "" || strings.HasPrefix(got, "-") {
		t.Errorf("GenerateUniqueSlug(\"\") = %q, 不应为空或以连字符开头", got)
	}
}
