package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{"标题", "# Hello", "<h1>Hello</h1>"},
		{"加粗", "**bold**", "<strong>bold</strong>"},
		{"链接", "[link](https://example.com)", `<a href="https://example.com">link</a>`},
		{"GFM删除线", "~~gone~~", "<del>gone</del>"},
		{"中文正文", "云计算", "云计算"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.source)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("RenderMarkdown(%q) = %q, 应包含 %q", tt.source, got, tt.contains)
			}
		})
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	// GFM 表格扩展
	source := "| a | b |\n| - | - |\n| 1 | 2 |"
	got := RenderMarkdown(source)
	if !strings.Contains(got, "<table>") {
		t.Errorf("RenderMarkdown 未渲染 GFM 表格, got %q", got)
	}
}
