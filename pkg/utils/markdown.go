package utils

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// RenderMarkdown 将 Markdown 内容渲染为 HTML。
// 渲染失败时返回原文，详情接口宁可降级也不报错。
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		log.Printf("Markdown 渲染失败: %v", err)
		return source
	}
	return buf.String()
}
