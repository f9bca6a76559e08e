package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\p{Han}]+`)
	slugEdgeDashes   = regexp.MustCompile(`^-+|-+$`)

	// 去除重音符号：NFD 分解后剔除组合记号，再合成回 NFC
	slugTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// GenerateSlug 从标题生成 URL 友好的 slug。
// 带重音的拉丁字符会被转写为基本字母，其余非字母数字字符折叠为连字符。
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if normalized, _, err := transform.String(slugTransformer, s); err == nil {
		s = normalized
	}
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugEdgeDashes.ReplaceAllString(s, "")
	return s
}

// GenerateUniqueSlug 在 GenerateSlug 的结果上追加时间戳后缀，用于未显式指定
// slug 时消除同名标题的冲突。
func GenerateUniqueSlug(title string) string {
	base := GenerateSlug(title)
	suffix := fmt.Sprintf("%d", time.Now().UnixMilli())
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
