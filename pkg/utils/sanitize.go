package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// 公开表单入库前剥离全部 HTML，联系内容按纯文本对待
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML 去除字符串中的所有 HTML 标签并裁剪首尾空白。
func StripHTML(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
