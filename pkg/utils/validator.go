package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmailFormat 校验邮箱格式。
func ValidateEmailFormat(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
