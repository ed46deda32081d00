package utils

import "unicode"

// IsNumeric 检查字符串是否只包含数字。
// 用于路径中的条目 ID 校验，空字符串不视为数字。
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
