package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	pageKey        = "page"
	pageNumberName = "number"
	pageSizeName   = "size"
)

// Config 保存分页参数的默认值。
// 默认值由 configs 包从环境变量装配后注入，不使用包级全局状态。
type Config struct {
	DefaultPageNumber int
	DefaultPageSize   int
}

// DefaultConfig 返回规范默认值：第 1 页，每页 10 条。
func DefaultConfig() Config {
	return Config{DefaultPageNumber: 1, DefaultPageSize: 10}
}

// GetArrayParameter 从扁平的查询参数表中提取形如 key[index]=value 的嵌套参数。
// 只考察原始键中同时包含 "[" 和 "]" 的条目，其余条目直接跳过（不视为错误）。
// 以第一个 "[" 之前的子串匹配 key，第一个 "[" 和第一个 "]" 之间的子串匹配 index，
// 两者均为大小写敏感的精确匹配。第一个满足条件的条目胜出，多值条目只取第一个值。
// 没有条目匹配时返回 ("", false)，调用方据此回退默认值。
func GetArrayParameter(key, index string, params url.Values) (string, bool) {
	for rawKey, values := range params {
		open := strings.IndexByte(rawKey, '[')
		if open < 0 {
			continue
		}
		closing := strings.IndexByte(rawKey, ']')
		if closing < open {
			// 不含 "]" 或 "]" 出现在 "[" 之前，结构不成立
			continue
		}
		if rawKey[:open] != key || rawKey[open+1:closing] != index {
			continue
		}
		if len(values) == 0 {
			continue
		}
		return values[0], true
	}
	return "", false
}

// PageNumber 解析 page[number] 参数。
// 参数缺失、为空或无法解析为整数时静默回退到默认页码，绝不报错。
// 负值和零不在此处拒绝，由调用方决定是否钳制。
func (c Config) PageNumber(params url.Values) int {
	raw, ok := GetArrayParameter(pageKey, pageNumberName, params)
	if !ok {
		return c.DefaultPageNumber
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return c.DefaultPageNumber
	}
	return n
}

// PageSize 解析 page[size] 参数，回退逻辑与 PageNumber 相同，默认每页条数。
func (c Config) PageSize(params url.Values) int {
	raw, ok := GetArrayParameter(pageKey, pageSizeName, params)
	if !ok {
		return c.DefaultPageSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return c.DefaultPageSize
	}
	return n
}
