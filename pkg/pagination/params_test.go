package pagination

import (
	"net/url"
	"testing"
)

func TestGetArrayParameter(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		index  string
		params url.Values
		want   string
		wantOK bool
	}{
		{
			name:   "无方括号键时返回缺失",
			key:    "page",
			index:  "number",
			params: url.Values{"page": {"3"}, "q": {"smith"}},
			wantOK: false,
		},
		{
			name:   "标准的 page[number] 提取",
			key:    "page",
			index:  "number",
			params: url.Values{"page[number]": {"3"}},
			want:   "3",
			wantOK: true,
		},
		{
			name:   "index 不匹配",
			key:    "page",
			index:  "size",
			params: url.Values{"page[number]": {"3"}},
			wantOK: false,
		},
		{
			name:   "key 前缀必须精确匹配",
			key:    "page",
			index:  "number",
			params: url.Values{"xpage[number]": {"3"}},
			wantOK: false,
		},
		{
			name:   "方括号顺序颠倒视为结构不成立",
			key:    "page",
			index:  "number",
			params: url.Values{"page]number[": {"3"}},
			wantOK: false,
		},
		{
			name:   "大小写敏感",
			key:    "page",
			index:  "number",
			params: url.Values{"Page[Number]": {"3"}},
			wantOK: false,
		},
		{
			name:   "多值条目只取第一个值",
			key:    "page",
			index:  "size",
			params: url.Values{"page[size]": {"20", "50"}},
			want:   "20",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetArrayParameter(tt.key, tt.index, tt.params)
			if ok != tt.wantOK {
				t.Fatalf("GetArrayParameter(%q, %q) ok = %v, want %v", tt.key, tt.index, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("GetArrayParameter(%q, %q) = %q, want %q", tt.key, tt.index, got, tt.want)
			}
		})
	}
}

func TestPageNumberFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		params url.Values
		want   int
	}{
		{"参数缺失", url.Values{}, 1},
		{"空字符串", url.Values{"page[number]": {""}}, 1},
		{"非数字", url.Values{"page[number]": {"abc"}}, 1},
		{"合法值", url.Values{"page[number]": {"3"}}, 3},
		// 负值能解析为整数，解析层不拒绝，由处理器钳制
		{"负值原样返回", url.Values{"page[number]": {"-2"}}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.PageNumber(tt.params); got != tt.want {
				t.Errorf("PageNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageSizeFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		params url.Values
		want   int
	}{
		{"参数缺失", url.Values{}, 10},
		{"空字符串", url.Values{"page[size]": {""}}, 10},
		{"非数字", url.Values{"page[size]": {"ten"}}, 10},
		{"合法值", url.Values{"page[size]": {"25"}}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.PageSize(tt.params); got != tt.want {
				t.Errorf("PageSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPageDefaultsAreConfigurable(t *testing.T) {
	cfg := Config{DefaultPageNumber: 2, DefaultPageSize: 50}

	if got := cfg.PageNumber(url.Values{}); got != 2 {
		t.Errorf("PageNumber() = %d, want 2", got)
	}
	if got := cfg.PageSize(url.Values{"page[size]": {"x"}}); got != 50 {
		t.Errorf("PageSize() = %d, want 50", got)
	}
}
