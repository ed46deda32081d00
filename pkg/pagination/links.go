package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// LinkSet 对应 JSON:API 响应中的 links 对象。
// prev/next 在边界页显式序列化为 null，self/first/last 总是存在。
type LinkSet struct {
	Self  *string `json:"self"`
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// LinkParams 是一次链接计算所需的全部输入，按请求构造，不跨请求复用。
// PageNumber 和 PageSize 必须为正值，由处理器在调用前钳制。
type LinkParams struct {
	TotalHits  int64
	Query      string
	Type       string
	BaseURL    string
	Path       string
	PageNumber int
	PageSize   int
}

// BuildLinks 根据命中总数与当前页计算 self/first/last/prev/next 五个导航链接。
// TotalHits 为 0 时不产生任何链接，返回 nil（外层序列化为 links: null）。
//
// lastPage = ceil(TotalHits / PageSize)；
// prev 仅在 PageNumber > 1 时存在；
// next 仅在 PageNumber * PageSize < TotalHits 时存在。
func BuildLinks(p LinkParams) *LinkSet {
	if p.TotalHits <= 0 {
		return nil
	}

	lastPage := int(math.Ceil(float64(p.TotalHits) / float64(p.PageSize)))

	links := &LinkSet{
		Self:  p.pageURL(p.PageNumber),
		First: p.pageURL(1),
		Last:  p.pageURL(lastPage),
	}
	if p.PageNumber > 1 {
		links.Prev = p.pageURL(p.PageNumber - 1)
	}
	if int64(p.PageNumber)*int64(p.PageSize) < p.TotalHits {
		links.Next = p.pageURL(p.PageNumber + 1)
	}
	return links
}

// pageURL 以规范参数顺序 q、type、page[size]、page[number] 序列化查询串，
// 空的 q/type 直接省略。page 参数沿用带方括号的键名，
// 保证产出的链接能被 GetArrayParameter 原样解析回同一组分页参数。
func (p LinkParams) pageURL(number int) *string {
	pairs := make([]string, 0, 4)
	if p.Query != "" {
		pairs = append(pairs, "q="+url.QueryEscape(p.Query))
	}
	if p.Type != "" {
		pairs = append(pairs, "type="+url.QueryEscape(p.Type))
	}
	pairs = append(pairs,
		"page[size]="+strconv.Itoa(p.PageSize),
		"page[number]="+strconv.Itoa(number),
	)
	u := p.BaseURL + p.Path + "?" + strings.Join(pairs, "&")
	return &u
}
