package handlers

import (
	"github.com/directory_lookup/internal/models"
	"github.com/directory_lookup/pkg/pagination"
)

// resourceTypeDirectory 是目录资源对象的固定 type 值
const resourceTypeDirectory = "directory"

// ResourceObject 定义了 JSON:API 风格的资源对象 { id, type, attributes }
type ResourceObject struct {
	ID         int64       `json:"id"`
	Type       string      `json:"type"`
	Attributes interface{} `json:"attributes"`
}

// SearchResponse 定义了搜索接口的外层结构。
// links 在零命中时为 null，data 总是数组（可能为空）。
type SearchResponse struct {
	Links *pagination.LinkSet `json:"links"`
	Data  []ResourceObject    `json:"data"`
}

// EntryResponse 定义了按 ID 查询的外层结构，links 恒为 null
type EntryResponse struct {
	Links *pagination.LinkSet `json:"links"`
	Data  ResourceObject      `json:"data"`
}

// newResourceObject 把目录条目包装为资源对象
func newResourceObject(entry models.DirectoryEntry) ResourceObject {
	return ResourceObject{
		ID:         entry.ID,
		Type:       resourceTypeDirectory,
		Attributes: entry,
	}
}
