package models

// DirectoryEntry 表示目录后端返回的一条人员/组织记录。
// ID 取自条目的 uidNumber 属性；Attributes 保留 LDAP 的多值属性语义。
type DirectoryEntry struct {
	ID         int64               `json:"id"`
	DN         string              `json:"dn"`
	Attributes map[string][]string `json:"attributes"`
}
