package repositories

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-ldap/ldap/v3"

	"github.com/directory_lookup/internal/models"
)

// ErrEntryNotFound 表示按 ID 查询时目录中没有对应条目
var ErrEntryNotFound = errors.New("目录条目不存在")

// ErrDirectoryUnavailable 表示目录后端连接、绑定或协议层故障
var ErrDirectoryUnavailable = errors.New("目录后端不可用")

// DirectoryRepository 定义了目录数据仓库的接口
type DirectoryRepository interface {
	SearchEntries(query string) ([]models.DirectoryEntry, error)
	GetEntryByID(id int64) (*models.DirectoryEntry, error)
}

// LDAPConfig 保存目录后端的连接参数
type LDAPConfig struct {
	URL          string // 例如 ldap://localhost:389
	BindDN       string
	BindPassword string
	BaseDN       string
}

// searchAttributes 是返回给调用方的目录属性集合
var searchAttributes = []string{
	"uidNumber", "uid", "cn", "sn", "mail",
	"telephoneNumber", "ou", "title",
}

// ldapDirectoryRepository 是 DirectoryRepository 的 LDAP 实现。
// 每次操作独立建连与绑定，不维护连接池。
type ldapDirectoryRepository struct {
	cfg LDAPConfig
}

// NewLDAPDirectoryRepository 创建一个新的 ldapDirectoryRepository 实例
func NewLDAPDirectoryRepository(cfg LDAPConfig) DirectoryRepository {
	return &ldapDirectoryRepository{cfg: cfg}
}

// connect 建立连接并用服务账号绑定，失败一律归入 ErrDirectoryUnavailable
func (r *ldapDirectoryRepository) connect() (*ldap.Conn, error) {
	conn, err := ldap.DialURL(r.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	if err := conn.Bind(r.cfg.BindDN, r.cfg.BindPassword); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	return conn, nil
}

// SearchEntries 在配置的 BaseDN 子树下做子串搜索，匹配 cn、mail、uid 三个属性。
// 查询串先经 ldap.EscapeFilter 转义，防止过滤器注入。
func (r *ldapDirectoryRepository) SearchEntries(query string) ([]models.DirectoryEntry, error) {
	conn, err := r.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	escaped := ldap.EscapeFilter(query)
	filter := fmt.Sprintf(
		"(&(objectClass=inetOrgPerson)(|(cn=*%s*)(mail=*%s*)(uid=*%s*)))",
		escaped, escaped, escaped,
	)
	req := ldap.NewSearchRequest(
		r.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 0, 0, false,
		filter, searchAttributes, nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	entries := make([]models.DirectoryEntry, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, mapEntry(e))
	}
	return entries, nil
}

// GetEntryByID 按 uidNumber 精确查询单个条目，零命中返回 ErrEntryNotFound
func (r *ldapDirectoryRepository) GetEntryByID(id int64) (*models.DirectoryEntry, error) {
	conn, err := r.connect()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	filter := fmt.Sprintf("(&(objectClass=inetOrgPerson)(uidNumber=%d))", id)
	req := ldap.NewSearchRequest(
		r.cfg.BaseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		filter, searchAttributes, nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		// SizeLimit=1 时部分服务器会对多余命中返回 SizeLimitExceeded，
		// 已取回的条目仍然可用，不算后端故障
		if !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
		}
	}
	if res == nil || len(res.Entries) == 0 {
		return nil, ErrEntryNotFound
	}

	entry := mapEntry(res.Entries[0])
	return &entry, nil
}

// mapEntry 把 LDAP 条目转换为领域模型。uidNumber 缺失或非数字时 ID 为 0。
func mapEntry(e *ldap.Entry) models.DirectoryEntry {
	attrs := make(map[string][]string, len(e.Attributes))
	for _, a := range e.Attributes {
		attrs[a.Name] = a.Values
	}
	id, _ := strconv.ParseInt(e.GetAttributeValue("uidNumber"), 10, 64)
	return models.DirectoryEntry{
		ID:         id,
		DN:         e.DN,
		Attributes: attrs,
	}
}
