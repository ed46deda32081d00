package services

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/directory_lookup/internal/models"
	"github.com/directory_lookup/internal/repositories"
)

// ErrEntryNotFound 表示目录条目未找到的错误 (服务层错误)
var ErrEntryNotFound = errors.New("目录条目未找到")

// DirectoryService 定义了目录查询服务的接口
type DirectoryService interface {
	// SearchEntries 搜索目录并返回当前页的条目窗口和命中总数
	SearchEntries(query string, page, size int) ([]models.DirectoryEntry, int64, error)
	// GetEntryByID 按数字 ID 查询单个条目
	GetEntryByID(id int64) (*models.DirectoryEntry, error)
}

// directoryService 是 DirectoryService 的实现
type directoryService struct {
	repo repositories.DirectoryRepository
}

// NewDirectoryService 创建一个新的 directoryService 实例
func NewDirectoryService(repo repositories.DirectoryRepository) DirectoryService {
	return &directoryService{repo: repo}
}

// normalizeQuery 按目录字符串预处理惯例做 Unicode NFC 归一化并去除首尾空白，
// 保证同一查询的不同编码形式命中同一批条目。
func normalizeQuery(q string) string {
	return norm.NFC.String(strings.TrimSpace(q))
}

// SearchEntries 委托仓库取回全部命中，再按 page/size 切出当前窗口。
// 页码超出范围时返回空窗口，但命中总数保持真实值，分页链接仍可渲染。
func (s *directoryService) SearchEntries(query string, page, size int) ([]models.DirectoryEntry, int64, error) {
	entries, err := s.repo.SearchEntries(normalizeQuery(query))
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(entries))
	start := (page - 1) * size
	if start < 0 || start >= len(entries) {
		return []models.DirectoryEntry{}, total, nil
	}
	end := start + size
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], total, nil
}

// GetEntryByID 委托仓库按 ID 查询，把仓库层的未找到错误转换为服务层错误
func (s *directoryService) GetEntryByID(id int64) (*models.DirectoryEntry, error) {
	entry, err := s.repo.GetEntryByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrEntryNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}
