package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/directory_lookup/internal/services"
	"github.com/directory_lookup/pkg/pagination"
	"github.com/directory_lookup/pkg/utils"
)

// DirectoryHandler 封装了目录查询相关的 HTTP 处理逻辑
type DirectoryHandler struct {
	service services.DirectoryService
	pageCfg pagination.Config
	baseURL string
}

// NewDirectoryHandler 创建一个新的 DirectoryHandler 实例。
// baseURL 用于拼装分页链接的绝对地址，来自应用配置。
func NewDirectoryHandler(service services.DirectoryService, pageCfg pagination.Config, baseURL string) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		pageCfg: pageCfg,
		baseURL: baseURL,
	}
}

// SearchDirectory godoc
// @Summary 搜索目录条目
// @Description 按关键词搜索目录（匹配姓名、邮箱、账号），返回 JSON:API 风格的分页结果。分页参数采用 page[number]/page[size] 约定，非法值静默回退默认值。
// @Tags Directory
// @Accept json
// @Produce json
// @Param q query string true "搜索关键词"
// @Param type query string false "条目类型过滤，原样透传到分页链接"
// @Param page[number] query int false "页码" default(1)
// @Param page[size] query int false "每页数量" default(10)
// @Success 200 {object} SearchResponse "搜索结果，含 self/first/last/prev/next 导航链接"
// @Failure 400 {object} utils.APIErrorResponse "缺少搜索关键词"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "目录后端故障"
// @Router /directory [get]
// @Security BearerAuth
func (h *DirectoryHandler) SearchDirectory(c *gin.Context) {
	// 空查询直接拒绝，不触达目录后端
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.RespondValidationError(c, "查询参数 q 不能为空")
		return
	}
	entryType := c.Query("type")

	params := c.Request.URL.Query()
	pageNumber := h.pageCfg.PageNumber(params)
	pageSize := h.pageCfg.PageSize(params)
	// 解析层对负值和零保持宽容，这里统一钳回默认值
	if pageNumber <= 0 {
		pageNumber = h.pageCfg.DefaultPageNumber
	}
	if pageSize <= 0 {
		pageSize = h.pageCfg.DefaultPageSize
	}

	entries, totalHits, err := h.service.SearchEntries(q, pageNumber, pageSize)
	if err != nil {
		utils.RespondInternalServerError(c, "目录搜索失败", err.Error())
		return
	}

	data := make([]ResourceObject, 0, len(entries))
	for _, entry := range entries {
		data = append(data, newResourceObject(entry))
	}

	links := pagination.BuildLinks(pagination.LinkParams{
		TotalHits:  totalHits,
		Query:      q,
		Type:       entryType,
		BaseURL:    h.baseURL,
		Path:       c.Request.URL.Path,
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})

	utils.RespondJSON(c, http.StatusOK, SearchResponse{Links: links, Data: data})
}

// GetEntryByID godoc
// @Summary 获取指定 ID 的目录条目
// @Description 根据路径参数中的数字 ID 获取单个目录条目。
// @Tags Directory
// @Accept json
// @Produce json
// @Param id path int true "条目数字 ID (uidNumber)"
// @Success 200 {object} EntryResponse "条目详情，links 恒为 null"
// @Failure 400 {object} utils.APIErrorResponse "ID 不是合法数字"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "条目不存在"
// @Failure 500 {object} utils.APIErrorResponse "目录后端故障"
// @Router /directory/{id} [get]
// @Security BearerAuth
func (h *DirectoryHandler) GetEntryByID(c *gin.Context) {
	idStr := c.Param("id")
	if !utils.IsNumeric(idStr) {
		utils.RespondValidationError(c, "条目 ID 必须是数字")
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondValidationError(c, "条目 ID 超出数值范围")
		return
	}

	entry, err := h.service.GetEntryByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			utils.RespondNotFoundError(c, "目录条目")
		} else {
			utils.RespondInternalServerError(c, "获取目录条目失败", err.Error())
		}
		return
	}

	utils.RespondJSON(c, http.StatusOK, EntryResponse{Data: newResourceObject(*entry)})
}
