package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/directory_lookup/internal/models"
	"github.com/directory_lookup/internal/repositories"
	"github.com/directory_lookup/internal/services"
	"github.com/directory_lookup/pkg/pagination"
)

// fakeDirectoryService 返回预设结果并记录是否被调用
type fakeDirectoryService struct {
	entries      []models.DirectoryEntry
	total        int64
	searchErr    error
	entry        *models.DirectoryEntry
	getErr       error
	searchCalled bool
	getCalled    bool
}

func (f *fakeDirectoryService) SearchEntries(query string, page, size int) ([]models.DirectoryEntry, int64, error) {
	f.searchCalled = true
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.entries, f.total, nil
}

func (f *fakeDirectoryService) GetEntryByID(id int64) (*models.DirectoryEntry, error) {
	f.getCalled = true
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entry, nil
}

func setupTestRouter(svc services.DirectoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDirectoryHandler(svc, pagination.DefaultConfig(), "http://localhost:8080")

	router := gin.New()
	router.GET("/api/v1/directory", h.SearchDirectory)
	router.GET("/api/v1/directory/:id", h.GetEntryByID)
	return router
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearchDirectoryRejectsEmptyQuery(t *testing.T) {
	fake := &fakeDirectoryService{}
	router := setupTestRouter(fake)

	for _, path := range []string{
		"/api/v1/directory",
		"/api/v1/directory?q=",
		"/api/v1/directory?q=%20%20",
	} {
		w := doRequest(router, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusBadRequest)
		}
	}
	// 空查询绝不触达目录后端
	if fake.searchCalled {
		t.Error("SearchEntries was called for an empty query")
	}
}

func TestSearchDirectoryBuildsLinks(t *testing.T) {
	fake := &fakeDirectoryService{
		entries: []models.DirectoryEntry{{ID: 11, DN: "uid=user11,ou=people,dc=example,dc=org"}},
		total:   25,
	}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory?q=smith&page%5Bnumber%5D=2&page%5Bsize%5D=10")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if resp.Links == nil {
		t.Fatal("links = null, want link set")
	}
	if resp.Links.Prev == nil || !strings.Contains(*resp.Links.Prev, "page[number]=1") {
		t.Errorf("prev = %v, want page[number]=1", resp.Links.Prev)
	}
	if resp.Links.Next == nil || !strings.Contains(*resp.Links.Next, "page[number]=3") {
		t.Errorf("next = %v, want page[number]=3", resp.Links.Next)
	}
	if resp.Links.Last == nil || !strings.Contains(*resp.Links.Last, "page[number]=3") {
		t.Errorf("last = %v, want page[number]=3", resp.Links.Last)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != 11 || resp.Data[0].Type != "directory" {
		t.Errorf("data = %+v, want one directory resource with id 11", resp.Data)
	}
}

func TestSearchDirectoryZeroHitsHasNullLinks(t *testing.T) {
	fake := &fakeDirectoryService{entries: []models.DirectoryEntry{}, total: 0}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory?q=nobody")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if string(raw["links"]) != "null" {
		t.Errorf("links = %s, want null", raw["links"])
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("data = %s, want []", raw["data"])
	}
}

func TestSearchDirectoryInvalidPagingFallsBack(t *testing.T) {
	// 非法分页参数静默回退默认值，self 链接反映实际使用的值
	fake := &fakeDirectoryService{entries: []models.DirectoryEntry{}, total: 5}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory?q=smith&page%5Bnumber%5D=abc&page%5Bsize%5D=")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if resp.Links == nil || resp.Links.Self == nil {
		t.Fatal("self link missing")
	}
	if !strings.Contains(*resp.Links.Self, "page[number]=1") || !strings.Contains(*resp.Links.Self, "page[size]=10") {
		t.Errorf("self = %q, want defaults page[number]=1 page[size]=10", *resp.Links.Self)
	}
}

func TestSearchDirectoryBackendError(t *testing.T) {
	fake := &fakeDirectoryService{
		searchErr: fmt.Errorf("%w: connection refused", repositories.ErrDirectoryUnavailable),
	}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory?q=smith")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("body = %s, want underlying backend message", w.Body.String())
	}
}

func TestGetEntryByIDRejectsNonNumericID(t *testing.T) {
	fake := &fakeDirectoryService{}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if fake.getCalled {
		t.Error("GetEntryByID was called for a non-numeric id")
	}
}

func TestGetEntryByIDNotFound(t *testing.T) {
	fake := &fakeDirectoryService{getErr: services.ErrEntryNotFound}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory/42")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if _, hasData := raw["data"]; hasData {
		t.Error("not-found response must not carry envelope data")
	}
}

func TestGetEntryByIDSuccess(t *testing.T) {
	fake := &fakeDirectoryService{
		entry: &models.DirectoryEntry{
			ID: 7,
			DN: "uid=user7,ou=people,dc=example,dc=org",
			Attributes: map[string][]string{
				"cn":   {"User Seven"},
				"mail": {"user7@example.org"},
			},
		},
	}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp EntryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if resp.Links != nil {
		t.Errorf("links = %+v, want null for by-id lookup", resp.Links)
	}
	if resp.Data.ID != 7 || resp.Data.Type != "directory" {
		t.Errorf("data = %+v, want directory resource with id 7", resp.Data)
	}
}

func TestGetEntryByIDBackendError(t *testing.T) {
	fake := &fakeDirectoryService{
		getErr: fmt.Errorf("%w: bind failed", repositories.ErrDirectoryUnavailable),
	}
	router := setupTestRouter(fake)

	w := doRequest(router, "/api/v1/directory/7")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if !strings.Contains(w.Body.String(), "bind failed") {
		t.Errorf("body = %s, want underlying backend message", w.Body.String())
	}
}
