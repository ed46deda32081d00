package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/directory_lookup/internal/models"
	"github.com/directory_lookup/internal/repositories"
)

// fakeDirectoryRepository 记录收到的查询并返回预设结果
type fakeDirectoryRepository struct {
	entries   []models.DirectoryEntry
	entry     *models.DirectoryEntry
	err       error
	lastQuery string
}

func (f *fakeDirectoryRepository) SearchEntries(query string) ([]models.DirectoryEntry, error) {
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *fakeDirectoryRepository) GetEntryByID(id int64) (*models.DirectoryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entry, nil
}

func makeEntries(n int) []models.DirectoryEntry {
	entries := make([]models.DirectoryEntry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, models.DirectoryEntry{
			ID: int64(i),
			DN: fmt.Sprintf("uid=user%d,ou=people,dc=example,dc=org", i),
		})
	}
	return entries
}

func TestSearchEntriesWindowing(t *testing.T) {
	repo := &fakeDirectoryRepository{entries: makeEntries(25)}
	svc := NewDirectoryService(repo)

	tests := []struct {
		name      string
		page      int
		size      int
		wantLen   int
		wantFirst int64
	}{
		{"第一页", 1, 10, 10, 1},
		{"中间页", 2, 10, 10, 11},
		{"最后一页不满", 3, 10, 5, 21},
		{"页码越界返回空窗口", 4, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, total, err := svc.SearchEntries("smith", tt.page, tt.size)
			if err != nil {
				t.Fatalf("SearchEntries() error = %v", err)
			}
			if total != 25 {
				t.Errorf("total = %d, want 25", total)
			}
			if len(entries) != tt.wantLen {
				t.Fatalf("len(entries) = %d, want %d", len(entries), tt.wantLen)
			}
			if tt.wantLen > 0 && entries[0].ID != tt.wantFirst {
				t.Errorf("entries[0].ID = %d, want %d", entries[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestSearchEntriesNormalizesQuery(t *testing.T) {
	repo := &fakeDirectoryRepository{entries: makeEntries(1)}
	svc := NewDirectoryService(repo)

	if _, _, err := svc.SearchEntries("  smith  ", 1, 10); err != nil {
		t.Fatalf("SearchEntries() error = %v", err)
	}
	if repo.lastQuery != "smith" {
		t.Errorf("repository received query %q, want %q", repo.lastQuery, "smith")
	}
}

func TestSearchEntriesPropagatesBackendError(t *testing.T) {
	backendErr := fmt.Errorf("%w: connection refused", repositories.ErrDirectoryUnavailable)
	repo := &fakeDirectoryRepository{err: backendErr}
	svc := NewDirectoryService(repo)

	_, _, err := svc.SearchEntries("smith", 1, 10)
	if !errors.Is(err, repositories.ErrDirectoryUnavailable) {
		t.Errorf("SearchEntries() error = %v, want ErrDirectoryUnavailable", err)
	}
}

func TestGetEntryByIDConvertsNotFound(t *testing.T) {
	repo := &fakeDirectoryRepository{err: repositories.ErrEntryNotFound}
	svc := NewDirectoryService(repo)

	_, err := svc.GetEntryByID(42)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("GetEntryByID() error = %v, want services.ErrEntryNotFound", err)
	}
}

func TestGetEntryByIDSuccess(t *testing.T) {
	want := &models.DirectoryEntry{ID: 7, DN: "uid=user7,ou=people,dc=example,dc=org"}
	repo := &fakeDirectoryRepository{entry: want}
	svc := NewDirectoryService(repo)

	got, err := svc.GetEntryByID(7)
	if err != nil {
		t.Fatalf("GetEntryByID() error = %v", err)
	}
	if got.ID != 7 {
		t.Errorf("entry.ID = %d, want 7", got.ID)
	}
}
