package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/foremanhq/foreman/pkg/pagination"
)

func testConfig() pagination.Config {
	return pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values get defaults", 0, 0, 1, 20},
		{"valid values unchanged", 3, 50, 3, 50},
		{"oversized page size clamped", 1, 500, 1, 100},
		{"negative page floored", -2, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig())

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "deck")
	values.Set("sort", "-created_at")

	req := pagination.PageRequestFromQuery(values, testConfig())

	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("page = %d, page_size = %d", req.Page, req.PageSize)
	}
	if req.Search == nil || *req.Search != "deck" {
		t.Errorf("Search = %v", req.Search)
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "created_at" || !req.Sort[0].Descending {
		t.Errorf("Sort = %+v", req.Sort)
	}
	if req.Offset() != 10 {
		t.Errorf("Offset() = %d, want 10", req.Offset())
	}
}

func TestSortFieldsUnmarshalString(t *testing.T) {
	var req pagination.PageRequest
	if err := json.Unmarshal([]byte(`{"sort": "name,-updated_at"}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if len(req.Sort) != 2 {
		t.Fatalf("sort count = %d, want 2", len(req.Sort))
	}
	if req.Sort[1].Field != "updated_at" || !req.Sort[1].Descending {
		t.Errorf("Sort[1] = %+v", req.Sort[1])
	}
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult([]string{"a", "b"}, 45, 2, 20)

	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
	if result.Total != 45 || result.Page != 2 || result.PageSize != 20 {
		t.Errorf("result = %+v", result)
	}
}

func TestNewPageResultEmpty(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 20)

	if result.Data == nil {
		t.Error("Data is nil, want empty slice")
	}
	if result.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", result.TotalPages)
	}
}
