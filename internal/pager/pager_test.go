package pager

import (
	"testing"
)

func ids(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1000 + i
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		perPage  int
		expected int
	}{
		{name: "empty", total: 0, perPage: 20, expected: 0},
		{name: "partial page", total: 5, perPage: 20, expected: 1},
		{name: "exact fit", total: 40, perPage: 20, expected: 2},
		{name: "one over", total: 41, perPage: 20, expected: 3},
		{name: "default per page", total: 25, perPage: 0, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TotalPages(tt.total, tt.perPage)
			if result != tt.expected {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, result, tt.expected)
			}
		})
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		page      int
		perPage   int
		wantLen   int
		wantFirst int
		wantPages int
	}{
		{name: "first page caps at 20", items: 25, page: 1, perPage: 20, wantLen: 20, wantFirst: 1000, wantPages: 2},
		{name: "second page holds the rest", items: 25, page: 2, perPage: 20, wantLen: 5, wantFirst: 1020, wantPages: 2},
		{name: "page past the end", items: 25, page: 3, perPage: 20, wantLen: 0, wantPages: 2},
		{name: "page below one", items: 3, page: 0, perPage: 20, wantLen: 3, wantFirst: 1000, wantPages: 1},
		{name: "empty input", items: 0, page: 1, perPage: 20, wantLen: 0, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := Page(ids(tt.items), tt.page, tt.perPage)
			if len(got) != tt.wantLen {
				t.Fatalf("Page() returned %d items, want %d", len(got), tt.wantLen)
			}
			if tt.wantLen > 0 && got[0] != tt.wantFirst {
				t.Errorf("Page() first item = %d, want %d", got[0], tt.wantFirst)
			}
			if meta.TotalPages != tt.wantPages {
				t.Errorf("Page() total pages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.Total != tt.items {
				t.Errorf("Page() total = %d, want %d", meta.Total, tt.items)
			}
		})
	}
}
