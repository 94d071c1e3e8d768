package dto

import "testing"

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name                  string
		page, pageSize, total int
		want                  PageMeta
	}{
		{"exact pages", 1, 10, 30, PageMeta{Page: 1, PageSize: 10, Total: 30, TotalPages: 3}},
		{"partial last page", 2, 10, 31, PageMeta{Page: 2, PageSize: 10, Total: 31, TotalPages: 4}},
		{"zero page size normalized", 1, 0, 5, PageMeta{Page: 1, PageSize: 20, Total: 5, TotalPages: 1}},
		{"zero page normalized", 0, 20, 0, PageMeta{Page: 1, PageSize: 20, Total: 0, TotalPages: 0}},
		{"negative inputs normalized", -2, -7, 45, PageMeta{Page: 1, PageSize: 20, Total: 45, TotalPages: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPageMeta(tt.page, tt.pageSize, tt.total)
			if *got != tt.want {
				t.Errorf("NewPageMeta(%d, %d, %d) = %+v, want %+v",
					tt.page, tt.pageSize, tt.total, *got, tt.want)
			}
		})
	}
}
