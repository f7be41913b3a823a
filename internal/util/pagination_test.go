package util

import "testing"

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		totalItems int64
		pageSize   uint
		want       int
	}{
		{0, 25, 1},
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{100, 25, 4},
		{101, 25, 5},
		{10, 0, 1},
	}

	for _, tt := range tests {
		if got := CalculateTotalPage(tt.totalItems, tt.pageSize); got != tt.want {
			t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.totalItems, tt.pageSize, got, tt.want)
		}
	}
}

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		page, pageSize uint
		wantPage       uint
		wantSize       uint
	}{
		{0, 25, 1, 25},
		{1, 0, 1, 25},
		{3, 50, 3, 50},
		{2, 101, 2, 25},
	}

	for _, tt := range tests {
		page, size := NormalizePagination(tt.page, tt.pageSize)
		if page != tt.wantPage || size != tt.wantSize {
			t.Errorf("NormalizePagination(%d, %d) = (%d, %d), want (%d, %d)", tt.page, tt.pageSize, page, size, tt.wantPage, tt.wantSize)
		}
	}
}
