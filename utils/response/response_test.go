package response

import "testing"

func TestCalculatePagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		total      int64
		wantPage   int
		wantLimit  int
		wantInPage int
	}{
		{"exact pages", 1, 10, 30, 1, 10, 3},
		{"partial last page", 2, 10, 31, 2, 10, 4},
		{"page clamped to 1", 0, 10, 5, 1, 10, 1},
		{"limit clamped to 10", 1, 0, 25, 1, 10, 3},
		{"limit capped at 100", 1, 500, 250, 1, 100, 3},
		{"empty result", 1, 10, 0, 1, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePagination(tc.page, tc.limit, tc.total)
			if got.CurrentPage != tc.wantPage {
				t.Errorf("current page = %d, want %d", got.CurrentPage, tc.wantPage)
			}
			if got.PerPage != tc.wantLimit {
				t.Errorf("per page = %d, want %d", got.PerPage, tc.wantLimit)
			}
			if got.TotalPages != tc.wantInPage {
				t.Errorf("total pages = %d, want %d", got.TotalPages, tc.wantInPage)
			}
			if got.Total != tc.total {
				t.Errorf("total = %d, want %d", got.Total, tc.total)
			}
		})
	}
}
