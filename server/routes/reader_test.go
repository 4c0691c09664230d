// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http/httptest"
	"testing"

	config "github.com/khoinguyent/veya-reader/configs"
	"github.com/khoinguyent/veya-reader/core/pagination"
)

func TestClampPage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		page  int
		count int
		want  int
	}{
		{"in range", 2, 5, 2},
		{"negative", -1, 5, 0},
		{"past the end", 9, 5, 4},
		{"empty", 0, 0, 0},
		{"empty negative", -3, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := clampPage(tc.page, tc.count); got != tc.want {
				t.Errorf("clampPage(%d, %d) = %d, want %d", tc.page, tc.count, got, tc.want)
			}
		})
	}
}

func TestIntQuery(t *testing.T) {
	t.Parallel()

	if got := intQuery("3", 0); got != 3 {
		t.Errorf("intQuery(3) = %d", got)
	}

	if got := intQuery("", 7); got != 7 {
		t.Errorf("intQuery empty = %d, want fallback", got)
	}

	if got := intQuery("abc", 7); got != 7 {
		t.Errorf("intQuery garbage = %d, want fallback", got)
	}
}

// navState runs one navigation event through a fresh controller seeded at
// `from`, the way ReaderFragment does, and reports the committed page and
// whether a user notification fired.
func navState(t *testing.T, count, from, target int, query string) (page, notified int) {
	t.Helper()

	notified = -1
	scrollTarget := from

	ctrl := pagination.NewController(count, pagination.Hooks{
		ScrollTo:      func(index int) { scrollTarget = index },
		OnIndexChange: func(index int) { notified = index },
	})

	ctrl.RequestIndex(from, pagination.SourceProgrammatic)
	ctrl.OnScrollSettled(from)

	r := httptest.NewRequest("GET", "/fragments/reader/slug/0?"+query, nil)

	applyNavigation(r, ctrl, target, &scrollTarget)

	return ctrl.Current(), notified
}

func TestApplyNavigation(t *testing.T) {
	config.Global.Reader.SettleCoverage = 0.55

	t.Cleanup(func() { config.Global.Reader.SettleCoverage = 0 })

	t.Run("programmatic jump never notifies", func(t *testing.T) {
		page, notified := navState(t, 5, 1, 3, "src=nav")

		if page != 3 {
			t.Errorf("page = %d, want 3", page)
		}

		if notified != -1 {
			t.Errorf("programmatic jump notified listener of page %d", notified)
		}
	})

	t.Run("tap with coordinates notifies once", func(t *testing.T) {
		// Tap at 90% of a 400px page: the next zone.
		page, notified := navState(t, 5, 1, 1, "src=tap&x=360&width=400")

		if page != 2 {
			t.Errorf("page = %d, want 2", page)
		}

		if notified != 2 {
			t.Errorf("notified = %d, want 2", notified)
		}
	})

	t.Run("tap in previous zone", func(t *testing.T) {
		page, notified := navState(t, 5, 2, 2, "src=tap&x=40&width=400")

		if page != 1 || notified != 1 {
			t.Errorf("page = %d, notified = %d, want 1, 1", page, notified)
		}
	})

	t.Run("tap at the last page is a no-op", func(t *testing.T) {
		page, notified := navState(t, 3, 2, 2, "src=tap&x=360&width=400")

		if page != 2 {
			t.Errorf("page = %d, want 2", page)
		}

		if notified != -1 {
			t.Errorf("edge tap notified listener of page %d", notified)
		}
	})

	t.Run("tap without coordinates uses the target page", func(t *testing.T) {
		page, notified := navState(t, 5, 1, 2, "src=tap")

		if page != 2 || notified != 2 {
			t.Errorf("page = %d, notified = %d, want 2, 2", page, notified)
		}
	})

	t.Run("settled scroll is user driven", func(t *testing.T) {
		page, notified := navState(t, 5, 0, 4, "src=scroll&coverage=0.9")

		if page != 4 || notified != 4 {
			t.Errorf("page = %d, notified = %d, want 4, 4", page, notified)
		}
	})

	t.Run("scroll below the coverage threshold does not commit", func(t *testing.T) {
		page, notified := navState(t, 5, 0, 4, "src=scroll&coverage=0.3")

		if page != 0 {
			t.Errorf("page = %d, want 0", page)
		}

		if notified != -1 {
			t.Errorf("under-coverage scroll notified listener of page %d", notified)
		}
	})

	t.Run("jump to the current page is a no-op", func(t *testing.T) {
		page, notified := navState(t, 5, 2, 2, "src=nav")

		if page != 2 || notified != -1 {
			t.Errorf("page = %d, notified = %d, want 2, -1", page, notified)
		}
	})
}
