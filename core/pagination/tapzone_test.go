// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagination_test

import (
	"testing"

	. "github.com/khoinguyent/veya-reader/core/pagination"
)

func TestZoneIntent(t *testing.T) {
	t.Parallel()

	const width = 375.0

	cases := []struct {
		name      string
		x         float64
		threshold float64
		want      Intent
	}{
		{"far left is previous", 0.1 * width, 0.4, IntentPrevious},
		{"just inside the back zone", 0.39 * width, 0.4, IntentPrevious},
		{"exactly at the split is next", 0.4 * width, 0.4, IntentNext},
		{"right side is next", 0.9 * width, 0.4, IntentNext},
		{"custom threshold widens the back zone", 0.45 * width, 0.5, IntentPrevious},
		{"zero threshold falls back to default", 0.1 * width, 0, IntentPrevious},
		{"threshold of one falls back to default", 0.5 * width, 1, IntentNext},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ZoneIntent(tc.x, width, tc.threshold); got != tc.want {
				t.Errorf("ZoneIntent(%v, %v, %v) = %v, want %v", tc.x, width, tc.threshold, got, tc.want)
			}
		})
	}
}

func TestZoneIntent_ZeroWidth(t *testing.T) {
	t.Parallel()

	if got := ZoneIntent(10, 0, 0.4); got != IntentNone {
		t.Errorf("ZoneIntent with zero width = %v, want IntentNone", got)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		intent Intent
		index  int
		count  int
		want   int
		wantOK bool
	}{
		{"previous from the middle", IntentPrevious, 2, 5, 1, true},
		{"previous at the first page", IntentPrevious, 0, 5, 0, false},
		{"next from the middle", IntentNext, 2, 5, 3, true},
		{"next at the last page", IntentNext, 4, 5, 4, false},
		{"none never moves", IntentNone, 2, 5, 2, false},
		{"empty page list", IntentNext, 0, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Apply(tc.intent, tc.index, tc.count)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("Apply(%v, %d, %d) = (%d, %v), want (%d, %v)",
					tc.intent, tc.index, tc.count, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}
