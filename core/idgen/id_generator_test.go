// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}

	for range 100 {
		id := Make()

		if len(id) != 10 {
			t.Fatalf("Make() = %q, want 10 characters", id)
		}

		if seen[id] {
			t.Fatalf("Make() produced a duplicate: %q", id)
		}

		seen[id] = true
	}
}
