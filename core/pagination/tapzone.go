// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagination

// DefaultThreshold is the default tap-zone split fraction. The split is
// intentionally asymmetric: forward navigation is the dominant action and
// gets the larger (60%) hit target.
const DefaultThreshold = 0.4

// Intent is a tap-derived navigation intent.
type Intent int

const (
	// IntentNone is produced only for degenerate input (zero width).
	IntentNone Intent = iota
	// IntentPrevious navigates one page back.
	IntentPrevious
	// IntentNext navigates one page forward.
	IntentNext
)

// ZoneIntent maps a tap x-coordinate within a page of the given width to a
// navigation intent: x < width*threshold is Previous, the rest is Next.
//
// Edge handling (no-op at the first or last page) is not decided here; the
// zone mapping stays pure and Apply resolves the target.
func ZoneIntent(x, width, threshold float64) Intent {
	if width <= 0 {
		return IntentNone
	}

	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}

	if x < width*threshold {
		return IntentPrevious
	}

	return IntentNext
}

// Apply resolves an intent against the current index and page count,
// returning the target index and whether a move should happen. Previous at
// the first page and Next at the last page report ok=false.
func Apply(intent Intent, index, count int) (int, bool) {
	switch intent {
	case IntentPrevious:
		if index <= 0 {
			return index, false
		}

		return index - 1, true

	case IntentNext:
		if index >= count-1 {
			return index, false
		}

		return index + 1, true
	}

	return index, false
}
