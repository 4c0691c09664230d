// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagination_test

import (
	"testing"

	. "github.com/khoinguyent/veya-reader/core/pagination"
)

// recorder captures every hook invocation for assertions.
type recorder struct {
	scrolls     []int
	notified    []int
	backgrounds []int
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		ScrollTo:      func(i int) { r.scrolls = append(r.scrolls, i) },
		OnIndexChange: func(i int) { r.notified = append(r.notified, i) },
		OnBackground:  func(i int) { r.backgrounds = append(r.backgrounds, i) },
	}
}

// settle simulates the physical scroll finishing on the last requested page.
func settle(c *Controller, rec *recorder) {
	if len(rec.scrolls) > 0 {
		c.OnScrollSettled(rec.scrolls[len(rec.scrolls)-1])
	}
}

func TestController_UserScrollNotifies(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	c.OnScrollSettled(1)

	if c.Current() != 1 {
		t.Errorf("current = %d, want 1", c.Current())
	}

	if len(rec.notified) != 1 || rec.notified[0] != 1 {
		t.Errorf("notified = %v, want [1]", rec.notified)
	}

	if len(rec.backgrounds) != 1 || rec.backgrounds[0] != 1 {
		t.Errorf("backgrounds = %v, want [1]", rec.backgrounds)
	}
}

func TestController_ProgrammaticJumpNeverNotifies(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// Scenario: external caller requests page 3; the physical scroll
	// settles later. Background recomputes, the listener stays silent.
	c.RequestIndex(3, SourceProgrammatic)

	if len(rec.scrolls) != 1 || rec.scrolls[0] != 3 {
		t.Fatalf("scrolls = %v, want [3]", rec.scrolls)
	}

	c.OnScrollSettled(3)

	if c.Current() != 3 {
		t.Errorf("current = %d, want 3", c.Current())
	}

	if len(rec.backgrounds) != 1 || rec.backgrounds[0] != 3 {
		t.Errorf("backgrounds = %v, want [3]", rec.backgrounds)
	}

	if len(rec.notified) != 0 {
		t.Errorf("notified = %v, programmatic commits must never notify", rec.notified)
	}
}

func TestController_TapRequestsAreUserTagged(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())
	c.OnScrollSettled(2)

	rec.notified = nil

	// Tap in the back zone while on page 2 -> previous -> page 1.
	c.Tap(0.1*320, 320)
	settle(c, rec)

	if c.Current() != 1 {
		t.Errorf("current = %d, want 1", c.Current())
	}

	if len(rec.notified) != 1 || rec.notified[0] != 1 {
		t.Errorf("notified = %v, want [1]: taps are user intent", rec.notified)
	}
}

func TestController_TapEdgeNoOps(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// Previous at page 0: intent exists but nothing moves.
	if intent := c.Tap(0.1*320, 320); intent != IntentPrevious {
		t.Errorf("intent = %v, want IntentPrevious", intent)
	}

	if len(rec.scrolls) != 0 || c.Current() != 0 {
		t.Errorf("tap at first page moved state: scrolls=%v current=%d", rec.scrolls, c.Current())
	}

	// Next at the last page: no-op too.
	c.OnScrollSettled(4)
	rec.scrolls = nil

	if intent := c.Tap(0.9*320, 320); intent != IntentNext {
		t.Errorf("intent = %v, want IntentNext", intent)
	}

	if len(rec.scrolls) != 0 || c.Current() != 4 {
		t.Errorf("tap at last page moved state: scrolls=%v current=%d", rec.scrolls, c.Current())
	}
}

func TestController_RequestIndexValidation(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(3, rec.hooks())

	cases := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past the end", 3},
		{"far out of range", 99},
		{"equal to current", 0},
	}

	for _, tc := range cases {
		c.RequestIndex(tc.index, SourceUser)

		if len(rec.scrolls) != 0 {
			t.Errorf("%s: RequestIndex(%d) issued a scroll", tc.name, tc.index)
		}

		if c.Current() != 0 {
			t.Errorf("%s: RequestIndex(%d) changed current to %d", tc.name, tc.index, c.Current())
		}
	}
}

func TestController_NotifiesAtMostOncePerTransition(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// Duplicate settles on the same page must not re-notify.
	c.OnScrollSettled(2)
	c.OnScrollSettled(2)
	c.OnScrollSettled(2)

	if len(rec.notified) != 1 {
		t.Errorf("notified %d times for one transition, want 1", len(rec.notified))
	}

	// A real second transition notifies again.
	c.OnScrollSettled(3)

	if len(rec.notified) != 2 || rec.notified[1] != 3 {
		t.Errorf("notified = %v, want [2 3]", rec.notified)
	}
}

func TestController_SettleBounceBackClearsPending(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// A programmatic request that bounces back to the current page must not
	// leave a stale tag behind: the next genuine swipe is user-sourced.
	c.RequestIndex(2, SourceProgrammatic)
	c.OnScrollSettled(0) // bounce back, no commit

	if c.Current() != 0 {
		t.Fatalf("current = %d after bounce, want 0", c.Current())
	}

	c.OnScrollSettled(2)

	if len(rec.notified) != 1 || rec.notified[0] != 2 {
		t.Errorf("notified = %v, want [2]: stale programmatic tag leaked", rec.notified)
	}
}

func TestController_SettleElsewhereDuringPendingIsUser(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// Programmatic request to 3, but the user grabs the scroll and lands
	// on 1 instead. That settle is user intent.
	c.RequestIndex(3, SourceProgrammatic)
	c.OnScrollSettled(1)

	if c.Current() != 1 {
		t.Errorf("current = %d, want 1", c.Current())
	}

	if len(rec.notified) != 1 || rec.notified[0] != 1 {
		t.Errorf("notified = %v, want [1]", rec.notified)
	}
}

func TestController_OutOfRangeSettleClamps(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(3, rec.hooks())

	c.OnScrollSettled(10)

	if c.Current() != 2 {
		t.Errorf("current = %d, want clamped 2", c.Current())
	}

	c.OnScrollSettled(-4)

	if c.Current() != 0 {
		t.Errorf("current = %d, want clamped 0", c.Current())
	}
}

func TestController_EmptyIsInert(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewController(0, rec.hooks())

	c.RequestIndex(0, SourceUser)
	c.OnScrollSettled(0)
	c.Tap(10, 320)

	if len(rec.scrolls)+len(rec.notified)+len(rec.backgrounds) != 0 {
		t.Error("empty controller produced side effects")
	}

	if c.Current() != 0 {
		t.Errorf("current = %d, want 0", c.Current())
	}
}

func TestController_FiveBlockTapScenario(t *testing.T) {
	t.Parallel()

	const width = 375.0

	rec := &recorder{}
	c := NewController(5, rec.hooks())

	// Land on page 2 first.
	c.RequestIndex(2, SourceProgrammatic)
	settle(c, rec)

	// Tap at x = 0.1w -> previous -> index 1.
	c.Tap(0.1*width, width)
	settle(c, rec)

	if c.Current() != 1 {
		t.Fatalf("current = %d, want 1", c.Current())
	}

	// Walk back to 0, then tap previous again: no-op.
	c.Tap(0.1*width, width)
	settle(c, rec)
	c.Tap(0.1*width, width)
	settle(c, rec)

	if c.Current() != 0 {
		t.Errorf("current = %d, want 0 (previous at first page is a no-op)", c.Current())
	}
}
