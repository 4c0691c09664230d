// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pagination

// ChangeSource tags where a pending index change originated.
type ChangeSource int

const (
	// SourceNone means settled, nothing pending.
	SourceNone ChangeSource = iota
	// SourceUser marks changes from scroll settling or tap navigation.
	SourceUser
	// SourceProgrammatic marks changes imposed by an external caller,
	// e.g. a parent screen jumping to a specific page.
	SourceProgrammatic
)

// String returns a readable tag name for logging.
func (s ChangeSource) String() string {
	switch s {
	case SourceUser:
		return "user"
	case SourceProgrammatic:
		return "programmatic"
	default:
		return "none"
	}
}

// Hooks are the side effects a Controller drives. Any hook may be nil.
type Hooks struct {
	// ScrollTo asks the embedding surface to scroll to a page. The
	// controller does not assume the scroll succeeds; it waits for
	// OnScrollSettled.
	ScrollTo func(index int)

	// OnIndexChange notifies the external listener of a user-driven page
	// change. Never invoked for programmatic commits.
	OnIndexChange func(index int)

	// OnBackground is invoked on every commit, regardless of source, so the
	// page background can be recomputed.
	OnBackground func(index int)
}

// Controller is the pagination state machine for one reading surface.
//
// Not safe for concurrent use; see the package documentation.
type Controller struct {
	count int
	hooks Hooks

	current      int
	lastNotified int

	// pending tracks an issued ScrollTo that has not settled yet.
	pending       ChangeSource
	pendingTarget int

	tapThreshold float64
}

// NewController creates a controller over count pages.
//
// A zero or negative count yields an inert controller: every operation is a
// no-op, so an empty block list disables pagination instead of crashing on
// index arithmetic.
func NewController(count int, hooks Hooks) *Controller {
	return &Controller{
		count:        count,
		hooks:        hooks,
		lastNotified: -1,
		pending:      SourceNone,
		tapThreshold: DefaultThreshold,
	}
}

// SetTapThreshold overrides the tap-zone split fraction. Values outside
// (0, 1) are ignored.
func (c *Controller) SetTapThreshold(t float64) {
	if t > 0 && t < 1 {
		c.tapThreshold = t
	}
}

// Current returns the current page index. Always within [0, count-1] for a
// non-empty controller.
func (c *Controller) Current() int {
	return c.current
}

// RequestIndex asks for a move to page index, tagged with its source.
//
// Out-of-range requests are silently ignored, equal-index requests are
// no-ops. A valid request records the pending tag and issues the ScrollTo
// side effect; the state commits when the surface reports settling.
func (c *Controller) RequestIndex(index int, source ChangeSource) {
	if c.count <= 0 || index < 0 || index >= c.count {
		return
	}

	if index == c.current {
		return
	}

	c.pending = source
	c.pendingTarget = index

	if c.hooks.ScrollTo != nil {
		c.hooks.ScrollTo(index)
	}
}

// OnScrollSettled reports that the surface's dominant visible page changed.
//
// Settling on the pending target preserves that request's tag; any other
// settle is attributed to the user. Settling on the current page clears any
// stale pending request without committing.
func (c *Controller) OnScrollSettled(visible int) {
	if c.count <= 0 {
		return
	}

	if visible < 0 {
		visible = 0
	}

	if visible >= c.count {
		visible = c.count - 1
	}

	if visible == c.current {
		c.pending = SourceNone

		return
	}

	tag := SourceUser
	if c.pending != SourceNone && visible == c.pendingTarget {
		tag = c.pending
	}

	c.pending = SourceNone
	c.commit(visible, tag)
}

// Tap maps a tap at x within a page of the given width to a navigation
// request. Taps are unambiguous user intent, so the resulting request is
// tagged SourceUser even though it rides the same scroll mechanism as a
// programmatic jump.
func (c *Controller) Tap(x, width float64) Intent {
	intent := ZoneIntent(x, width, c.tapThreshold)

	if target, ok := Apply(intent, c.current, c.count); ok {
		c.RequestIndex(target, SourceUser)
	}

	return intent
}

// commit applies a settled index change atomically with respect to the
// (index, tag) pair: the background recompute and the notification decision
// both see the same values.
func (c *Controller) commit(index int, tag ChangeSource) {
	c.current = index

	if c.hooks.OnBackground != nil {
		c.hooks.OnBackground(index)
	}

	if tag != SourceUser {
		return
	}

	if index == c.lastNotified {
		return
	}

	c.lastNotified = index

	if c.hooks.OnIndexChange != nil {
		c.hooks.OnIndexChange(index)
	}
}
