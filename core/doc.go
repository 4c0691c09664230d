// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package core turns raw Veya library articles into deterministic, renderable
presentations.

An article arrives as an ordered list of loosely typed content blocks. The
pipeline is:

	raw article JSON -> ParseArticleDetail -> Normalize -> []RawBlock + style

From there, each block is decoded into a concrete variant with [DecodeBlock],
its layout computed with [ResolveStyle], and (in paged mode) the page
background computed with [ResolveBackground]. All three are pure functions:
identical inputs always produce identical outputs.

Nothing in this package raises for malformed input. Missing or wrong-typed
optional fields resolve to documented defaults, unknown block types decode to
a [FallbackBlock], and the worst case for any input is a degraded but
non-crashing render.
*/
package core
