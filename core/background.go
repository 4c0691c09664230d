// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

// BackgroundKind discriminates the page background result.
type BackgroundKind int

const (
	// BackgroundUnset means "retain whatever background is currently
	// displayed". It is NOT "clear to default": it must never overwrite a
	// prior Solid or Gradient result.
	BackgroundUnset BackgroundKind = iota
	// BackgroundSolid is a single color, possibly "transparent".
	BackgroundSolid
	// BackgroundGradient is a two-stop vertical gradient.
	BackgroundGradient
)

// BackgroundSpec is the page-level background computed for the currently
// visible block in paged mode.
type BackgroundSpec struct {
	Kind  BackgroundKind
	Color string
	Stops [2]string
}

// SolidBackground builds a Solid spec.
func SolidBackground(color string) BackgroundSpec {
	return BackgroundSpec{Kind: BackgroundSolid, Color: color}
}

// ResolveBackground computes the page background declared by one block.
//
// Rules, in order:
//  1. A pageBackgroundGradient metadata array with at least two usable
//     colors yields a Gradient from its first two stops.
//  2. An explicit pageBackground field (which may legitimately be
//     "transparent") yields a Solid.
//  3. Otherwise the result is Unset.
//
// A gradient array with fewer than two usable colors is treated identically
// to an absent one and falls through to the next rule.
func ResolveBackground(block RawBlock) BackgroundSpec {
	meta := MetaOf(block)

	if stops := meta.Colors("pageBackgroundGradient"); len(stops) >= 2 {
		return BackgroundSpec{
			Kind:  BackgroundGradient,
			Stops: [2]string{stops[0], stops[1]},
		}
	}

	if color, ok := meta.Str("pageBackground"); ok {
		return SolidBackground(color)
	}

	return BackgroundSpec{Kind: BackgroundUnset}
}

// Or layers this spec over a previous one, implementing the Unset contract:
// an Unset result retains prev, anything else replaces it.
func (s BackgroundSpec) Or(prev BackgroundSpec) BackgroundSpec {
	if s.Kind == BackgroundUnset {
		return prev
	}

	return s
}

// PageBackground folds ResolveBackground over blocks[0..index] starting from
// the article-wide base, so that page N shows the most recently declared
// background when its own block leaves the field unset.
func PageBackground(article NormalizedArticle, index int) BackgroundSpec {
	bg := SolidBackground(article.Config.EffectivePageBackground())

	if index >= len(article.Blocks) {
		index = len(article.Blocks) - 1
	}

	for i := 0; i <= index && i < len(article.Blocks); i++ {
		bg = ResolveBackground(article.Blocks[i]).Or(bg)
	}

	return bg
}
