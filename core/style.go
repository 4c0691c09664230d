// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

// RenderMode selects between the two presentation surfaces a block can be
// resolved for.
type RenderMode int

const (
	// ModeSingle lays blocks out in a continuous scroll.
	ModeSingle RenderMode = iota
	// ModePaged lays each block out as a full-screen page.
	ModePaged
)

// LayoutDescriptor is the fully resolved visual layout for one block.
// It is a pure derived value: recomputed whenever block or config change,
// never mutated, never cached across renders.
type LayoutDescriptor struct {
	PaddingVertical   float64
	PaddingHorizontal float64

	// Align is the cross-axis alignment of the block container
	// (stretch, flex-start, center, flex-end).
	Align string

	// Justify is the main-axis distribution, only meaningful in paged mode
	// where the container fills the page.
	Justify string

	TextAlign    string
	BorderRadius float64

	// Background is the block container's own background color. Always
	// empty in paged mode; the page owns the background there.
	Background string

	ShadowColor   string
	ShadowOpacity float64
	ShadowRadius  float64

	TextColor    string
	HeadingColor string
	FontSize     float64

	// SpacingAfter is the gap to the next block in single-page mode.
	SpacingAfter float64

	// FillPage stretches the container to the full page in paged mode.
	FillPage bool
}

// ResolveStyle computes the layout descriptor for one block.
//
// Every attribute resolves independently through three tiers: block-level
// metadata, then presentation-config default, then engine default. A block
// may override its padding and still inherit its alignment.
//
// Mode rules: in single mode a resolved non-transparent background applies
// to the block's own container. In paged mode the block background is
// suppressed (the page owns it, see ResolveBackground), the container fills
// the page, and content is centered unless the block carries heading-like
// content or an explicit justify override.
func ResolveStyle(block RawBlock, cfg PresentationConfig, mode RenderMode) LayoutDescriptor {
	meta := MetaOf(block)

	padding := meta.NumOr("padding", orNum(cfg.DefaultPadding, defaultBlockPadding))

	desc := LayoutDescriptor{
		PaddingVertical:   meta.NumOr("paddingVertical", padding),
		PaddingHorizontal: meta.NumOr("paddingHorizontal", padding),
		Align:             meta.StrOr("align", orStr(cfg.DefaultAlign, defaultAlign)),
		TextAlign:         meta.StrOr("textAlign", defaultTextAlign),
		BorderRadius:      meta.NumOr("borderRadius", orNum(cfg.DefaultBorderRadius, defaultBorderRadius)),
		ShadowColor:       meta.StrOr("shadowColor", ""),
		ShadowOpacity:     meta.NumOr("shadowOpacity", 0),
		ShadowRadius:      meta.NumOr("shadowRadius", 0),
		TextColor:         meta.StrOr("textColor", ""),
		HeadingColor:      meta.StrOr("headingColor", ""),
		FontSize:          meta.NumOr("fontSize", 0),
		SpacingAfter:      meta.NumOr("spacing", orNum(cfg.BlockSpacing, defaultBlockSpacing)),
	}

	background := meta.StrOr("backgroundColor", cfg.DefaultBlockBackground)

	switch mode {
	case ModePaged:
		// The page owns the background; the container fills the page.
		desc.Background = ""
		desc.FillPage = true
		desc.Justify = meta.StrOr("justify", pagedJustify(block))
	default:
		if background != "" && background != "transparent" {
			desc.Background = background
		}
	}

	return desc
}

// pagedJustify centers page content unless the block leads with a heading.
func pagedJustify(block RawBlock) string {
	if HasHeadingPayload(block) {
		return "flex-start"
	}

	return "center"
}
