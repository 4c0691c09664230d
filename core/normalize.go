// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
)

// PresentationStyle selects how an article's blocks are laid out.
type PresentationStyle int

const (
	// SinglePage renders all blocks in one continuous vertical scroll.
	SinglePage PresentationStyle = iota
	// PagedBlocks renders one full-screen page per block.
	PagedBlocks
)

// String returns the wire representation of the style.
func (s PresentationStyle) String() string {
	switch s {
	case PagedBlocks:
		return "paged_blocks"
	default:
		return "single_page"
	}
}

// Wire values for presentation_style.
const (
	styleSinglePage  = "single_page"
	stylePagedBlocks = "paged_blocks"
)

// PagedPolicy decides when an article without an explicit presentation style
// is rendered paged. The upstream CMS never documented a rationale for these
// heuristics, so they are configuration rather than law.
type PagedPolicy struct {
	// BlockThreshold pages an article when it has more than this many blocks.
	BlockThreshold int

	// LayoutHints pages an article when its layout variant contains any of
	// these substrings (case-insensitive).
	LayoutHints []string
}

// DefaultPagedPolicy mirrors the upstream client's hard-coded heuristic.
func DefaultPagedPolicy() PagedPolicy {
	return PagedPolicy{
		BlockThreshold: 4,
		LayoutHints:    []string{"illustrated"},
	}
}

// NormalizedArticle is the deterministic presentation input produced by
// Normalize. It is immutable for the lifetime of a screen: blocks are sorted
// ascending by position (ties stable) and the hero slide, when injected,
// always sorts first.
type NormalizedArticle struct {
	ID           string
	Slug         string
	Title        string
	Subtitle     string
	HeroImageURL string
	AudioURL     string
	Tags         []string

	Style  PresentationStyle
	Config PresentationConfig

	Blocks []RawBlock

	// Degraded marks articles synthesized from a cached summary after a
	// fetch failure.
	Degraded bool
}

// Normalize turns an article detail into its renderable form.
//
// It sorts blocks ascending by position with a stable sort, decides the
// presentation style (explicit style wins, otherwise the policy heuristics
// apply), and in paged mode injects a synthetic hero slide when the article
// declares a hero image, no hero block exists, and the presentation config
// does not request hiding it. The injection happens at most once per call.
func Normalize(detail ArticleDetail, policy PagedPolicy) NormalizedArticle {
	blocks := make([]RawBlock, len(detail.Blocks))
	copy(blocks, detail.Blocks)

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Position < blocks[j].Position
	})

	style := decideStyle(detail, blocks, policy)

	if style == PagedBlocks && shouldInjectHero(detail, blocks) {
		blocks = append([]RawBlock{heroSlide(detail)}, blocks...)
	}

	return NormalizedArticle{
		ID:           detail.ID,
		Slug:         detail.Slug,
		Title:        detail.Title,
		Subtitle:     detail.Subtitle,
		HeroImageURL: detail.HeroImageURL,
		AudioURL:     detail.AudioURL,
		Tags:         detail.Tags,
		Style:        style,
		Config:       detail.Config,
		Blocks:       blocks,
	}
}

// NormalizeSummary builds the minimal single-block article used when a
// detail fetch fails but a cached listing summary is available.
func NormalizeSummary(summary ArticleSummary) NormalizedArticle {
	text := summary.Summary
	if text == "" {
		text = summary.Subtitle
	}

	payload, _ := json.Marshal(map[string]any{"text": text})

	return NormalizedArticle{
		Slug:         summary.Slug,
		Title:        summary.Title,
		Subtitle:     summary.Subtitle,
		HeroImageURL: summary.HeroImageURL,
		Tags:         summary.Tags,
		Style:        SinglePage,
		Blocks: []RawBlock{{
			BlockType: "paragraph",
			Payload:   payload,
		}},
		Degraded: true,
	}
}

// decideStyle applies the explicit style when present, then the paged
// heuristics.
func decideStyle(detail ArticleDetail, blocks []RawBlock, policy PagedPolicy) PresentationStyle {
	switch detail.PresentationStyle {
	case stylePagedBlocks:
		return PagedBlocks
	case styleSinglePage:
		return SinglePage
	}

	for _, block := range blocks {
		if isHeroType(block.BlockType) {
			return PagedBlocks
		}
	}

	variant := strings.ToLower(detail.LayoutVariant)
	for _, hint := range policy.LayoutHints {
		if hint != "" && strings.Contains(variant, strings.ToLower(hint)) {
			return PagedBlocks
		}
	}

	if policy.BlockThreshold > 0 && len(blocks) > policy.BlockThreshold {
		return PagedBlocks
	}

	return SinglePage
}

// shouldInjectHero reports whether a synthetic hero slide is due: hero image
// present, no existing hero block, and heroBehavior != "hide".
func shouldInjectHero(detail ArticleDetail, blocks []RawBlock) bool {
	if detail.HeroImageURL == "" {
		return false
	}

	if detail.Config.HeroBehavior == HeroBehaviorHide {
		return false
	}

	for _, block := range blocks {
		if isHeroType(block.BlockType) {
			return false
		}
	}

	return true
}

// heroSlide builds the synthetic leading image block. Position is -Inf so it
// sorts before any server-supplied position.
func heroSlide(detail ArticleDetail) RawBlock {
	cfg := detail.Config

	payload, _ := json.Marshal(map[string]any{
		"url": detail.HeroImageURL,
		"alt": detail.Title,
	})

	meta := map[string]any{
		"height":       orNum(cfg.HeroHeight, defaultHeroHeight),
		"borderRadius": orNum(cfg.HeroBorderRadius, defaultHeroBorderRadius),
	}
	if cfg.HeroOverlayColor != "" {
		meta["overlayColor"] = cfg.HeroOverlayColor
	}

	metadata, _ := json.Marshal(meta)

	return RawBlock{
		Position:  math.Inf(-1),
		BlockType: "image",
		Payload:   payload,
		Metadata:  metadata,
	}
}
