// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// ContentBlock is a decoded block variant ready for rendering.
//
// The block-type vocabulary is open and server-controlled, so this is a
// closed sum with a mandatory fallback arm: servers can introduce new types
// without a client release ever crashing a render.
type ContentBlock interface {
	isContentBlock() // Marker method to ensure type implementation.
}

// HeadingBlock is a section heading.
type HeadingBlock struct {
	Text  string
	Level int // 1..4, defaults to 2
}

func (b HeadingBlock) isContentBlock() {}

// ParagraphBlock is a plain text paragraph.
type ParagraphBlock struct {
	Text string
}

func (b ParagraphBlock) isContentBlock() {}

// RichTextBlock carries server-authored HTML, sanitized before rendering.
type RichTextBlock struct {
	HTML string
}

func (b RichTextBlock) isContentBlock() {}

// QuoteBlock is a pull quote with an optional attribution line.
type QuoteBlock struct {
	Text        string
	Attribution string
}

func (b QuoteBlock) isContentBlock() {}

// ListBlock is an ordered or unordered list.
type ListBlock struct {
	Items   []string
	Ordered bool
}

func (b ListBlock) isContentBlock() {}

// ImageBlock is a standalone image, also used for the synthetic hero slide.
type ImageBlock struct {
	URL     string
	Alt     string
	Caption string
}

func (b ImageBlock) isContentBlock() {}

// IllustrationBlock is a decorative full-bleed illustration.
type IllustrationBlock struct {
	URL string
	Alt string
}

func (b IllustrationBlock) isContentBlock() {}

// HeroBlock is an explicit title slide authored by the server.
type HeroBlock struct {
	Title    string
	Subtitle string
	ImageURL string
}

func (b HeroBlock) isContentBlock() {}

// MarkdownBlock carries markdown-ish source rendered as simple paragraphs.
type MarkdownBlock struct {
	Source string
}

func (b MarkdownBlock) isContentBlock() {}

// TipsBlock is a titled list of short tips.
type TipsBlock struct {
	Title string
	Items []string
}

func (b TipsBlock) isContentBlock() {}

// CtaBlock is a call-to-action button.
type CtaBlock struct {
	Label string
	URL   string
}

func (b CtaBlock) isContentBlock() {}

// FallbackBlock renders any text-like content found in a block of unknown
// type. It never fails; worst case it renders nothing visible.
type FallbackBlock struct {
	BlockType string
	Text      string
}

func (b FallbackBlock) isContentBlock() {}

// fallbackTextFields are payload keys probed in order when building a
// FallbackBlock.
var fallbackTextFields = []string{"text", "content", "title", "body", "caption", "label"}

// DecodeBlock dispatches a raw block to its concrete variant.
//
// Type names are matched case-insensitively with hyphens and underscores
// ignored, so "rich_text", "richText" and "rich-text" are all the same
// variant. Unknown types log a diagnostic and decode to a FallbackBlock.
func DecodeBlock(block RawBlock) ContentBlock {
	payload := gjson.ParseBytes(block.Payload)

	switch canonicalType(block.BlockType) {
	case "heading":
		level := int(payload.Get("level").Int())
		if level < 1 || level > 4 {
			level = 2
		}

		return HeadingBlock{
			Text:  firstStr(payload, "text", "title"),
			Level: level,
		}

	case "paragraph":
		return ParagraphBlock{Text: firstStr(payload, "text", "content")}

	case "text", "richtext":
		return RichTextBlock{HTML: firstStr(payload, "html", "text", "content")}

	case "quote":
		return QuoteBlock{
			Text:        firstStr(payload, "text", "quote"),
			Attribution: firstStr(payload, "attribution", "author"),
		}

	case "list":
		return ListBlock{
			Items:   strSliceOf(payload.Get("items")),
			Ordered: payload.Get("ordered").Bool(),
		}

	case "image":
		return ImageBlock{
			URL:     firstStr(payload, "url", "src"),
			Alt:     firstStr(payload, "alt", "title"),
			Caption: strOf(payload.Get("caption")),
		}

	case "illustration":
		return IllustrationBlock{
			URL: firstStr(payload, "url", "src"),
			Alt: firstStr(payload, "alt", "title"),
		}

	case "hero":
		return HeroBlock{
			Title:    firstStr(payload, "title", "text"),
			Subtitle: strOf(payload.Get("subtitle")),
			ImageURL: firstStr(payload, "image_url", "url"),
		}

	case "markdown":
		return MarkdownBlock{Source: firstStr(payload, "markdown", "text", "content")}

	case "tips":
		return TipsBlock{
			Title: strOf(payload.Get("title")),
			Items: strSliceOf(payload.Get("items")),
		}

	case "cta", "button":
		return CtaBlock{
			Label: firstStr(payload, "label", "text", "title"),
			URL:   firstStr(payload, "url", "href"),
		}
	}

	log.Warn().
		Str("block_type", block.BlockType).
		Msg("Unknown block type, rendering fallback")

	return FallbackBlock{
		BlockType: block.BlockType,
		Text:      fallbackText(payload),
	}
}

// canonicalType lowercases a block type and strips separators.
func canonicalType(blockType string) string {
	t := strings.ToLower(strings.TrimSpace(blockType))
	t = strings.ReplaceAll(t, "_", "")
	t = strings.ReplaceAll(t, "-", "")

	return t
}

// isHeroType reports whether a raw block is an explicit hero slide.
func isHeroType(blockType string) bool {
	return canonicalType(blockType) == "hero"
}

// firstStr returns the first key whose value is a non-empty string.
func firstStr(payload gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := strOf(payload.Get(key)); v != "" {
			return v
		}
	}

	return ""
}

// fallbackText scrapes any text-like content out of an unknown payload:
// the well-known text fields first, then the first string value in document
// order.
func fallbackText(payload gjson.Result) string {
	if v := firstStr(payload, fallbackTextFields...); v != "" {
		return v
	}

	var found string

	payload.ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String && value.Str != "" {
			found = value.Str

			return false
		}

		return true
	})

	return found
}

// HasHeadingPayload reports whether a raw block carries heading-like content.
// Paged mode top-aligns such blocks instead of centering them.
func HasHeadingPayload(block RawBlock) bool {
	switch canonicalType(block.BlockType) {
	case "heading", "hero":
		return true
	}

	payload := gjson.ParseBytes(block.Payload)

	return strOf(payload.Get("heading")) != "" || strOf(payload.Get("title")) != ""
}
