// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"fmt"
	"strings"

	"github.com/khoinguyent/veya-reader/core"
)

// cssValue strips characters that could break out of a style attribute.
// Layout values are short tokens (colors, keywords, numbers), so a
// conservative allowlist is enough.
func cssValue(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '#', r == ',', r == '(', r == ')', r == '.', r == '%', r == '-', r == ' ':
			return r
		}

		return -1
	}, value)
}

// cssURL strips the characters that could terminate a url() token or the
// style attribute. The scheme check itself happens in safeHref.
func cssURL(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '(', ')', '\\', '<', '>', ' ':
			return -1
		}

		if r < 0x20 {
			return -1
		}

		return r
	}, raw)
}

// blockStyle renders a resolved layout descriptor as an inline style.
func blockStyle(desc core.LayoutDescriptor, mode core.RenderMode) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "padding:%gpx %gpx;", desc.PaddingVertical, desc.PaddingHorizontal)

	if desc.Align != "" {
		fmt.Fprintf(&sb, "align-items:%s;", cssValue(desc.Align))
	}

	if desc.TextAlign != "" {
		fmt.Fprintf(&sb, "text-align:%s;", cssValue(desc.TextAlign))
	}

	if desc.BorderRadius > 0 {
		fmt.Fprintf(&sb, "border-radius:%gpx;", desc.BorderRadius)
	}

	if desc.Background != "" {
		fmt.Fprintf(&sb, "background:%s;", cssValue(desc.Background))
	}

	if desc.ShadowColor != "" {
		fmt.Fprintf(&sb, "box-shadow:0 2px %gpx %s;", desc.ShadowRadius, cssValue(desc.ShadowColor))
	}

	if desc.TextColor != "" {
		fmt.Fprintf(&sb, "color:%s;", cssValue(desc.TextColor))
	}

	if desc.HeadingColor != "" {
		fmt.Fprintf(&sb, "--heading-color:%s;", cssValue(desc.HeadingColor))
	}

	if desc.FontSize > 0 {
		fmt.Fprintf(&sb, "font-size:%gpx;", desc.FontSize)
	}

	switch mode {
	case core.ModePaged:
		if desc.Justify != "" {
			fmt.Fprintf(&sb, "justify-content:%s;", cssValue(desc.Justify))
		}
	default:
		fmt.Fprintf(&sb, "margin-bottom:%gpx;", desc.SpacingAfter)
	}

	return sb.String()
}

// backgroundStyle renders a page background spec as an inline style.
// An Unset spec renders nothing so the surrounding surface keeps whatever
// background it already has.
func backgroundStyle(spec core.BackgroundSpec) string {
	switch spec.Kind {
	case core.BackgroundSolid:
		return "background:" + cssValue(spec.Color) + ";"
	case core.BackgroundGradient:
		return fmt.Sprintf("background:linear-gradient(180deg,%s,%s);",
			cssValue(spec.Stops[0]), cssValue(spec.Stops[1]))
	}

	return ""
}
