// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/khoinguyent/veya-reader/core"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()

	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}

	return sb.String()
}

func TestBlock_Variants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		block    core.ContentBlock
		contains []string
		excludes []string
	}{
		{
			name:     "heading",
			block:    core.HeadingBlock{Text: "Settling In", Level: 2},
			contains: []string{"<h2>Settling In</h2>", "block-heading"},
		},
		{
			name:     "paragraph escapes markup",
			block:    core.ParagraphBlock{Text: "a <b> & b"},
			contains: []string{"a &lt;b&gt; &amp; b"},
			excludes: []string{"<b>"},
		},
		{
			name:     "quote with attribution",
			block:    core.QuoteBlock{Text: "Breathe out slowly.", Attribution: "Mai Tran"},
			contains: []string{"<blockquote>", "<footer>Mai Tran</footer>"},
		},
		{
			name:     "ordered list",
			block:    core.ListBlock{Items: []string{"one", "two"}, Ordered: true},
			contains: []string{"<ol>", "<li>one</li>", "<li>two</li>", "</ol>"},
		},
		{
			name:     "unordered list",
			block:    core.ListBlock{Items: []string{"only"}},
			contains: []string{"<ul>", "<li>only</li>"},
		},
		{
			name:     "image with caption",
			block:    core.ImageBlock{URL: "https://cdn.test/a.jpg", Alt: "calm lake", Caption: "Dawn"},
			contains: []string{`src="https://cdn.test/a.jpg"`, `alt="calm lake"`, "<figcaption>Dawn</figcaption>"},
		},
		{
			name:     "cta rejects javascript href",
			block:    core.CtaBlock{Label: "Start", URL: "javascript:alert(1)"},
			contains: []string{`href="#"`, ">Start</a>"},
			excludes: []string{"javascript:"},
		},
		{
			name:     "hero",
			block:    core.HeroBlock{Title: "Evening Wind-Down", Subtitle: "Settle before sleep", ImageURL: "https://cdn.test/h.jpg"},
			contains: []string{"<h1>Evening Wind-Down</h1>", "hero-subtitle", "background-image:url("},
		},
		{
			name:     "tips",
			block:    core.TipsBlock{Title: "Remember", Items: []string{"hydrate"}},
			contains: []string{"<h3>Remember</h3>", "<li>hydrate</li>"},
		},
		{
			name:     "fallback renders scraped text",
			block:    core.FallbackBlock{BlockType: "sparkline", Text: "3 sessions this week"},
			contains: []string{`data-block-type="sparkline"`, "3 sessions this week"},
		},
		{
			name:     "empty fallback renders container only",
			block:    core.FallbackBlock{BlockType: "sparkline"},
			excludes: []string{"block-fallback\" data"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			html := render(t, Block(tc.block, core.LayoutDescriptor{}, core.ModeSingle))

			for _, want := range tc.contains {
				if !strings.Contains(html, want) {
					t.Errorf("rendered block is missing %q:\n%s", want, html)
				}
			}

			for _, exclude := range tc.excludes {
				if strings.Contains(html, exclude) {
					t.Errorf("rendered block should not contain %q:\n%s", exclude, html)
				}
			}
		})
	}
}

func TestBlock_RichTextIsSanitized(t *testing.T) {
	t.Parallel()

	html := render(t, Block(
		core.RichTextBlock{HTML: `<p onclick="x()">hi</p><script>alert(1)</script>`},
		core.LayoutDescriptor{},
		core.ModeSingle,
	))

	if !strings.Contains(html, "<p>hi</p>") {
		t.Errorf("sanitized paragraph missing:\n%s", html)
	}

	if strings.Contains(html, "script") || strings.Contains(html, "onclick") {
		t.Errorf("dangerous content survived sanitization:\n%s", html)
	}
}

func TestBlockStyle(t *testing.T) {
	t.Parallel()

	desc := core.LayoutDescriptor{
		PaddingVertical:   12,
		PaddingHorizontal: 20,
		Align:             "center",
		TextAlign:         "left",
		BorderRadius:      8,
		Background:        "#FFF8EE",
		SpacingAfter:      24,
	}

	style := blockStyle(desc, core.ModeSingle)

	for _, want := range []string{
		"padding:12px 20px;",
		"align-items:center;",
		"text-align:left;",
		"border-radius:8px;",
		"background:#FFF8EE;",
		"margin-bottom:24px;",
	} {
		if !strings.Contains(style, want) {
			t.Errorf("style missing %q: %s", want, style)
		}
	}

	// Paged mode: no spacing, justify applies instead.
	desc.Justify = "flex-start"
	style = blockStyle(desc, core.ModePaged)

	if strings.Contains(style, "margin-bottom") {
		t.Errorf("paged style carries single-mode spacing: %s", style)
	}

	if !strings.Contains(style, "justify-content:flex-start;") {
		t.Errorf("paged style missing justify: %s", style)
	}
}

func TestBackgroundStyle(t *testing.T) {
	t.Parallel()

	if got := backgroundStyle(core.SolidBackground("#112233")); got != "background:#112233;" {
		t.Errorf("solid = %q", got)
	}

	gradient := core.BackgroundSpec{
		Kind:  core.BackgroundGradient,
		Stops: [2]string{"#FDEBD2", "#E7D4F5"},
	}

	if got := backgroundStyle(gradient); got != "background:linear-gradient(180deg,#FDEBD2,#E7D4F5);" {
		t.Errorf("gradient = %q", got)
	}

	if got := backgroundStyle(core.BackgroundSpec{}); got != "" {
		t.Errorf("unset = %q, want empty", got)
	}
}

func TestCSSValue(t *testing.T) {
	t.Parallel()

	if got := cssValue(`#fff";</style><script>`); strings.ContainsAny(got, `";<>`) {
		t.Errorf("cssValue kept dangerous characters: %q", got)
	}

	if got := cssValue("rgba(0, 0, 0, 0.2)"); got != "rgba(0, 0, 0, 0.2)" {
		t.Errorf("cssValue mangled a legitimate value: %q", got)
	}
}
