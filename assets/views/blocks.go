// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/khoinguyent/veya-reader/core"
)

// Block renders one decoded content block inside its resolved layout
// container. Unknown variants fall through to the fallback arm; Block
// never fails on content, only on writer errors.
func Block(block core.ContentBlock, desc core.LayoutDescriptor, mode core.RenderMode) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "block block-" + blockClass(block)
		if desc.FillPage {
			class += " block-fill"
		}

		if err := write(w, `<div class="`, class, `" style="`, blockStyle(desc, mode), `">`); err != nil {
			return err
		}

		if err := renderBlockContent(w, block); err != nil {
			return err
		}

		return write(w, "</div>")
	})
}

//nolint:cyclop // one arm per block variant
func renderBlockContent(w io.Writer, block core.ContentBlock) error {
	switch b := block.(type) {
	case core.HeadingBlock:
		return writef(w, "<h%d>%s</h%d>", b.Level, esc(b.Text), b.Level)

	case core.ParagraphBlock:
		return write(w, core.ParagraphsHTML(b.Text))

	case core.RichTextBlock:
		// Sanitized HTML is written as-is.
		return write(w, core.SanitizeRichText(b.HTML))

	case core.QuoteBlock:
		if err := write(w, "<blockquote><p>", esc(b.Text), "</p>"); err != nil {
			return err
		}

		if b.Attribution != "" {
			if err := write(w, "<footer>", esc(b.Attribution), "</footer>"); err != nil {
				return err
			}
		}

		return write(w, "</blockquote>")

	case core.ListBlock:
		return renderList(w, b)

	case core.ImageBlock:
		return renderImage(w, b)

	case core.IllustrationBlock:
		return write(w,
			`<img class="illustration" src="`, esc(safeHref(b.URL)), `" alt="`, esc(b.Alt), `" loading="lazy" />`)

	case core.HeroBlock:
		return renderHero(w, b)

	case core.MarkdownBlock:
		return write(w, core.ParagraphsHTML(b.Source))

	case core.TipsBlock:
		return renderTips(w, b)

	case core.CtaBlock:
		return write(w, `<a class="cta" href="`, esc(safeHref(b.URL)), `">`, esc(b.Label), "</a>")

	case core.FallbackBlock:
		if b.Text == "" {
			return nil
		}

		return write(w,
			`<div class="block-fallback" data-block-type="`, esc(b.BlockType), `">`,
			core.ParagraphsHTML(b.Text),
			"</div>")
	}

	return nil
}

func renderList(w io.Writer, b core.ListBlock) error {
	tag := "ul"
	if b.Ordered {
		tag = "ol"
	}

	if err := write(w, "<", tag, ">"); err != nil {
		return err
	}

	for _, item := range b.Items {
		if err := write(w, "<li>", esc(item), "</li>"); err != nil {
			return err
		}
	}

	return write(w, "</", tag, ">")
}

func renderImage(w io.Writer, b core.ImageBlock) error {
	if err := write(w,
		`<figure><img src="`, esc(safeHref(b.URL)), `" alt="`, esc(b.Alt), `" loading="lazy" />`); err != nil {
		return err
	}

	if b.Caption != "" {
		if err := write(w, "<figcaption>", esc(b.Caption), "</figcaption>"); err != nil {
			return err
		}
	}

	return write(w, "</figure>")
}

func renderHero(w io.Writer, b core.HeroBlock) error {
	style := ""
	if b.ImageURL != "" {
		style = fmt.Sprintf("background-image:url('%s');", cssURL(safeHref(b.ImageURL)))
	}

	if err := write(w, `<div class="hero" style="`, style, `"><h1>`, esc(b.Title), "</h1>"); err != nil {
		return err
	}

	if b.Subtitle != "" {
		if err := write(w, `<p class="hero-subtitle">`, esc(b.Subtitle), "</p>"); err != nil {
			return err
		}
	}

	return write(w, "</div>")
}

func renderTips(w io.Writer, b core.TipsBlock) error {
	if err := write(w, `<aside class="tips">`); err != nil {
		return err
	}

	if b.Title != "" {
		if err := write(w, "<h3>", esc(b.Title), "</h3>"); err != nil {
			return err
		}
	}

	if err := renderList(w, core.ListBlock{Items: b.Items}); err != nil {
		return err
	}

	return write(w, "</aside>")
}

// blockClass maps a block variant to its CSS class suffix.
func blockClass(block core.ContentBlock) string {
	switch block.(type) {
	case core.HeadingBlock:
		return "heading"
	case core.ParagraphBlock:
		return "paragraph"
	case core.RichTextBlock:
		return "richtext"
	case core.QuoteBlock:
		return "quote"
	case core.ListBlock:
		return "list"
	case core.ImageBlock:
		return "image"
	case core.IllustrationBlock:
		return "illustration"
	case core.HeroBlock:
		return "hero"
	case core.MarkdownBlock:
		return "markdown"
	case core.TipsBlock:
		return "tips"
	case core.CtaBlock:
		return "cta"
	default:
		return "fallback"
	}
}
