// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/khoinguyent/veya-reader/core"
)

// ReaderData is the data used to render the reading surface, in either
// presentation style.
type ReaderData struct {
	Title   string
	Article core.NormalizedArticle
	Topic   *core.TopicSummary

	// Page is the current page index; only meaningful in paged mode.
	Page int
}

// ArticleSingle renders an article as one continuous scroll.
func ArticleSingle(data ReaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		article := data.Article

		if err := write(w, `<article class="reader reader-single">`, "\n"); err != nil {
			return err
		}

		if err := renderReaderHeader(w, data); err != nil {
			return err
		}

		for _, block := range article.Blocks {
			desc := core.ResolveStyle(block, article.Config, core.ModeSingle)

			if err := Block(core.DecodeBlock(block), desc, core.ModeSingle).Render(ctx, w); err != nil {
				return err
			}

			if err := write(w, "\n"); err != nil {
				return err
			}
		}

		return write(w, "</article>\n")
	})
}

// ArticlePaged renders one full-screen page of an article, with tap-zone
// overlays for navigation. The page background is the fold of every
// pageBackground declaration up to and including the current block.
func ArticlePaged(data ReaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		article := data.Article
		count := len(article.Blocks)

		if count == 0 {
			// An empty article paginates to nothing; render the header only.
			if err := write(w, `<article class="reader reader-paged reader-empty">`, "\n"); err != nil {
				return err
			}

			if err := renderReaderHeader(w, data); err != nil {
				return err
			}

			return write(w, "</article>\n")
		}

		page := data.Page
		threshold := article.Config.EffectiveTapThreshold()
		background := core.PageBackground(article, page)

		if err := write(w,
			`<article class="reader reader-paged" id="reader"`,
			` data-slug="`, esc(article.Slug), `"`,
			` data-page="`, strconv.Itoa(page), `"`,
			` data-count="`, strconv.Itoa(count), `"`,
			` data-tap-threshold="`, formatFloat(threshold), `"`,
			` style="`, backgroundStyle(background), `">`, "\n",
		); err != nil {
			return err
		}

		if err := ReaderPageContent(data).Render(ctx, w); err != nil {
			return err
		}

		if err := renderTapZones(w, article.Slug, page, count, threshold); err != nil {
			return err
		}

		if err := writef(w, `<div class="page-indicator">%d / %d</div>`, page+1, count); err != nil {
			return err
		}

		return write(w, "\n</article>\n")
	})
}

// ReaderPageContent renders the block container for the current page. It is
// the part swapped out by the fragment endpoint, so it carries the page
// number and background with it.
func ReaderPageContent(data ReaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		article := data.Article

		if data.Page < 0 || data.Page >= len(article.Blocks) {
			return nil
		}

		block := article.Blocks[data.Page]
		desc := core.ResolveStyle(block, article.Config, core.ModePaged)
		background := core.PageBackground(article, data.Page)

		if err := write(w,
			`<div class="reader-page" id="reader-page"`,
			` data-page="`, strconv.Itoa(data.Page), `"`,
			` data-background="`, esc(backgroundStyle(background)), `">`,
		); err != nil {
			return err
		}

		if data.Article.Degraded && data.Page == 0 {
			if err := renderDegradedNotice(w); err != nil {
				return err
			}
		}

		if err := Block(core.DecodeBlock(block), desc, core.ModePaged).Render(ctx, w); err != nil {
			return err
		}

		return write(w, "</div>\n")
	})
}

// renderReaderHeader writes the title area shared by both styles.
func renderReaderHeader(w io.Writer, data ReaderData) error {
	article := data.Article

	if err := write(w, `<header class="reader-header">`); err != nil {
		return err
	}

	if data.Topic != nil {
		if err := write(w,
			`<a class="reader-topic" href="`, topicURL(data.Topic.Slug), `">`,
			esc(data.Topic.Title), "</a>"); err != nil {
			return err
		}
	}

	if err := write(w, "<h1>", esc(article.Title), "</h1>"); err != nil {
		return err
	}

	if article.Subtitle != "" {
		if err := write(w, `<p class="reader-subtitle">`, esc(article.Subtitle), "</p>"); err != nil {
			return err
		}
	}

	if article.Degraded && article.Style == core.SinglePage {
		if err := renderDegradedNotice(w); err != nil {
			return err
		}
	}

	return write(w, "</header>\n")
}

func renderDegradedNotice(w io.Writer) error {
	return write(w,
		`<p class="degraded-notice">Showing a saved preview of this article; the full version could not be loaded.</p>`)
}

// renderTapZones writes the two overlay links splitting the page at the tap
// threshold. A zone at the edge of the article renders inert.
func renderTapZones(w io.Writer, slug string, page, count int, threshold float64) error {
	left := formatFloat(threshold*100) + "%"

	if page > 0 {
		if err := write(w,
			`<a class="tap-zone tap-zone-prev" style="width:`, left, `" href="`,
			pageURL(slug, page-1), `?src=tap" aria-label="Previous page"></a>`, "\n"); err != nil {
			return err
		}
	} else {
		if err := write(w,
			`<span class="tap-zone tap-zone-prev" style="width:`, left, `"></span>`, "\n"); err != nil {
			return err
		}
	}

	if page < count-1 {
		return write(w,
			`<a class="tap-zone tap-zone-next" style="left:`, left, `" href="`,
			pageURL(slug, page+1), `?src=tap" aria-label="Next page"></a>`, "\n")
	}

	return write(w, `<span class="tap-zone tap-zone-next" style="left:`, left, `"></span>`, "\n")
}

// pageURL builds the canonical URL of one page of an article.
func pageURL(slug string, page int) string {
	return "/read/" + url.PathEscape(slug) + "/" + strconv.Itoa(page)
}

// readURL builds the canonical URL of an article.
func readURL(slug string) string {
	return "/read/" + url.PathEscape(slug)
}

// topicURL builds the canonical URL of a topic listing.
func topicURL(slug string) string {
	return "/library/" + url.PathEscape(slug)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
