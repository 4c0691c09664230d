// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/khoinguyent/veya-reader/core"
)

func pagedArticle(t *testing.T, blocks ...core.RawBlock) core.NormalizedArticle {
	t.Helper()

	return core.NormalizedArticle{
		Slug:   "gentle-breathing-ladder",
		Title:  "Gentle Breathing Ladder",
		Style:  core.PagedBlocks,
		Blocks: blocks,
	}
}

func textBlock(text string) core.RawBlock {
	payload, _ := json.Marshal(map[string]string{"text": text})

	return core.RawBlock{BlockType: "paragraph", Payload: payload}
}

func TestArticlePaged_TapZones(t *testing.T) {
	t.Parallel()

	article := pagedArticle(t, textBlock("one"), textBlock("two"), textBlock("three"))

	// Middle page: both zones are links.
	html := render(t, ArticlePaged(ReaderData{Article: article, Page: 1}))

	if !strings.Contains(html, `href="/read/gentle-breathing-ladder/0?src=tap"`) {
		t.Errorf("previous tap zone link missing:\n%s", html)
	}

	if !strings.Contains(html, `href="/read/gentle-breathing-ladder/2?src=tap"`) {
		t.Errorf("next tap zone link missing:\n%s", html)
	}

	if !strings.Contains(html, "width:40%") {
		t.Errorf("default tap threshold not reflected in zone width:\n%s", html)
	}

	if !strings.Contains(html, "2 / 3") {
		t.Errorf("page indicator missing:\n%s", html)
	}

	// First page: previous zone is inert.
	html = render(t, ArticlePaged(ReaderData{Article: article, Page: 0}))

	if strings.Contains(html, `href="/read/gentle-breathing-ladder/-1`) {
		t.Errorf("first page links to a page before the start:\n%s", html)
	}

	if !strings.Contains(html, `<span class="tap-zone tap-zone-prev"`) {
		t.Errorf("first page previous zone should be inert:\n%s", html)
	}

	// Last page: next zone is inert.
	html = render(t, ArticlePaged(ReaderData{Article: article, Page: 2}))

	if strings.Contains(html, `href="/read/gentle-breathing-ladder/3`) {
		t.Errorf("last page links past the end:\n%s", html)
	}

	if !strings.Contains(html, `<span class="tap-zone tap-zone-next"`) {
		t.Errorf("last page next zone should be inert:\n%s", html)
	}
}

func TestArticlePaged_CustomThreshold(t *testing.T) {
	t.Parallel()

	article := pagedArticle(t, textBlock("one"), textBlock("two"))
	threshold := 0.25
	article.Config.TapThreshold = &threshold

	html := render(t, ArticlePaged(ReaderData{Article: article, Page: 0}))

	if !strings.Contains(html, `data-tap-threshold="0.25"`) {
		t.Errorf("custom threshold not exported:\n%s", html)
	}

	if !strings.Contains(html, "width:25%") {
		t.Errorf("custom threshold not reflected in zone width:\n%s", html)
	}
}

func TestArticlePaged_BackgroundCarriesForward(t *testing.T) {
	t.Parallel()

	withBackground, _ := json.Marshal(map[string]string{"pageBackground": "#FDEBD2"})

	article := pagedArticle(t,
		core.RawBlock{BlockType: "paragraph", Payload: mustJSON(t, map[string]string{"text": "one"}), Metadata: withBackground},
		textBlock("two"),
	)

	// Page 1 declares nothing; it retains page 0's background.
	html := render(t, ArticlePaged(ReaderData{Article: article, Page: 1}))

	if !strings.Contains(html, "background:#FDEBD2;") {
		t.Errorf("page background was not carried forward:\n%s", html)
	}
}

func TestArticlePaged_Empty(t *testing.T) {
	t.Parallel()

	article := pagedArticle(t)

	html := render(t, ArticlePaged(ReaderData{Article: article, Page: 0}))

	if !strings.Contains(html, "reader-empty") {
		t.Errorf("empty article should render the empty reader shell:\n%s", html)
	}

	if strings.Contains(html, "tap-zone") {
		t.Errorf("empty article should not render tap zones:\n%s", html)
	}
}

func TestArticleSingle(t *testing.T) {
	t.Parallel()

	article := core.NormalizedArticle{
		Slug:     "evening-wind-down",
		Title:    "Evening Wind-Down",
		Subtitle: "Settle before sleep",
		Style:    core.SinglePage,
		Blocks:   []core.RawBlock{textBlock("first"), textBlock("second")},
	}

	html := render(t, ArticleSingle(ReaderData{
		Article: article,
		Topic:   &core.TopicSummary{Slug: "sleep", Title: "Sleep"},
	}))

	if !strings.Contains(html, "<h1>Evening Wind-Down</h1>") {
		t.Errorf("title missing:\n%s", html)
	}

	if !strings.Contains(html, `href="/library/sleep"`) {
		t.Errorf("topic link missing:\n%s", html)
	}

	if !strings.Contains(html, "first") || !strings.Contains(html, "second") {
		t.Errorf("blocks missing:\n%s", html)
	}

	if strings.Contains(html, "tap-zone") {
		t.Errorf("single page style should not render tap zones:\n%s", html)
	}
}

func TestArticleSingle_DegradedNotice(t *testing.T) {
	t.Parallel()

	article := core.NormalizeSummary(core.ArticleSummary{
		Slug:    "evening-wind-down",
		Title:   "Evening Wind-Down",
		Summary: "A short routine for the end of the day.",
	})

	html := render(t, ArticleSingle(ReaderData{Article: article}))

	if !strings.Contains(html, "degraded-notice") {
		t.Errorf("degraded article should carry a notice:\n%s", html)
	}

	if !strings.Contains(html, "A short routine for the end of the day.") {
		t.Errorf("summary text missing from degraded render:\n%s", html)
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}

	return data
}
