// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/khoinguyent/veya-reader/assets/views"
	config "github.com/khoinguyent/veya-reader/configs"
	"github.com/khoinguyent/veya-reader/core"
	"github.com/khoinguyent/veya-reader/core/pagination"
	"github.com/khoinguyent/veya-reader/core/requests"
	"github.com/khoinguyent/veya-reader/server/utils"
)

// ReaderPage is the handler for /read/{slug} and /read/{slug}/{page}.
//
// The presentation style decides the surface: single-page articles render as
// one scroll and ignore the page segment, paged articles render the requested
// page with tap-zone navigation overlays.
func ReaderPage(w http.ResponseWriter, r *http.Request) error {
	slug := utils.GetPathVar(r, "slug")

	article, topic, err := loadReaderArticle(r, slug)
	if err != nil {
		if requests.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
		}

		return err
	}

	if article.Degraded {
		w.Header().Set("Cache-Control", "no-store")
	}

	preloadReaderAssets(w, article)

	pageData := views.ReaderData{
		Title:   article.Title,
		Article: article,
		Topic:   topic,
	}

	if article.Style == core.PagedBlocks {
		pageData.Page = clampPage(intQuery(utils.GetPathVar(r, "page"), 0), len(article.Blocks))

		return views.Document(pageData.Title, views.ArticlePaged(pageData)).Render(r.Context(), w)
	}

	return views.Document(pageData.Title, views.ArticleSingle(pageData)).Render(r.Context(), w)
}

// ReaderFragment is the handler for /fragments/reader/{slug}/{page}.
//
// It runs one navigation event through the pagination controller and returns
// the resulting page container. The response carries the committed page in
// the Veya-Page header; Veya-Page-Changed is present only when the change was
// user-driven, so client listeners are never notified of their own
// programmatic jumps.
func ReaderFragment(w http.ResponseWriter, r *http.Request) error {
	slug := utils.GetPathVar(r, "slug")

	article, _, err := loadReaderArticle(r, slug)
	if err != nil {
		if requests.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
		}

		return err
	}

	if article.Style != core.PagedBlocks {
		w.WriteHeader(http.StatusNotFound)

		return nil
	}

	count := len(article.Blocks)
	from := clampPage(intQuery(utils.GetQueryParam(r, "from"), 0), count)
	target := clampPage(intQuery(utils.GetPathVar(r, "page"), from), count)

	notified := -1
	scrollTarget := from

	ctrl := pagination.NewController(count, pagination.Hooks{
		ScrollTo:      func(index int) { scrollTarget = index },
		OnIndexChange: func(index int) { notified = index },
	})

	ctrl.SetTapThreshold(config.Global.Reader.TapThreshold)

	if t := article.Config.TapThreshold; t != nil {
		ctrl.SetTapThreshold(*t)
	}

	// Seed the controller at the page the client reports being on. The seed
	// is programmatic, so it can never produce a notification.
	ctrl.RequestIndex(from, pagination.SourceProgrammatic)
	ctrl.OnScrollSettled(from)

	applyNavigation(r, ctrl, target, &scrollTarget)

	page := ctrl.Current()

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Veya-Page", strconv.Itoa(page))

	if notified >= 0 {
		w.Header().Set("Veya-Page-Changed", strconv.Itoa(notified))
	}

	return views.ReaderPageContent(views.ReaderData{Article: article, Page: page}).Render(r.Context(), w)
}

// applyNavigation feeds one client navigation event into the controller.
//
// src=scroll reports a settled scroll position; src=tap is a tap either with
// raw coordinates (x, width) or a pre-resolved target page; anything else is
// a programmatic jump. Tap and jump requests are followed by the simulated
// settle of the scroll they triggered.
func applyNavigation(r *http.Request, ctrl *pagination.Controller, target int, scrollTarget *int) {
	switch utils.GetQueryParam(r, "src") {
	case "scroll":
		if coverage := floatQuery(utils.GetQueryParam(r, "coverage"), 1); coverage < config.Global.Reader.SettleCoverage {
			// The reported page is not sufficiently visible yet.
			return
		}

		ctrl.OnScrollSettled(target)

	case "tap":
		x := floatQuery(utils.GetQueryParam(r, "x"), -1)
		width := floatQuery(utils.GetQueryParam(r, "width"), 0)

		if x >= 0 && width > 0 {
			if intent := ctrl.Tap(x, width); intent == pagination.IntentNone {
				return
			}
		} else {
			ctrl.RequestIndex(target, pagination.SourceUser)
		}

		ctrl.OnScrollSettled(*scrollTarget)

	default:
		ctrl.RequestIndex(target, pagination.SourceProgrammatic)
		ctrl.OnScrollSettled(*scrollTarget)
	}
}

// loadReaderArticle fetches and normalizes an article.
//
// When the detail fetch fails but a summary from an earlier listing is
// cached, the article degrades to a single-page summary render instead of
// erroring out.
func loadReaderArticle(r *http.Request, slug string) (core.NormalizedArticle, *core.TopicSummary, error) {
	detail, err := requests.GetArticle(r.Context(), slug, r.Header)
	if err != nil {
		if summary, ok := requests.SummaryFor(slug); ok {
			log.Ctx(r.Context()).Warn().
				Err(err).
				Str("slug", slug).
				Msg("Article fetch failed, rendering cached summary")

			return core.NormalizeSummary(summary), nil, nil
		}

		return core.NormalizedArticle{}, nil, err
	}

	return core.Normalize(detail, pagedPolicy()), detail.Topic, nil
}

// pagedPolicy builds the pagination heuristics from instance configuration.
func pagedPolicy() core.PagedPolicy {
	return core.PagedPolicy{
		BlockThreshold: config.Global.Reader.PagedBlockThreshold,
		LayoutHints:    config.Global.Reader.PagedLayoutHints,
	}
}

// clampPage clamps a page index into [0, count-1].
func clampPage(page, count int) int {
	if page < 0 || count <= 0 {
		return 0
	}

	if page >= count {
		return count - 1
	}

	return page
}

func intQuery(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func floatQuery(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}

	return v
}
