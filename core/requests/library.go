// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	config "github.com/khoinguyent/veya-reader/configs"
	"github.com/khoinguyent/veya-reader/core"
	"github.com/khoinguyent/veya-reader/core/requests/lrucache"
)

// Topic is a library topic with its article listing.
type Topic struct {
	core.TopicSummary

	Articles []core.ArticleSummary
}

var errStaleResponse = errors.New("response does not match the requested slug")

// summaryCacheSize bounds the degraded-render summary store; entries are tiny.
const summaryCacheSize = 512

// summaryCache remembers the last known ArticleSummary per slug. When a
// detail fetch fails, routes fall back to rendering from here instead of
// erroring out entirely.
var summaryCache *lrucache.LRUCache

func init() {
	var err error

	summaryCache, err = lrucache.NewLRUCache(summaryCacheSize, false)
	if err != nil {
		panic(err)
	}
}

// apiURL joins path segments onto the configured library API base.
func apiURL(segments ...string) string {
	base := config.Global.Upstream.APIBase

	return base.JoinPath(segments...).String()
}

// GetTopics fetches the library index: every topic with its article listing.
func GetTopics(ctx context.Context, incomingHeaders http.Header) ([]Topic, error) {
	body, err := GetJSON(ctx, apiURL("topics"), incomingHeaders)
	if err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(body)

	var topics []Topic

	root.ForEach(func(_, entry gjson.Result) bool {
		if entry.IsObject() {
			topics = append(topics, parseTopic(entry))
		}

		return true
	})

	return topics, nil
}

// GetTopic fetches a single topic with its article listing.
func GetTopic(ctx context.Context, slug string, incomingHeaders http.Header) (Topic, error) {
	body, err := GetJSON(ctx, apiURL("topics", slug), incomingHeaders)
	if err != nil {
		return Topic{}, err
	}

	topic := parseTopic(gjson.ParseBytes(body))

	// A response for a different topic must never render under this slug.
	if topic.Slug != slug {
		log.Ctx(ctx).Warn().
			Str("requested", slug).
			Str("received", topic.Slug).
			Msg("Discarding mismatched topic response")

		return Topic{}, errStaleResponse
	}

	return topic, nil
}

// GetArticle fetches the full article detail for slug.
//
// The response is discarded when its slug does not match the request: a
// cached or misrouted payload for another article must never be rendered
// under this slug.
func GetArticle(ctx context.Context, slug string, incomingHeaders http.Header) (core.ArticleDetail, error) {
	body, err := GetJSON(ctx, apiURL("articles", slug), incomingHeaders)
	if err != nil {
		return core.ArticleDetail{}, err
	}

	detail, err := core.ParseArticleDetail(body)
	if err != nil {
		return core.ArticleDetail{}, err
	}

	if detail.Slug != slug {
		log.Ctx(ctx).Warn().
			Str("requested", slug).
			Str("received", detail.Slug).
			Msg("Discarding mismatched article response")

		return core.ArticleDetail{}, errStaleResponse
	}

	rememberSummary(core.ArticleSummary{
		Slug:               detail.Slug,
		Title:              detail.Title,
		Subtitle:           detail.Subtitle,
		HeroImageURL:       detail.HeroImageURL,
		ContentType:        detail.ContentType,
		ReadingTimeMinutes: detail.ReadingTimeMinutes,
		Tags:               detail.Tags,
	})

	return detail, nil
}

// SummaryFor returns the last known summary for slug, if any.
//
// This is the degraded-render source: when GetArticle fails, a route can
// still show the reader something from a previously seen listing.
func SummaryFor(slug string) (core.ArticleSummary, bool) {
	data, ok := summaryCache.Get(slug)
	if !ok {
		return core.ArticleSummary{}, false
	}

	var summary core.ArticleSummary
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&summary); err != nil {
		summaryCache.Remove(slug)

		return core.ArticleSummary{}, false
	}

	return summary, true
}

func rememberSummary(summary core.ArticleSummary) {
	if summary.Slug == "" {
		return
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(summary); err != nil {
		return
	}

	summaryCache.Add(summary.Slug, buf.Bytes())
}

// parseTopic decodes one topic object, including its article listing.
// Article summaries are remembered for degraded rendering.
func parseTopic(entry gjson.Result) Topic {
	topic := Topic{
		TopicSummary: core.TopicSummary{
			Slug:          entry.Get("slug").String(),
			Title:         entry.Get("title").String(),
			Summary:       entry.Get("summary").String(),
			CoverImageURL: entry.Get("cover_image_url").String(),
			AccentColor:   entry.Get("accent_color").String(),
		},
	}

	entry.Get("articles").ForEach(func(_, article gjson.Result) bool {
		if article.IsObject() {
			summary := core.ParseArticleSummary(article)
			topic.Articles = append(topic.Articles, summary)
			rememberSummary(summary)
		}

		return true
	})

	return topic
}
