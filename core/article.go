// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package core

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/tidwall/gjson"
)

var errNotAnObject = errors.New("article payload is not a JSON object")

// RawBlock is one unit of article content as served by the library API.
//
// Only BlockType carries meaning at this level; Payload and Metadata are
// opaque JSON queried lazily through gjson. Positions are numbers on the
// wire and may legitimately repeat; ties keep their original order.
type RawBlock struct {
	Position  float64
	BlockType string
	Payload   json.RawMessage
	Metadata  json.RawMessage
}

// TopicSummary is the condensed topic record embedded in article responses.
type TopicSummary struct {
	Slug          string
	Title         string
	Summary       string
	CoverImageURL string
	AccentColor   string
}

// ArticleDetail mirrors the library API's article detail response.
//
// Every field except Slug and Title is optional on the wire; absent or
// wrong-typed values decode to their zero value rather than an error.
type ArticleDetail struct {
	ID            string
	Slug          string
	Title         string
	Subtitle      string
	HeroImageURL  string
	HeroVideoURL  string
	AudioURL      string
	ContentLocale string
	ContentType   string
	LayoutVariant string

	// PresentationStyle is "single_page", "paged_blocks", or empty when the
	// source leaves the choice to the client (see Normalize).
	PresentationStyle string
	Config            PresentationConfig

	ReadingTimeMinutes int
	DurationSeconds    int
	Tags               []string
	IsPublished        bool
	PublishedAt        time.Time

	Topic  *TopicSummary
	Blocks []RawBlock
}

// ArticleSummary is the condensed article record returned by listing
// endpoints. Summaries double as the degraded-render source when a detail
// fetch fails (see requests.SummaryFor and NormalizeSummary).
type ArticleSummary struct {
	Slug               string
	Title              string
	Subtitle           string
	Summary            string
	HeroImageURL       string
	ContentType        string
	ReadingTimeMinutes int
	Tags               []string
}

// ParseArticleDetail decodes an article detail response.
//
// It errors only when data is not a JSON object at all. Individual fields
// are extracted tolerantly: anything absent or of the wrong type becomes its
// zero value, and a missing or malformed blocks array yields an empty list.
func ParseArticleDetail(data []byte) (ArticleDetail, error) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return ArticleDetail{}, errNotAnObject
	}

	detail := ArticleDetail{
		ID:                 root.Get("id").String(),
		Slug:               root.Get("slug").String(),
		Title:              root.Get("title").String(),
		Subtitle:           strOf(root.Get("subtitle")),
		HeroImageURL:       strOf(root.Get("hero_image_url")),
		HeroVideoURL:       strOf(root.Get("hero_video_url")),
		AudioURL:           strOf(root.Get("audio_url")),
		ContentLocale:      strOf(root.Get("content_locale")),
		ContentType:        strOf(root.Get("content_type")),
		LayoutVariant:      strOf(root.Get("layout_variant")),
		PresentationStyle:  strOf(root.Get("presentation_style")),
		Config:             ParsePresentationConfig(root.Get("presentation_config")),
		ReadingTimeMinutes: int(root.Get("reading_time_minutes").Int()),
		DurationSeconds:    int(root.Get("duration_seconds").Int()),
		Tags:               strSliceOf(root.Get("tags")),
		IsPublished:        root.Get("is_published").Bool(),
	}

	if ts := root.Get("published_at"); ts.Type == gjson.String {
		// NOTE: parse errors for timestamps are intentionally ignored
		detail.PublishedAt, _ = time.Parse(time.RFC3339, ts.String())
	}

	if topic := root.Get("topic"); topic.IsObject() {
		detail.Topic = &TopicSummary{
			Slug:          topic.Get("slug").String(),
			Title:         topic.Get("title").String(),
			Summary:       strOf(topic.Get("summary")),
			CoverImageURL: strOf(topic.Get("cover_image_url")),
			AccentColor:   strOf(topic.Get("accent_color")),
		}
	}

	detail.Blocks = parseBlocks(root.Get("blocks"))

	return detail, nil
}

// ParseArticleSummary decodes one entry of an article listing response.
func ParseArticleSummary(entry gjson.Result) ArticleSummary {
	return ArticleSummary{
		Slug:               entry.Get("slug").String(),
		Title:              entry.Get("title").String(),
		Subtitle:           strOf(entry.Get("subtitle")),
		Summary:            strOf(entry.Get("summary")),
		HeroImageURL:       strOf(entry.Get("hero_image_url")),
		ContentType:        strOf(entry.Get("content_type")),
		ReadingTimeMinutes: int(entry.Get("reading_time_minutes").Int()),
		Tags:               strSliceOf(entry.Get("tags")),
	}
}

// parseBlocks extracts the block list, skipping entries that are not objects.
func parseBlocks(blocks gjson.Result) []RawBlock {
	if !blocks.IsArray() {
		return nil
	}

	parsed := make([]RawBlock, 0, len(blocks.Array()))

	blocks.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			return true
		}

		parsed = append(parsed, RawBlock{
			Position:  entry.Get("position").Float(),
			BlockType: entry.Get("block_type").String(),
			Payload:   rawOf(entry.Get("payload")),
			Metadata:  rawOf(entry.Get("metadata")),
		})

		return true
	})

	return parsed
}

// strOf returns the string value of a result, or "" for any non-string type.
//
// gjson.Result.String() stringifies numbers and booleans; for optional text
// fields we want wrong-typed values to behave exactly like absent ones.
func strOf(res gjson.Result) string {
	if res.Type != gjson.String {
		return ""
	}

	return res.Str
}

// strSliceOf collects the string entries of an array result, skipping
// anything that is not a string.
func strSliceOf(res gjson.Result) []string {
	if !res.IsArray() {
		return nil
	}

	var out []string

	res.ForEach(func(_, entry gjson.Result) bool {
		if entry.Type == gjson.String {
			out = append(out, entry.Str)
		}

		return true
	})

	return out
}

// rawOf returns the raw JSON of an object result, or nil otherwise.
func rawOf(res gjson.Result) json.RawMessage {
	if !res.IsObject() {
		return nil
	}

	return json.RawMessage(res.Raw)
}
