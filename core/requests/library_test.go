// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package requests

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/khoinguyent/veya-reader/core"
)

func TestParseTopic(t *testing.T) {
	t.Parallel()

	topic := parseTopic(gjson.Parse(`{
		"slug": "breathwork",
		"title": "Breathwork",
		"summary": "Exercises for calm breathing.",
		"accent_color": "#DDE8F8",
		"articles": [
			{"slug": "gentle-breathing-ladder", "title": "Gentle Breathing Ladder", "reading_time_minutes": 5},
			"stray",
			{"slug": "box-breathing", "title": "Box Breathing"}
		]
	}`))

	if topic.Slug != "breathwork" || topic.AccentColor != "#DDE8F8" {
		t.Errorf("topic = %+v", topic.TopicSummary)
	}

	if len(topic.Articles) != 2 {
		t.Fatalf("articles = %d, want 2 (non-objects skipped)", len(topic.Articles))
	}

	if topic.Articles[0].Slug != "gentle-breathing-ladder" || topic.Articles[1].Slug != "box-breathing" {
		t.Errorf("articles = %+v", topic.Articles)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	t.Parallel()

	want := core.ArticleSummary{
		Slug:               "evening-wind-down",
		Title:              "Evening Wind-Down",
		Subtitle:           "Settle before sleep",
		ReadingTimeMinutes: 7,
		Tags:               []string{"sleep", "evening"},
	}

	rememberSummary(want)

	got, ok := SummaryFor("evening-wind-down")
	if !ok {
		t.Fatal("SummaryFor missed a remembered summary")
	}

	if got.Title != want.Title || got.ReadingTimeMinutes != want.ReadingTimeMinutes {
		t.Errorf("SummaryFor() = %+v, want %+v", got, want)
	}

	if _, ok := SummaryFor("never-seen"); ok {
		t.Error("SummaryFor returned a summary for an unknown slug")
	}

	// Slugless summaries are never stored.
	rememberSummary(core.ArticleSummary{Title: "anonymous"})

	if _, ok := SummaryFor(""); ok {
		t.Error("slugless summary was stored")
	}
}
