// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/khoinguyent/veya-reader/core"
	"github.com/khoinguyent/veya-reader/core/requests"
)

// IndexData is the data used to render the library index page.
type IndexData struct {
	Title  string
	Topics []requests.Topic
}

// LibraryIndex renders the library front page: every topic with its
// article listing.
func LibraryIndex(data IndexData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="library">`, "\n<h1>", esc(data.Title), "</h1>\n"); err != nil {
			return err
		}

		if len(data.Topics) == 0 {
			if err := write(w, `<p class="library-empty">The library is empty right now.</p>`, "\n"); err != nil {
				return err
			}
		}

		for _, topic := range data.Topics {
			if err := renderTopicSection(w, topic); err != nil {
				return err
			}
		}

		return write(w, "</section>\n")
	})
}

// TopicData is the data used to render a single topic page.
type TopicData struct {
	Topic requests.Topic

	// Others lists the remaining topics for the sidebar navigation.
	Others []core.TopicSummary
}

// Topic renders one topic with its full article listing.
func Topic(data TopicData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		topic := data.Topic

		style := ""
		if topic.AccentColor != "" {
			style = "--accent-color:" + cssValue(topic.AccentColor) + ";"
		}

		if err := write(w,
			`<section class="topic" style="`, style, `">`, "\n",
			"<h1>", esc(topic.Title), "</h1>\n"); err != nil {
			return err
		}

		if topic.Summary != "" {
			if err := write(w, `<p class="topic-summary">`, esc(topic.Summary), "</p>\n"); err != nil {
				return err
			}
		}

		if err := renderArticleList(w, topic.Articles); err != nil {
			return err
		}

		if err := renderTopicNav(w, data.Others); err != nil {
			return err
		}

		return write(w, "</section>\n")
	})
}

func renderTopicNav(w io.Writer, others []core.TopicSummary) error {
	if len(others) == 0 {
		return nil
	}

	if err := write(w, `<nav class="topic-nav"><h2>More topics</h2><ul>`, "\n"); err != nil {
		return err
	}

	for _, other := range others {
		if err := write(w,
			`<li><a href="`, topicURL(other.Slug), `">`, esc(other.Title), "</a></li>\n"); err != nil {
			return err
		}
	}

	return write(w, "</ul></nav>\n")
}

func renderTopicSection(w io.Writer, topic requests.Topic) error {
	if err := write(w,
		`<section class="library-topic">`,
		`<h2><a href="`, topicURL(topic.Slug), `">`, esc(topic.Title), "</a></h2>\n"); err != nil {
		return err
	}

	if topic.Summary != "" {
		if err := write(w, `<p class="topic-summary">`, esc(topic.Summary), "</p>\n"); err != nil {
			return err
		}
	}

	if err := renderArticleList(w, topic.Articles); err != nil {
		return err
	}

	return write(w, "</section>\n")
}

func renderArticleList(w io.Writer, articles []core.ArticleSummary) error {
	if len(articles) == 0 {
		return write(w, `<p class="topic-empty">No articles yet.</p>`, "\n")
	}

	if err := write(w, `<ul class="article-list">`, "\n"); err != nil {
		return err
	}

	for _, article := range articles {
		if err := renderArticleCard(w, article); err != nil {
			return err
		}
	}

	return write(w, "</ul>\n")
}

func renderArticleCard(w io.Writer, article core.ArticleSummary) error {
	if err := write(w,
		`<li class="article-card"><a href="`, readURL(article.Slug), `">`,
		`<span class="article-title">`, esc(article.Title), "</span>"); err != nil {
		return err
	}

	if article.Subtitle != "" {
		if err := write(w, `<span class="article-subtitle">`, esc(article.Subtitle), "</span>"); err != nil {
			return err
		}
	}

	if article.ReadingTimeMinutes > 0 {
		if err := write(w,
			`<span class="article-reading-time">`,
			strconv.Itoa(article.ReadingTimeMinutes), " min</span>"); err != nil {
			return err
		}
	}

	return write(w, "</a></li>\n")
}
