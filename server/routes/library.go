// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/khoinguyent/veya-reader/assets/views"
	"github.com/khoinguyent/veya-reader/core"
	"github.com/khoinguyent/veya-reader/core/requests"
	"github.com/khoinguyent/veya-reader/server/utils"
)

// IndexPage is the handler for the library front page.
func IndexPage(w http.ResponseWriter, r *http.Request) error {
	topics, err := requests.GetTopics(r.Context(), r.Header)
	if err != nil {
		return err
	}

	pageData := views.IndexData{
		Title:  "Library",
		Topics: topics,
	}

	return views.Document(pageData.Title, views.LibraryIndex(pageData)).Render(r.Context(), w)
}

// TopicPage is the handler for a single topic listing.
//
// The topic itself and the sibling-topic navigation are fetched
// concurrently.
func TopicPage(w http.ResponseWriter, r *http.Request) error {
	slug := utils.GetPathVar(r, "slug")

	var (
		topic     requests.Topic
		allTopics []requests.Topic
	)

	group, ctx := errgroup.WithContext(r.Context())

	group.Go(func() error {
		var err error
		topic, err = requests.GetTopic(ctx, slug, r.Header)

		return err
	})

	group.Go(func() error {
		var err error
		allTopics, err = requests.GetTopics(ctx, r.Header)

		return err
	})

	if err := group.Wait(); err != nil {
		if requests.IsNotFound(err) {
			w.WriteHeader(http.StatusNotFound)
		}

		return err
	}

	others := make([]core.TopicSummary, 0, len(allTopics))

	for _, other := range allTopics {
		if other.Slug != slug {
			others = append(others, other.TopicSummary)
		}
	}

	pageData := views.TopicData{
		Topic:  topic,
		Others: others,
	}

	return views.Document(topic.Title, views.Topic(pageData)).Render(r.Context(), w)
}
