// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/khoinguyent/veya-reader/core"
)

// maxPrefetchedImages defines the maximum number of prefetched images
// to avoid excessive HTTP response header sizes.
const maxPrefetchedImages = 10

// PreloadImage writes a Link header to preload an image with high priority.
func PreloadImage(w http.ResponseWriter, url string) {
	link := makePreloadImageLink(url)

	w.Header().Add("Link", link)
}

// makePreloadImageLink returns a Link header fragment to preload an image with high priority.
//
// We return a string instead of writing the header immediately so we can merge everything into one Link header later.
func makePreloadImageLink(url string) string {
	return fmt.Sprintf("<%s>; rel=\"preload\"; as=\"image\"; fetchpriority=\"high\"", url)
}

// makePrefetchImageLink returns a Link header fragment to prefetch an image with low priority.
func makePrefetchImageLink(url string) string {
	return fmt.Sprintf("<%s>; rel=\"prefetch\"; as=\"image\"; fetchpriority=\"low\"", url)
}

// preloadReaderAssets collects all necessary Link header fragments and writes
// them as a single "Link" header value: the hero image preloads at high
// priority, image blocks prefetch at low priority up to the limit.
func preloadReaderAssets(w http.ResponseWriter, article core.NormalizedArticle) {
	// linkValues gathers all Link header values.
	var linkValues []string

	if article.HeroImageURL != "" {
		linkValues = append(linkValues, makePreloadImageLink(article.HeroImageURL))
	}

	for _, block := range article.Blocks {
		if len(linkValues) > maxPrefetchedImages {
			break
		}

		switch decoded := core.DecodeBlock(block).(type) {
		case core.ImageBlock:
			if decoded.URL != "" && decoded.URL != article.HeroImageURL {
				linkValues = append(linkValues, makePrefetchImageLink(decoded.URL))
			}
		case core.IllustrationBlock:
			if decoded.URL != "" {
				linkValues = append(linkValues, makePrefetchImageLink(decoded.URL))
			}
		case core.HeroBlock:
			if decoded.ImageURL != "" && decoded.ImageURL != article.HeroImageURL {
				linkValues = append(linkValues, makePreloadImageLink(decoded.ImageURL))
			}
		}
	}

	// Only write a single Link header, joined by commas (RFC 8288 friendly).
	if len(linkValues) > 0 {
		// We use Add to not interfere with any prior Link header writes.
		w.Header().Add("Link", strings.Join(linkValues, ", "))
	}
}
