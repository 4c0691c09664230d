// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"net/http"

	"golang.org/x/text/language"
)

// supportedLanguages lists the locales the reader ships content for.
// English is first so it is the matcher's fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// MatchLanguage resolves the best supported language for a request from
// its Accept-Language header. Unknown or missing headers fall back to
// English.
func MatchLanguage(r *http.Request) language.Tag {
	accept := r.Header.Get("Accept-Language")

	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.English
	}

	_, index, _ := languageMatcher.Match(tags...)

	return supportedLanguages[index]
}
