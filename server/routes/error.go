// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"github.com/khoinguyent/veya-reader/assets/views"
	"github.com/khoinguyent/veya-reader/server/request_context"
)

// ErrorPage renders an error page.
func ErrorPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	pageData := views.ErrorData{
		Title:      "Error",
		Error:      request_context.FromRequest(r).RequestError,
		StatusCode: request_context.FromRequest(r).StatusCode,
	}

	views.Document(pageData.Title, views.Error(pageData)).Render(r.Context(), w)
}
